package vitae

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalendarDate_Format(t *testing.T) {
	d := NewDate(2042, time.January, 15)

	assert.Equal(t, "Jan 2042", d.Format(DefaultDateLayout))
	assert.Equal(t, "Jan 2042", d.Format(""), "empty layout falls back to default")
	assert.Equal(t, "January 2042", d.Format("January 2006"))
	assert.Equal(t, "2042-01-15", d.Format("2006-01-02"))
	assert.Equal(t, "01/2042", d.Format("01/2006"))
}

func TestCalendarDate_String(t *testing.T) {
	assert.Equal(t, "Mar 1999", NewDate(1999, time.March, 31).String())
}
