package vitae

import "time"

// DefaultDateLayout is the layout applied to calendar dates when no override
// is given: abbreviated month followed by the 4-digit year, e.g. "Jan 2042".
// Layouts use Go's reference-time tokens (see the time package).
const DefaultDateLayout = "Jan 2006"

// CalendarDate is a calendar day without a time of day or location.
// The zero value is not a valid date; use NewDate.
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate creates a CalendarDate for the given day.
func NewDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// Format renders the date using a Go reference-time layout. An empty layout
// falls back to DefaultDateLayout.
func (d CalendarDate) Format(layout string) string {
	if layout == "" {
		layout = DefaultDateLayout
	}
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	return t.Format(layout)
}

// String renders the date with DefaultDateLayout.
func (d CalendarDate) String() string {
	return d.Format(DefaultDateLayout)
}
