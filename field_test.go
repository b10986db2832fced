package vitae

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestField_ZeroValueIsAbsent(t *testing.T) {
	var f Field
	assert.Equal(t, FieldAbsent, f.Kind())
	assert.True(t, f.IsAbsent())
}

func TestField_Constructors(t *testing.T) {
	f := Text("Owner")
	assert.Equal(t, FieldText, f.Kind())
	assert.Equal(t, "Owner", f.Text())

	f = Rich(Str{Value: "x"})
	assert.Equal(t, FieldRich, f.Kind())
	assert.Equal(t, Str{Value: "x"}, f.Rich())

	f = Date(NewDate(2042, time.January, 1))
	assert.Equal(t, FieldDate, f.Kind())
	assert.Equal(t, NewDate(2042, time.January, 1), f.Date())
}

func TestField_RichNilIsAbsent(t *testing.T) {
	assert.True(t, Rich(nil).IsAbsent())
}

func TestField_UnmarshalYAML(t *testing.T) {
	type doc struct {
		F Field `yaml:"f"`
	}

	cases := []struct {
		name string
		yaml string
		want Field
	}{
		{"plain string", `f: Owner`, Text("Owner")},
		{"quoted string", `f: "2042"`, Text("2042")},
		{"null", `f: null`, Field{}},
		{"date", `f: 2042-01-01`, Date(NewDate(2042, time.January, 1))},
		{"markup tag", `f: !markup "#smallcaps[Present]"`, Rich(Raw{Markup: "#smallcaps[Present]"})},
		{"number becomes text", `f: 42`, Text("42")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d doc
			require.NoError(t, yaml.Unmarshal([]byte(tc.yaml), &d))
			assert.Equal(t, tc.want, d.F)
		})
	}
}

func TestField_UnmarshalYAML_Omitted(t *testing.T) {
	type doc struct {
		F Field `yaml:"f"`
	}
	var d doc
	require.NoError(t, yaml.Unmarshal([]byte(`{}`), &d))
	assert.True(t, d.F.IsAbsent())
}

func TestField_UnmarshalYAML_RejectsNonScalar(t *testing.T) {
	type doc struct {
		F Field `yaml:"f"`
	}
	var d doc
	err := yaml.Unmarshal([]byte("f:\n  - a\n  - b\n"), &d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sequence")
}
