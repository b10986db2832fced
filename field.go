package vitae

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// FieldKind identifies which variant a Field holds.
type FieldKind int

const (
	// FieldAbsent is the zero Field: the value was not supplied.
	FieldAbsent FieldKind = iota
	// FieldText holds plain text.
	FieldText
	// FieldRich holds pre-built rich content.
	FieldRich
	// FieldDate holds a calendar date.
	FieldDate
)

// Field is an optional resume field: exactly one of absent, plain text, rich
// content, or a calendar date. The zero value is absent. Fields are immutable
// values; formatters branch on Kind with an exhaustive switch, so there is no
// silent pass-through for unrecognized shapes.
type Field struct {
	kind FieldKind
	text string
	rich Content
	date CalendarDate
}

// Text creates a plain-text field.
func Text(s string) Field {
	return Field{kind: FieldText, text: s}
}

// Rich creates a rich-content field. A nil content yields an absent field.
func Rich(c Content) Field {
	if c == nil {
		return Field{}
	}
	return Field{kind: FieldRich, rich: c}
}

// Date creates a calendar-date field.
func Date(d CalendarDate) Field {
	return Field{kind: FieldDate, date: d}
}

// Kind returns the variant this field holds.
func (f Field) Kind() FieldKind {
	return f.kind
}

// IsAbsent reports whether the field was not supplied.
func (f Field) IsAbsent() bool {
	return f.kind == FieldAbsent
}

// Text returns the plain text payload. Valid only when Kind is FieldText.
func (f Field) Text() string {
	return f.text
}

// Rich returns the rich content payload. Valid only when Kind is FieldRich.
func (f Field) Rich() Content {
	return f.rich
}

// Date returns the calendar date payload. Valid only when Kind is FieldDate.
func (f Field) Date() CalendarDate {
	return f.date
}

// MarkupTag is the YAML tag marking a scalar as verbatim target markup,
// decoded into a rich-content field.
const MarkupTag = "!markup"

// UnmarshalYAML decodes a field from a YAML scalar:
//   - null or omitted -> absent
//   - !markup tagged scalar -> rich content (Raw markup passthrough)
//   - timestamp-shaped scalar -> calendar date
//   - any other scalar -> plain text of its literal value
//
// Sequences and mappings are rejected.
func (f *Field) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("field must be a scalar, got %s at line %d",
			yamlKindName(value.Kind), value.Line)
	}

	switch value.Tag {
	case "!!null":
		*f = Field{}
		return nil
	case MarkupTag:
		*f = Rich(Raw{Markup: value.Value})
		return nil
	case "!!timestamp":
		t, err := time.Parse("2006-01-02", value.Value)
		if err != nil {
			// Full timestamps resolve to !!timestamp too; keep the date part.
			t, err = time.Parse(time.RFC3339, value.Value)
		}
		if err != nil {
			return fmt.Errorf("invalid date %q at line %d: %v",
				value.Value, value.Line, err)
		}
		*f = Date(NewDate(t.Year(), t.Month(), t.Day()))
		return nil
	default:
		*f = Text(value.Value)
		return nil
	}
}

func yamlKindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
