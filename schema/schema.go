// Package schema provides JSON Schema building and validation utilities.
//
// The resume package uses it to validate decoded resume documents before
// mapping them onto records, so a malformed file fails with a path-qualified
// validation error instead of a half-built resume.
//
// # Quick Start
//
//	s := schema.MustCompile(schema.Object(map[string]*schema.Property{
//	    "title":       schema.Scalar("Section title"),
//	    "experiences": schema.Array("Entries", entrySchema),
//	}, "experiences")) // "experiences" is required
//
//	if err := s.Validate(decoded); err != nil {
//	    // err wraps *schema.ValidationError
//	}
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Schema couples the raw map representation of a JSON Schema (useful for
// serialization and docs) with a compiled validator.
type Schema struct {
	raw      map[string]any
	compiled *jsonschema.Schema
}

// Raw returns the underlying map[string]any representation.
func (s *Schema) Raw() map[string]any {
	if s == nil {
		return nil
	}
	return s.raw
}

// Validate validates data against the schema. The data is round-tripped
// through JSON first, so values decoded from YAML (time.Time, typed numbers)
// arrive in the shapes the validator expects. Returns nil when valid, or a
// *ValidationError describing the failure.
func (s *Schema) Validate(data any) error {
	if s == nil || s.compiled == nil {
		return nil
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode document for validation: %w", err)
	}
	instance, err := jsonschema.UnmarshalJSON(bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("failed to decode document for validation: %w", err)
	}

	if err := s.compiled.Validate(instance); err != nil {
		return &ValidationError{Err: err}
	}
	return nil
}

// ValidationError wraps a JSON Schema validation error with a cleaner message.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("schema validation failed: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Compile compiles a raw schema map into a Schema with a compiled validator.
// Returns an error if the schema itself is invalid.
func Compile(raw map[string]any) (*Schema, error) {
	if raw == nil {
		return nil, nil
	}

	schemaJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	schemaData, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource("schema.json", schemaData); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}
	compiled, err := c.Compile("schema.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	return &Schema{
		raw:      raw,
		compiled: compiled,
	}, nil
}

// MustCompile is like Compile but panics on error.
// Use this for schemas defined at init time.
func MustCompile(raw map[string]any) *Schema {
	s, err := Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// -----------------------------------------------------------------------------
// Schema Builders
// -----------------------------------------------------------------------------

// Object creates an object schema with the given properties. Pass property
// names as variadic arguments to mark them as required. Properties not
// declared are rejected, so typos in a resume file surface as errors.
//
// Example:
//
//	schema.Object(map[string]*schema.Property{
//	    "body":     schema.Scalar("Entry body"),
//	    "position": schema.Scalar("Role title"),
//	}, "body") // "body" is required
func Object(properties map[string]*Property, required ...string) map[string]any {
	props := make(map[string]any, len(properties))
	for name, prop := range properties {
		props[name] = prop.build()
	}

	s := map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// Property represents a property in an object schema.
type Property struct {
	typ         string
	description string
	enum        []any
	pattern     string
	minLength   *int
	items       map[string]any
}

func (p *Property) build() map[string]any {
	m := map[string]any{}

	if p.typ != "" {
		m["type"] = p.typ
	}
	if p.description != "" {
		m["description"] = p.description
	}
	if len(p.enum) > 0 {
		m["enum"] = p.enum
	}
	if p.pattern != "" {
		m["pattern"] = p.pattern
	}
	if p.minLength != nil {
		m["minLength"] = *p.minLength
	}
	if p.items != nil {
		m["items"] = p.items
	}
	return m
}

// String creates a string property.
//
// Example:
//
//	schema.String("Display name")
//	schema.String("Marker").MinLength(1)
//	schema.String("Variant").Enum("compact", "full")
func String(description string) *Property {
	return &Property{typ: "string", description: description}
}

// Scalar creates a property that accepts any scalar value. Resume fields are
// scalars whose variant (text, date, markup) is resolved by the field
// decoder, not the schema, so the schema only pins down the document shape.
func Scalar(description string) *Property {
	return &Property{description: description}
}

// Array creates an array property with the given item schema.
//
// Example:
//
//	schema.Array("Resume sections", schema.Object(sectionProps, "experiences"))
func Array(description string, items map[string]any) *Property {
	return &Property{typ: "array", description: description, items: items}
}

// Enum sets allowed values for the property.
func (p *Property) Enum(values ...any) *Property {
	p.enum = values
	return p
}

// Pattern sets a regex pattern for string validation.
func (p *Property) Pattern(pattern string) *Property {
	p.pattern = pattern
	return p
}

// MinLength sets the minimum length for string properties.
func (p *Property) MinLength(min int) *Property {
	p.minLength = &min
	return p
}
