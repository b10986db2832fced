package resume

import "github.com/rickchristie/vitae/schema"

// documentSchema pins down the structure of a resume file. Field variants
// (text vs date vs markup) are resolved by vitae.Field decoding, so header
// fields are schema scalars; the schema's job is shape: required keys,
// nesting, and typo rejection.
var documentSchema = schema.MustCompile(schema.Object(map[string]*schema.Property{
	"name":        schema.String("Display name shown by preview tools"),
	"date_layout": schema.String("Go reference-time layout for calendar dates").MinLength(1),
	"sections": schema.Array("Work sections in document order",
		schema.Object(map[string]*schema.Property{
			"title":  schema.Scalar("Section title; bolded when plain text"),
			"marker": schema.String("List marker passed to the renderer").MinLength(1),
			"experiences": schema.Array("Entries in call order",
				schema.Object(map[string]*schema.Property{
					"name":     schema.String("Optional entry name; named entries sort first"),
					"position": schema.Scalar("Role title"),
					"company":  schema.Scalar("Employer"),
					"location": schema.Scalar("Where the work happened"),
					"start":    schema.Scalar("Range start"),
					"end":      schema.Scalar("Range end"),
					"body":     schema.Scalar("Detail block below the header line"),
				}, "body")),
		}, "experiences")),
}, "sections"))
