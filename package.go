// Package vitae assembles resume content - today, work-experience entries and
// their section - into a rich-content tree that markup renderers materialize.
//
// The library is a pure content constructor: no I/O, no shared state, no
// errors from formatting. A host renderer (see the render package) walks the
// resulting tree and emits target markup such as Typst.
//
// # Quick Start
//
//	exp := vitae.WorkExperience{
//	    Position: vitae.Text("Owner"),
//	    Company:  vitae.Text("Lemonade Stand LLC"),
//	    Location: vitae.Text("5th St."),
//	    Start:    vitae.Date(vitae.NewDate(2042, time.January, 1)),
//	    Body:     vitae.Str{Value: "Sold lemonade to the neighborhood."},
//	}
//
//	section := vitae.NewWorkSection().
//	    WithTitle(vitae.Text("Employment")).
//	    Add(exp).
//	    Build()
//
//	content := vitae.NewSectionFormatter().
//	    WithListMarker("◆").
//	    WithDateLayout("Jan 2006").
//	    Format(section)
//
//	markup, err := render.NewTypst().Render(content)
//
// # Fields
//
// Every header field of a record is a [Field]: a closed union of absent,
// plain text, rich content, or a calendar date. The zero Field is absent, so
// optional fields need no pointers or sentinels:
//
//	vitae.WorkExperience{
//	    Company: vitae.Text("B"),           // plain text, will be emphasized
//	    Start:   vitae.Date(vitae.NewDate(2042, time.January, 1)),
//	    End:     vitae.Rich(vitae.Raw{Markup: "#smallcaps[Present]"}),
//	    Body:    body,                      // Body is mandatory
//	}
//
// Formatters branch exhaustively on the field kind; there is no silent
// pass-through for unrecognized shapes.
//
// # Layout of a Formatted Entry
//
// Each entry becomes one header line plus a body block:
//
//	_Owner_, _Lemonade Stand LLC_ — 5th St.        Jan 2042–Mar 2042
//	Sold lemonade to the neighborhood.
//
// The left region joins position, company, and location, inserting ", " and
// " — " only between two present values. The right region joins start and
// end with an en-dash that appears whenever either endpoint is present, so
// open ranges keep their dash ("Jan 2042–"). A flexible spacer ([HFill])
// between the regions pushes the dates to the right edge.
//
// # Sections
//
// [WorkSectionBuilder] merges named entries (insertion order) ahead of
// positional entries (insertion order) and [SectionFormatter] renders the
// bolded title above a bullet list of formatted entries.
//
// # Subpackages
//
//   - render: markup backends (Typst, plain text) for [Content] trees.
//   - resume: YAML resume documents, schema-validated and mapped onto
//     records.
//   - schema: JSON Schema building and validation.
//   - tailor: LLM-assisted rewriting of entry bodies.
package vitae
