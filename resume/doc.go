// Package resume loads declarative YAML resume documents and maps them onto
// vitae records.
//
// # File Format
//
//	name: Jane Doe
//	date_layout: Jan 2006
//	sections:
//	  - title: Employment
//	    marker: "◆"
//	    experiences:
//	      - name: day-job          # named entries sort before positional ones
//	        position: Owner
//	        company: Lemonade Stand LLC
//	        location: 5th St.
//	        start: 2042-01-01      # bare dates become calendar dates
//	        end: !markup "#smallcaps[Present]"
//	        body: Sold lemonade to the neighborhood.
//	      - position: Volunteer    # positional entry
//	        body: !markup "Organized the #emph[annual] street fair."
//
// Header fields follow the vitae.Field decoding rules: bare ISO dates become
// calendar dates, !markup tagged scalars become rich content, everything
// else is plain text. body is mandatory for every entry.
//
// # Validation
//
// Load validates the decoded document against a JSON Schema (see the schema
// package) before mapping, so structural mistakes - a missing body, a
// misspelled key - fail with a path-qualified error instead of producing a
// half-built resume.
//
// # Example Usage
//
//	doc, err := resume.LoadFile("resume.yaml")
//	if err != nil {
//	    return err
//	}
//	markup, err := render.NewTypst().Render(doc.Content())
package resume
