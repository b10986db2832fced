package resume

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rickchristie/vitae"
	"gopkg.in/yaml.v3"
)

// Load errors
var (
	ErrInvalidYAML = errors.New("invalid YAML in resume file")
	ErrEmptyBody   = errors.New("experience body must not be empty")
)

// Document is a loaded, validated resume document.
type Document struct {
	// Name is the display name for preview tools. May be empty.
	Name string
	// DateLayout overrides the date layout for every section. Empty keeps
	// vitae.DefaultDateLayout.
	DateLayout string
	// Sections in document order.
	Sections []Section
}

// Section is one work section of the document.
type Section struct {
	Title  vitae.Field
	Marker string
	// Entries in file order. Named entries sort before positional ones when
	// the section is built, per the work-section merge policy.
	Entries []Entry
}

// Entry pairs an experience with its optional name.
type Entry struct {
	Name       string
	Experience vitae.WorkExperience
}

// Load reads a YAML resume document, validates it against the document
// schema, and maps it onto vitae records.
func Load(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file: %w", err)
	}
	return parse(raw)
}

// LoadFile is Load on the contents of path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open resume file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func parse(raw []byte) (*Document, error) {
	// First pass: generic decode for schema validation, so structural errors
	// surface with their path before any field decoding runs.
	var generic map[string]any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if err := documentSchema.Validate(generic); err != nil {
		return nil, err
	}

	// Second pass: typed decode with field-variant resolution.
	var doc fileDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	return doc.toDocument()
}

// fileDocument mirrors the YAML structure of a resume file.
type fileDocument struct {
	Name       string        `yaml:"name"`
	DateLayout string        `yaml:"date_layout"`
	Sections   []fileSection `yaml:"sections"`
}

type fileSection struct {
	Title       vitae.Field `yaml:"title"`
	Marker      string      `yaml:"marker"`
	Experiences []fileEntry `yaml:"experiences"`
}

type fileEntry struct {
	Name     string      `yaml:"name"`
	Position vitae.Field `yaml:"position"`
	Company  vitae.Field `yaml:"company"`
	Location vitae.Field `yaml:"location"`
	Start    vitae.Field `yaml:"start"`
	End      vitae.Field `yaml:"end"`
	Body     vitae.Field `yaml:"body"`
}

func (d fileDocument) toDocument() (*Document, error) {
	out := &Document{
		Name:       d.Name,
		DateLayout: d.DateLayout,
		Sections:   make([]Section, 0, len(d.Sections)),
	}
	for si, s := range d.Sections {
		sec := Section{
			Title:   s.Title,
			Marker:  s.Marker,
			Entries: make([]Entry, 0, len(s.Experiences)),
		}
		for ei, e := range s.Experiences {
			exp, err := e.toExperience()
			if err != nil {
				return nil, fmt.Errorf(
					"sections[%d].experiences[%d]: %w", si, ei, err)
			}
			sec.Entries = append(sec.Entries, Entry{
				Name:       e.Name,
				Experience: exp,
			})
		}
		out.Sections = append(out.Sections, sec)
	}
	return out, nil
}

func (e fileEntry) toExperience() (vitae.WorkExperience, error) {
	body, err := bodyContent(e.Body)
	if err != nil {
		return vitae.WorkExperience{}, err
	}
	return vitae.WorkExperience{
		Position: e.Position,
		Company:  e.Company,
		Location: e.Location,
		Start:    e.Start,
		End:      e.End,
		Body:     body,
	}, nil
}

// bodyContent converts the mandatory body field to content. The schema
// guarantees the key is present; this guards against a present-but-empty
// value.
func bodyContent(body vitae.Field) (vitae.Content, error) {
	var c vitae.Content
	switch body.Kind() {
	case vitae.FieldText:
		c = vitae.Str{Value: body.Text()}
	case vitae.FieldRich:
		c = body.Rich()
	case vitae.FieldDate:
		c = vitae.Str{Value: body.Date().String()}
	default:
		return nil, ErrEmptyBody
	}
	if vitae.IsEmpty(c) {
		return nil, ErrEmptyBody
	}
	return c, nil
}

// Build assembles the section's entries into a vitae.WorkSection: named
// entries first in file order, then positional entries in file order.
func (s Section) Build() vitae.WorkSection {
	b := vitae.NewWorkSection().WithTitle(s.Title)
	for _, e := range s.Entries {
		if e.Name != "" {
			b.AddNamed(e.Name, e.Experience)
		} else {
			b.Add(e.Experience)
		}
	}
	return b.Build()
}

// Content formats every section of the document into one content tree,
// sections separated as blocks.
func (d *Document) Content() vitae.Content {
	items := make([]vitae.Content, 0, len(d.Sections))
	for _, s := range d.Sections {
		formatter := vitae.NewSectionFormatter().
			WithListMarker(s.Marker).
			WithDateLayout(d.DateLayout)
		items = append(items, vitae.Block{Body: formatter.Format(s.Build())})
	}
	return vitae.Seq{Items: items}
}
