package vitae

// DefaultSectionTitle is the title used when a work section has none.
const DefaultSectionTitle = "Work Experience"

// WorkSection is an immutable titled, ordered collection of work experiences.
// Build one with WorkSectionBuilder.
type WorkSection struct {
	title   Field
	entries []WorkExperience
}

// Title returns the section title field (absent when no override was given).
func (s WorkSection) Title() Field {
	return s.title
}

// Entries returns the merged entries in formatting order. The returned slice
// is a copy; mutating it does not affect the section.
func (s WorkSection) Entries() []WorkExperience {
	out := make([]WorkExperience, len(s.entries))
	copy(out, s.entries)
	return out
}

// WorkSectionBuilder assembles a WorkSection from named and positional
// entries. The merge policy is explicit: all named entries come first, in the
// order they were added, followed by all positional entries, in the order
// they were added - regardless of how AddNamed and Add calls interleave.
//
//	section := vitae.NewWorkSection().
//	    WithTitle(vitae.Text("Employment")).
//	    Add(freelance).
//	    AddNamed("dayjob", dayJob).
//	    Build()
//	// order: [dayJob, freelance]
type WorkSectionBuilder struct {
	title      Field
	named      []namedEntry
	positional []WorkExperience
}

type namedEntry struct {
	name string
	exp  WorkExperience
}

// NewWorkSection creates an empty builder with no title override.
func NewWorkSection() *WorkSectionBuilder {
	return &WorkSectionBuilder{}
}

// WithTitle sets the section title. Plain text is bolded when formatted; rich
// content passes through unchanged; an absent field falls back to
// DefaultSectionTitle, bolded.
func (b *WorkSectionBuilder) WithTitle(title Field) *WorkSectionBuilder {
	b.title = title
	return b
}

// AddNamed adds a named entry. Named entries keep their insertion order and
// sort before every positional entry. Re-using a name does not replace the
// earlier entry; both are kept in insertion order.
func (b *WorkSectionBuilder) AddNamed(name string, exp WorkExperience) *WorkSectionBuilder {
	b.named = append(b.named, namedEntry{name: name, exp: exp})
	return b
}

// Add appends positional entries in the order given.
func (b *WorkSectionBuilder) Add(exps ...WorkExperience) *WorkSectionBuilder {
	b.positional = append(b.positional, exps...)
	return b
}

// Build merges the entries (named first, positional after) into an immutable
// WorkSection. The builder can keep accumulating entries afterwards; the
// built section is unaffected.
func (b *WorkSectionBuilder) Build() WorkSection {
	merged := make([]WorkExperience, 0, len(b.named)+len(b.positional))
	for _, n := range b.named {
		merged = append(merged, n.exp)
	}
	merged = append(merged, b.positional...)
	return WorkSection{
		title:   b.title,
		entries: merged,
	}
}

// SectionFormatter renders a WorkSection: the title in bold above a bullet
// list with one formatted experience per item.
//
//	content := vitae.NewSectionFormatter().
//	    WithListMarker("◆").
//	    Format(section)
//
// Like ExperienceFormatter.Format, Format is pure and total.
type SectionFormatter struct {
	listMarker string
	experience *ExperienceFormatter
}

// NewSectionFormatter creates a formatter using the renderer's default list
// marker and DefaultDateLayout.
func NewSectionFormatter() *SectionFormatter {
	return &SectionFormatter{
		experience: NewExperienceFormatter(),
	}
}

// WithListMarker sets the list marker, passed through verbatim to the list
// container. An empty marker keeps the renderer's default.
func (f *SectionFormatter) WithListMarker(marker string) *SectionFormatter {
	f.listMarker = marker
	return f
}

// WithDateLayout sets the date layout forwarded to each per-entry format
// call.
func (f *SectionFormatter) WithDateLayout(layout string) *SectionFormatter {
	f.experience.WithDateLayout(layout)
	return f
}

// Format renders the section with the title above the entry list.
func (f *SectionFormatter) Format(sec WorkSection) Content {
	items := make([]Content, 0, len(sec.entries))
	for _, exp := range sec.entries {
		items = append(items, f.experience.Format(exp))
	}

	return Seq{Items: []Content{
		f.titleContent(sec.title),
		Linebreak{},
		BulletList{Marker: f.listMarker, Items: items},
	}}
}

// titleContent styles the title: text is bolded, rich content passes through,
// absence falls back to the bolded default. A date-valued title is rendered
// with the entry date layout and then bolded like text, keeping the switch
// total.
func (f *SectionFormatter) titleContent(title Field) Content {
	switch title.Kind() {
	case FieldAbsent:
		return Strong{Body: Str{Value: DefaultSectionTitle}}
	case FieldText:
		return Strong{Body: Str{Value: title.Text()}}
	case FieldRich:
		return title.Rich()
	case FieldDate:
		return Strong{Body: Str{Value: title.Date().Format(f.experience.dateLayout)}}
	default:
		return Strong{Body: Str{Value: DefaultSectionTitle}}
	}
}
