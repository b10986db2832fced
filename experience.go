package vitae

// WorkExperience is one work-experience record. All fields except Body are
// independently optional (zero Field = absent) and carry no cross-field
// constraints. Records are plain immutable values with no identity;
// formatting never modifies them.
type WorkExperience struct {
	// Company, Location, Position label the engagement. Company and Position
	// get emphasis styling when supplied as plain text; Location is never
	// auto-styled.
	Company  Field
	Location Field
	Position Field

	// Start and End bound the engagement. Calendar dates are rendered with
	// the formatter's date layout; text and rich values pass through as-is.
	Start Field
	End   Field

	// Body is the block of detail content below the header line. Mandatory.
	Body Content
}

// ExperienceFormatter converts one WorkExperience into a content block:
// a header line with a left-aligned leading zone (position, company,
// location), a flexible spacer, a right-aligned date zone, and the body as a
// block below.
//
//	formatter := vitae.NewExperienceFormatter().
//	    WithDateLayout("January 2006")
//	content := formatter.Format(exp)
//
// Format is a pure, total function: it raises no errors and has no side
// effects.
type ExperienceFormatter struct {
	dateLayout string
}

// NewExperienceFormatter creates a formatter with DefaultDateLayout.
func NewExperienceFormatter() *ExperienceFormatter {
	return &ExperienceFormatter{
		dateLayout: DefaultDateLayout,
	}
}

// WithDateLayout sets the Go reference-time layout used to render calendar
// dates. An empty layout keeps the default.
func (f *ExperienceFormatter) WithDateLayout(layout string) *ExperienceFormatter {
	if layout != "" {
		f.dateLayout = layout
	}
	return f
}

// Format assembles the experience into rich content.
func (f *ExperienceFormatter) Format(exp WorkExperience) Content {
	leading := f.leadingZone(exp)
	dates := f.dateZone(exp.Start, exp.End)

	items := make([]Content, 0, 4)
	if !IsEmpty(leading) {
		items = append(items, leading)
	}
	items = append(items, HFill{})
	if !IsEmpty(dates) {
		items = append(items, dates)
	}
	items = append(items, Block{Body: exp.Body})
	return Seq{Items: items}
}

// leadingZone builds the left-aligned header region. Separators are inserted
// only between two present values: an absent field contributes nothing and
// triggers no separator on either side.
func (f *ExperienceFormatter) leadingZone(exp WorkExperience) Content {
	acc := emphasize(f.normalize(exp.Position))
	acc = joinOptional(acc, ", ", emphasize(f.normalize(exp.Company)))
	acc = joinOptional(acc, " — ", plainContent(f.normalize(exp.Location)))
	return acc
}

// dateZone builds the right-aligned date range. Unlike the leading zone, the
// en-dash separator appears whenever either endpoint is present, so open
// ranges render as "Jan 2042–" or "–Jan 2042". The two join rules are
// deliberately distinct; unifying them would change output for open ranges.
func (f *ExperienceFormatter) dateZone(start, end Field) Content {
	s := plainContent(f.normalize(start))
	e := plainContent(f.normalize(end))
	if IsEmpty(s) && IsEmpty(e) {
		return nil
	}

	items := make([]Content, 0, 3)
	if !IsEmpty(s) {
		items = append(items, s)
	}
	items = append(items, Str{Value: "–"})
	if !IsEmpty(e) {
		items = append(items, e)
	}
	return Seq{Items: items}
}

// normalize renders calendar dates to text with the configured layout; other
// variants pass through unchanged. Normalization runs before styling, so a
// normalized date is styled exactly like supplied plain text.
func (f *ExperienceFormatter) normalize(field Field) Field {
	if field.Kind() == FieldDate {
		return Text(field.Date().Format(f.dateLayout))
	}
	return field
}

// plainContent converts a field to content without styling.
func plainContent(field Field) Content {
	switch field.Kind() {
	case FieldAbsent:
		return nil
	case FieldText:
		return Str{Value: field.Text()}
	case FieldRich:
		return field.Rich()
	case FieldDate:
		return Str{Value: field.Date().Format(DefaultDateLayout)}
	default:
		return nil
	}
}

// emphasize converts a field to content, wrapping plain text in Emph. Rich
// content is passed through unmodified.
func emphasize(field Field) Content {
	switch field.Kind() {
	case FieldAbsent:
		return nil
	case FieldText:
		return Emph{Body: Str{Value: field.Text()}}
	case FieldRich:
		return field.Rich()
	case FieldDate:
		return Emph{Body: Str{Value: field.Date().Format(DefaultDateLayout)}}
	default:
		return nil
	}
}
