package render

import (
	"fmt"
	"strings"

	"github.com/rickchristie/vitae"
)

// Typst renders content trees as Typst markup.
//
// Styling nodes use Typst's function forms (#emph, #strong, #list) rather
// than shorthand markup, so rendered text can never be mistaken for
// delimiters. Str values are escaped; Raw markup is passed through verbatim.
type Typst struct{}

// NewTypst creates a new Typst renderer.
func NewTypst() *Typst {
	return &Typst{}
}

// Render emits Typst markup for the content tree.
func (r *Typst) Render(c vitae.Content) (string, error) {
	var sb strings.Builder
	if err := r.render(&sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Typst) render(sb *strings.Builder, c vitae.Content) error {
	switch n := c.(type) {
	case nil:
		return nil
	case vitae.Str:
		sb.WriteString(escapeTypst(n.Value))
		return nil
	case vitae.Raw:
		sb.WriteString(n.Markup)
		return nil
	case vitae.Emph:
		return r.wrap(sb, "#emph[", n.Body, "]")
	case vitae.Strong:
		return r.wrap(sb, "#strong[", n.Body, "]")
	case vitae.Seq:
		for _, item := range n.Items {
			if err := r.render(sb, item); err != nil {
				return err
			}
		}
		return nil
	case vitae.HFill:
		sb.WriteString("#h(1fr)")
		return nil
	case vitae.Linebreak:
		sb.WriteString("#linebreak()")
		return nil
	case vitae.Block:
		return r.wrap(sb, "#block[", n.Body, "]")
	case vitae.BulletList:
		return r.renderList(sb, n)
	default:
		return fmt.Errorf("%w: %T", vitae.ErrUnknownNode, c)
	}
}

func (r *Typst) wrap(sb *strings.Builder, opening string, body vitae.Content, closing string) error {
	sb.WriteString(opening)
	if err := r.render(sb, body); err != nil {
		return err
	}
	sb.WriteString(closing)
	return nil
}

func (r *Typst) renderList(sb *strings.Builder, list vitae.BulletList) error {
	sb.WriteString("#list(")
	if list.Marker != "" {
		fmt.Fprintf(sb, "marker: [%s], ", list.Marker)
	}
	for i, item := range list.Items {
		if i > 0 {
			sb.WriteString(", ")
		}
		if err := r.wrap(sb, "[", item, "]"); err != nil {
			return err
		}
	}
	sb.WriteString(")")
	return nil
}

// typstSpecial lists characters with markup meaning in Typst text mode.
const typstSpecial = "\\#$*_`@<>[]~"

// escapeTypst backslash-escapes characters Typst would otherwise interpret
// as markup.
func escapeTypst(s string) string {
	if !strings.ContainsAny(s, typstSpecial) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 4)
	for _, r := range s {
		if strings.ContainsRune(typstSpecial, r) {
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// Compile-time check that Typst implements vitae.Renderer.
var _ vitae.Renderer = (*Typst)(nil)
