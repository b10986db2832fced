package render

import (
	"fmt"
	"strings"

	"github.com/rickchristie/vitae"
)

// DefaultGap separates the left and right zones of a line when Plain renders
// a flexible spacer; plain text has no notion of remaining width to fill.
const DefaultGap = "    "

// DefaultMarker is the bullet used for list items without a marker override.
const DefaultMarker = "•"

// Plain renders content trees as plain text: styling is dropped, the
// flexible spacer becomes a fixed gap, and lists become marker-prefixed
// lines. Raw markup is passed through verbatim.
//
// Use it for CLI previews and test assertions.
type Plain struct {
	gap string
}

// NewPlain creates a plain-text renderer with DefaultGap.
func NewPlain() *Plain {
	return &Plain{
		gap: DefaultGap,
	}
}

// WithGap sets the text standing in for a flexible spacer.
func (r *Plain) WithGap(gap string) *Plain {
	r.gap = gap
	return r
}

// Render emits the plain-text approximation of the content tree.
func (r *Plain) Render(c vitae.Content) (string, error) {
	var sb strings.Builder
	if err := r.render(&sb, c); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (r *Plain) render(sb *strings.Builder, c vitae.Content) error {
	switch n := c.(type) {
	case nil:
		return nil
	case vitae.Str:
		sb.WriteString(n.Value)
		return nil
	case vitae.Raw:
		sb.WriteString(n.Markup)
		return nil
	case vitae.Emph:
		return r.render(sb, n.Body)
	case vitae.Strong:
		return r.render(sb, n.Body)
	case vitae.Seq:
		for _, item := range n.Items {
			if err := r.render(sb, item); err != nil {
				return err
			}
		}
		return nil
	case vitae.HFill:
		sb.WriteString(r.gap)
		return nil
	case vitae.Linebreak:
		sb.WriteString("\n")
		return nil
	case vitae.Block:
		sb.WriteString("\n")
		if err := r.render(sb, n.Body); err != nil {
			return err
		}
		sb.WriteString("\n")
		return nil
	case vitae.BulletList:
		return r.renderList(sb, n)
	default:
		return fmt.Errorf("%w: %T", vitae.ErrUnknownNode, c)
	}
}

func (r *Plain) renderList(sb *strings.Builder, list vitae.BulletList) error {
	marker := list.Marker
	if marker == "" {
		marker = DefaultMarker
	}
	for _, item := range list.Items {
		var body strings.Builder
		if err := r.render(&body, item); err != nil {
			return err
		}
		sb.WriteString(marker)
		sb.WriteString(" ")
		// Indent continuation lines so multi-line items read as one bullet.
		text := strings.TrimRight(body.String(), "\n")
		sb.WriteString(strings.ReplaceAll(text, "\n", "\n  "))
		sb.WriteString("\n")
	}
	return nil
}

// Compile-time check that Plain implements vitae.Renderer.
var _ vitae.Renderer = (*Plain)(nil)
