package vitae

// Content is a node in the rich-content tree handed to a markup renderer.
//
// The node set is closed: the unexported marker method keeps outside packages
// from adding shapes a renderer would not know how to emit. Renderers dispatch
// with an exhaustive type switch over the concrete types below.
//
// Content values are immutable by convention - formatters always build new
// trees and never write into the nodes they receive.
type Content interface {
	content()
}

// Str is a plain text node. Renderers escape it as needed for their target
// markup.
type Str struct {
	Value string
}

// Emph renders its body with emphasis (italics).
type Emph struct {
	Body Content
}

// Strong renders its body in bold.
type Strong struct {
	Body Content
}

// Seq concatenates its items in order with no separator of its own.
type Seq struct {
	Items []Content
}

// HFill is a flexible horizontal spacer: it expands to consume all remaining
// width on the current line, pushing whatever follows to the right edge.
type HFill struct{}

// Linebreak forces a line break within the current block.
type Linebreak struct{}

// Block renders its body as its own block, on a new line below whatever
// precedes it.
type Block struct {
	Body Content
}

// BulletList is a list container. Marker overrides the renderer's default
// bullet marker when non-empty; it is passed through to the target markup
// verbatim.
type BulletList struct {
	Marker string
	Items  []Content
}

// Raw is verbatim markup passed through to the renderer without escaping.
// Use it to inject pre-built rich content in the target markup language.
type Raw struct {
	Markup string
}

func (Str) content()        {}
func (Emph) content()       {}
func (Strong) content()     {}
func (Seq) content()        {}
func (HFill) content()      {}
func (Linebreak) content()  {}
func (Block) content()      {}
func (BulletList) content() {}
func (Raw) content()        {}

// IsEmpty reports whether c contains nothing renderable: nil, an empty Str or
// Raw, or a Seq whose items are all empty. Styled nodes count as non-empty
// only if their body does.
func IsEmpty(c Content) bool {
	switch n := c.(type) {
	case nil:
		return true
	case Str:
		return n.Value == ""
	case Raw:
		return n.Markup == ""
	case Seq:
		for _, item := range n.Items {
			if !IsEmpty(item) {
				return false
			}
		}
		return true
	case Emph:
		return IsEmpty(n.Body)
	case Strong:
		return IsEmpty(n.Body)
	default:
		return false
	}
}

// joinOptional joins two optional content values with a separator, treating
// absence as the identity: it returns left when right is empty, right when
// left is empty, and left+sep+right otherwise. The separator never appears
// next to an empty side.
func joinOptional(left Content, sep string, right Content) Content {
	if IsEmpty(right) {
		return left
	}
	if IsEmpty(left) {
		return right
	}
	return Seq{Items: []Content{left, Str{Value: sep}, right}}
}
