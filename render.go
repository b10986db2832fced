package vitae

import "errors"

// Renderer materializes a Content tree into target markup.
//
// Implementations must dispatch exhaustively over the node types in this
// package and return ErrUnknownNode (wrapped) for anything else, rather than
// silently skipping it.
type Renderer interface {
	Render(c Content) (string, error)
}

// Render errors
var (
	// ErrUnknownNode reports a content node the renderer does not recognize.
	ErrUnknownNode = errors.New("unknown content node")
)
