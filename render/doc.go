// Package render provides markup backends for vitae content trees.
//
// # Available Renderers
//
//   - [Typst]: emits Typst markup - the intended production target.
//   - [Plain]: emits a plain-text approximation - for previews and test
//     assertions where markup noise gets in the way.
//
// # Example Usage
//
//	content := vitae.NewSectionFormatter().Format(section)
//
//	markup, err := render.NewTypst().Render(content)
//	if err != nil {
//	    // a node the renderer does not know; wraps vitae.ErrUnknownNode
//	}
//
// # Custom Renderers
//
// Implement [vitae.Renderer] to target another markup language. Dispatch with
// a type switch over the node types in the vitae package and return
// [vitae.ErrUnknownNode] (wrapped) from the default branch; the node set is
// closed, so an exhaustive switch stays exhaustive.
package render
