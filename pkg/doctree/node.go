// Package doctree builds in-memory trees of markup nodes and renders them
// to HTML-like text.
//
// A tree is assembled programmatically from two node kinds: Text leaves and
// Element composites. Serialization is pull-based: OuterMarkup and
// InnerMarkup are recomputed from the current tree on every call, so
// mutations to a subtree are visible immediately without any invalidation
// step.
//
// The package does no locking. If multiple goroutines share a tree, the
// embedding application must serialize every read and mutation itself.
package doctree

import "io"

// Node is a single node in a document tree, either a *Text or an *Element.
type Node interface {
	// OuterMarkup returns the node's complete serialized form, including
	// its own tag.
	OuterMarkup() string

	// InnerMarkup returns the serialized content between the node's tags:
	// the concatenated outer markup of its children, or the raw text for
	// a Text leaf.
	InnerMarkup() string

	// Accept dispatches to the visitor handler matching the node's
	// concrete kind. Descending into children is the visitor's job, not
	// the node's.
	Accept(v Visitor)
}

var (
	_ Node = (*Text)(nil)
	_ Node = (*Element)(nil)
)

// Write writes the outer markup of n to w.
func Write(w io.Writer, n Node) error {
	_, err := io.WriteString(w, n.OuterMarkup())
	return err
}
