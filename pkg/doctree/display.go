package doctree

// Display is a pluggable rendering policy consulted by Element.Render.
// Implementations are expected to be stateless; the two built-in policies
// wrap an element's inner markup in a generic container tag.
type Display interface {
	Render(e *Element) string
}

// Block wraps inner markup in a <div> container.
var Block Display = blockDisplay{}

// Inline wraps inner markup in a <span> container.
var Inline Display = inlineDisplay{}

type blockDisplay struct{}

func (blockDisplay) Render(e *Element) string {
	return "<div>" + e.InnerMarkup() + "</div>"
}

type inlineDisplay struct{}

func (inlineDisplay) Render(e *Element) string {
	return "<span>" + e.InnerMarkup() + "</span>"
}
