package doctree

// Text is a leaf node holding literal content, set once at construction.
//
// Content is emitted verbatim; the package performs no escaping.
type Text struct {
	content string
}

// NewText returns a leaf node that serializes to content as-is.
func NewText(content string) *Text {
	return &Text{content: content}
}

// Content returns the literal text the node was built with.
func (t *Text) Content() string { return t.content }

// OuterMarkup implements Node.
func (t *Text) OuterMarkup() string { return t.content }

// InnerMarkup implements Node.
func (t *Text) InnerMarkup() string { return t.content }

// Accept implements Node.
func (t *Text) Accept(v Visitor) { v.VisitText(t) }
