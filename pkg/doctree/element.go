package doctree

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidStructure is returned by AddChild when the target element's
// shape forbids children.
var ErrInvalidStructure = errors.New("self-closing element cannot have children")

// Shape says whether a tag is self-closing or requires a matching close tag.
type Shape int

const (
	// Paired elements serialize as <tag>...</tag> and may hold children.
	Paired Shape = iota
	// SelfClosing elements serialize as <tag /> and never hold children.
	SelfClosing
)

func (s Shape) String() string {
	switch s {
	case Paired:
		return "paired"
	case SelfClosing:
		return "self-closing"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Element is a composite node: a tag with CSS classes, ordered children and
// a swappable display policy.
//
// Tag and shape are fixed at construction. Classes and children are
// append-only; children are owned exclusively by their parent, so the tree
// stays a tree.
type Element struct {
	tag      string
	shape    Shape
	classes  []string
	children []Node
	display  Display
}

// NewElement returns an element with the given tag and shape, no classes,
// no children, and the Block display policy.
func NewElement(tag string, shape Shape) *Element {
	return &Element{tag: tag, shape: shape, display: Block}
}

// Tag returns the element's tag name.
func (e *Element) Tag() string { return e.tag }

// Shape returns the element's tag shape.
func (e *Element) Shape() Shape { return e.shape }

// Classes returns the element's class names in insertion order. The slice
// is owned by the element and must not be modified by the caller.
func (e *Element) Classes() []string { return e.classes }

// Children returns the element's child nodes in insertion order. The slice
// is owned by the element and must not be modified by the caller.
func (e *Element) Children() []Node { return e.children }

// AddClass appends a class name. Duplicates are kept and order is
// preserved; the name is not validated.
func (e *Element) AddClass(name string) {
	e.classes = append(e.classes, name)
}

// AddChild appends a child node. It fails with ErrInvalidStructure on a
// self-closing element and leaves the element unchanged.
func (e *Element) AddChild(n Node) error {
	if e.shape == SelfClosing {
		return fmt.Errorf("add child to <%s />: %w", e.tag, ErrInvalidStructure)
	}
	e.children = append(e.children, n)
	return nil
}

// SetDisplay replaces the element's display policy used by Render.
func (e *Element) SetDisplay(d Display) {
	e.display = d
}

// Render wraps the element's inner markup using its current display
// policy. This is independent from OuterMarkup: same state, different
// output.
func (e *Element) Render() string {
	return e.display.Render(e)
}

// InnerMarkup implements Node. It concatenates the outer markup of every
// child in order.
func (e *Element) InnerMarkup() string {
	var b strings.Builder
	for _, c := range e.children {
		b.WriteString(c.OuterMarkup())
	}
	return b.String()
}

// OuterMarkup implements Node.
//
// Paired elements produce <tag>inner</tag>, self-closing ones <tag />.
// The class attribute is omitted entirely when no classes are set.
func (e *Element) OuterMarkup() string {
	var b strings.Builder
	b.WriteByte('<')
	b.WriteString(e.tag)
	if len(e.classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(strings.Join(e.classes, " "))
		b.WriteByte('"')
	}
	if e.shape == SelfClosing {
		b.WriteString(" />")
		return b.String()
	}
	b.WriteByte('>')
	b.WriteString(e.InnerMarkup())
	b.WriteString("</")
	b.WriteString(e.tag)
	b.WriteByte('>')
	return b.String()
}

// Accept implements Node.
func (e *Element) Accept(v Visitor) { v.VisitElement(e) }
