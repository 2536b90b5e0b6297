package doctree

// Visitor receives one callback per node kind via Node.Accept.
//
// Accept never descends on its own: a visitor that wants the whole subtree
// re-invokes Accept on each child itself. A visitor that does not recurse
// stops at that depth.
type Visitor interface {
	VisitText(t *Text)
	VisitElement(e *Element)
}

// ElementCounter counts element nodes in a subtree, pre-order and
// depth-first. Text leaves are never counted.
//
// Run it with root.Accept(counter), then read Count.
type ElementCounter struct {
	count int
}

// Count returns the number of elements seen so far.
func (c *ElementCounter) Count() int { return c.count }

// VisitText implements Visitor.
func (c *ElementCounter) VisitText(*Text) {}

// VisitElement implements Visitor.
func (c *ElementCounter) VisitElement(e *Element) {
	c.count++
	for _, child := range e.Children() {
		child.Accept(c)
	}
}

var _ Visitor = (*ElementCounter)(nil)
