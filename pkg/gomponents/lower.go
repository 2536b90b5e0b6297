// Package gomponents lowers doctree nodes to gomponents nodes, so a tree
// built with doctree can be embedded in a gomponents view.
//
// Lowering preserves structure, tags and classes. The result renders with
// gomponents' own writer semantics (void elements, attribute escaping),
// which may differ byte-for-byte from doctree's OuterMarkup.
package gomponents

import (
	"fmt"
	"strings"

	g "maragu.dev/gomponents"

	"github.com/kilianc/doctree/pkg/doctree"
)

// Lower converts a doctree node into a gomponents node.
func Lower(n doctree.Node) (g.Node, error) {
	switch t := n.(type) {
	case *doctree.Text:
		// doctree text is verbatim by contract, so it must not be
		// re-escaped on the way out.
		return g.Raw(t.Content()), nil
	case *doctree.Element:
		return lowerElement(t)
	default:
		return nil, fmt.Errorf("unsupported node type %T", n)
	}
}

func lowerElement(e *doctree.Element) (g.Node, error) {
	var args []g.Node

	// class attr first, then children, matching doctree's serialization order
	if classes := e.Classes(); len(classes) > 0 {
		args = append(args, g.Attr("class", strings.Join(classes, " ")))
	}
	for _, c := range e.Children() {
		cx, err := Lower(c)
		if err != nil {
			return nil, err
		}
		args = append(args, cx)
	}

	return g.El(e.Tag(), args...), nil
}
