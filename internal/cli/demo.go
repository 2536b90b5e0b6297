package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/kilianc/doctree/internal/logging"
	"github.com/kilianc/doctree/internal/outfile"
	"github.com/kilianc/doctree/pkg/doctree"
	"github.com/kilianc/doctree/pkg/gomponents"
)

// runDemo builds the sample shopping-list tree and writes every library
// output for it to w. When outPath is non-empty the final outer markup is
// also written to that file.
func runDemo(w io.Writer, outPath string) error {
	logger := logging.GetLogger("demo")

	ul := doctree.NewElement("ul", doctree.Paired)
	ul.AddClass("shopping-list")
	for _, item := range []string{"Apples", "Milk", "Bread"} {
		li := doctree.NewElement("li", doctree.Paired)
		if err := li.AddChild(doctree.NewText(item)); err != nil {
			return err
		}
		if err := ul.AddChild(li); err != nil {
			return err
		}
	}
	logger.Debug().
		Str("tag", ul.Tag()).
		Stringer("shape", ul.Shape()).
		Int("children", len(ul.Children())).
		Msg("built sample tree")

	// Self-closing elements refuse children; show the failure mode too.
	br := doctree.NewElement("br", doctree.SelfClosing)
	if err := br.AddChild(doctree.NewText("x")); err != nil {
		logger.Debug().Err(err).Msg("self-closing elements reject children")
	}

	fmt.Fprintln(w, "outer:     ", ul.OuterMarkup())
	fmt.Fprintln(w, "inner:     ", ul.InnerMarkup())
	fmt.Fprintln(w, "void:      ", br.OuterMarkup())

	fmt.Fprintln(w, "block:     ", ul.Render())
	ul.SetDisplay(doctree.Inline)
	fmt.Fprintln(w, "inline:    ", ul.Render())
	ul.SetDisplay(doctree.Block)

	counter := &doctree.ElementCounter{}
	ul.Accept(counter)
	fmt.Fprintln(w, "elements:  ", counter.Count())

	gn, err := gomponents.Lower(ul)
	if err != nil {
		return err
	}
	var lowered strings.Builder
	if err := gn.Render(&lowered); err != nil {
		return err
	}
	fmt.Fprintln(w, "gomponents:", lowered.String())

	cmd := doctree.AddClassCommand(ul, "done")
	cmd.Execute()
	fmt.Fprintln(w, "after cmd: ", ul.OuterMarkup())

	if outPath != "" {
		if err := outfile.WriteMarkupFile(outPath, []byte(ul.OuterMarkup()+"\n")); err != nil {
			return err
		}
		logger.Info().Str("path", outPath).Msg("wrote markup file")
	}

	return nil
}
