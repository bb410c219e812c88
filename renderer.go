package optree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/halvard/optree/types/doc"
	"github.com/halvard/optree/util"
)

// Renderer lays a documentation tree out on an output stream. The engine
// only builds the tree; embedders can swap the layout policy.
type Renderer interface {
	Render(w io.Writer, block doc.Block)
}

// DefaultRenderer prints one block line per output line, wrapping lines
// wider than the terminal at word boundaries. Wrapped continuations keep the
// original line's indentation.
type DefaultRenderer struct {
	width int
}

// NewRenderer creates a DefaultRenderer sized to the terminal attached to
// stdout, falling back to 80 columns.
func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{width: util.TerminalWidth(os.Stdout, 80)}
}

// NewRendererWithWidth creates a DefaultRenderer with a fixed column width.
// A width of zero or less disables wrapping.
func NewRendererWithWidth(width int) *DefaultRenderer {
	return &DefaultRenderer{width: width}
}

func (r *DefaultRenderer) Render(w io.Writer, block doc.Block) {
	for _, line := range block.Lines() {
		for _, wrapped := range r.wrap(line) {
			fmt.Fprintln(w, wrapped)
		}
	}
}

func (r *DefaultRenderer) wrap(line string) []string {
	if r.width <= 0 || len(line) <= r.width {
		return []string{line}
	}

	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	var out []string
	current := indent + words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > r.width {
			out = append(out, current)
			current = indent + word
			continue
		}
		current += " " + word
	}

	return append(out, current)
}
