// Package doc implements the abstract documentation tree produced when
// describing a CLI definition. A Block is a rectangular arrangement of text
// lines which can be stacked vertically, concatenated horizontally or
// indented. Blocks carry no layout policy beyond that - rendering them to an
// output stream is the renderer's job.
package doc

import (
	"strings"
)

// Block is an immutable group of text lines. The zero value is an empty
// Block.
type Block struct {
	lines []string
}

// Text creates a Block from a string. Embedded newlines split the string
// into multiple lines.
func Text(s string) Block {
	if s == "" {
		return Block{}
	}

	return Block{lines: strings.Split(s, "\n")}
}

// Blank is a Block consisting of a single empty line.
func Blank() Block {
	return Block{lines: []string{""}}
}

// Gap is a single-line Block of n spaces, used as a column separator in
// horizontal concatenation.
func Gap(n int) Block {
	if n <= 0 {
		return Block{}
	}

	return Block{lines: []string{strings.Repeat(" ", n)}}
}

// Vertical stacks blocks on top of each other in argument order.
func Vertical(blocks ...Block) Block {
	var lines []string
	for _, b := range blocks {
		lines = append(lines, b.lines...)
	}

	return Block{lines: lines}
}

// Horizontal concatenates blocks side by side. Each block except the last is
// padded to its own width so columns line up; blocks shorter than the tallest
// one are padded with blank cells.
func Horizontal(blocks ...Block) Block {
	height := 0
	for _, b := range blocks {
		if len(b.lines) > height {
			height = len(b.lines)
		}
	}

	lines := make([]string, height)
	for i, b := range blocks {
		pad := i < len(blocks)-1
		width := b.Width()
		for row := 0; row < height; row++ {
			cell := ""
			if row < len(b.lines) {
				cell = b.lines[row]
			}
			if pad && len(cell) < width {
				cell += strings.Repeat(" ", width-len(cell))
			}
			lines[row] += cell
		}
	}

	return Block{lines: lines}
}

// Indent shifts every non-empty line right by n spaces. Blank lines stay
// blank so indented blocks never carry trailing whitespace.
func (b Block) Indent(n int) Block {
	if n <= 0 || len(b.lines) == 0 {
		return b
	}

	prefix := strings.Repeat(" ", n)
	lines := make([]string, len(b.lines))
	for i, line := range b.lines {
		if line == "" {
			continue
		}
		lines[i] = prefix + line
	}

	return Block{lines: lines}
}

// Width returns the length of the longest line.
func (b Block) Width() int {
	width := 0
	for _, line := range b.lines {
		if len(line) > width {
			width = len(line)
		}
	}

	return width
}

// Height returns the number of lines.
func (b Block) Height() int {
	return len(b.lines)
}

// Lines returns a copy of the block's lines.
func (b Block) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)

	return out
}

// String joins the block's lines with newlines. No trailing newline is
// appended.
func (b Block) String() string {
	return strings.Join(b.lines, "\n")
}
