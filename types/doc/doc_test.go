package doc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestText(t *testing.T) {
	assert.Equal(t, []string{"one line"}, Text("one line").Lines())
	assert.Equal(t, []string{"two", "lines"}, Text("two\nlines").Lines())
	assert.Equal(t, 0, Text("").Height())
}

func TestVertical(t *testing.T) {
	b := Vertical(Text("top"), Blank(), Text("bottom"))

	assert.Equal(t, "top\n\nbottom", b.String())
	assert.Equal(t, 3, b.Height())
}

func TestHorizontal_PadsColumnsToWidth(t *testing.T) {
	left := Text("name\nlonger-name")
	right := Text("first help\nsecond help")

	b := Horizontal(left, Gap(2), right)

	assert.Equal(t, []string{
		"name         first help",
		"longer-name  second help",
	}, b.Lines())
}

func TestHorizontal_UnevenHeights(t *testing.T) {
	b := Horizontal(Text("x"), Gap(1), Text("a\nb"))

	assert.Equal(t, []string{"x a", "  b"}, b.Lines())
}

func TestIndent(t *testing.T) {
	b := Vertical(Text("a"), Blank(), Text("b")).Indent(2)

	assert.Equal(t, []string{"  a", "", "  b"}, b.Lines())
}

func TestIndent_Zero(t *testing.T) {
	b := Text("a")

	assert.Equal(t, b.Lines(), b.Indent(0).Lines())
}

func TestWidth(t *testing.T) {
	assert.Equal(t, 5, Text("ab\nabcde\nc").Width())
	assert.Equal(t, 0, Block{}.Width())
}
