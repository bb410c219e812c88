package optree

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/halvard/optree/types/doc"
)

func TestDefaultRenderer_WritesOneLinePerRow(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWidth(80)

	r.Render(&buf, doc.Vertical(doc.Text("a"), doc.Blank(), doc.Text("b")))

	assert.Equal(t, "a\n\nb\n", buf.String())
}

func TestDefaultRenderer_WrapsAtWordBoundaries(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWidth(16)

	r.Render(&buf, doc.Text("  one two three four five").Indent(0))

	assert.Equal(t, "  one two three\n  four five\n", buf.String())
}

func TestDefaultRenderer_ZeroWidthDisablesWrapping(t *testing.T) {
	var buf bytes.Buffer
	r := NewRendererWithWidth(0)
	long := "a line much longer than any reasonable terminal width would ever be in practice"

	r.Render(&buf, doc.Text(long))

	assert.Equal(t, long+"\n", buf.String())
}
