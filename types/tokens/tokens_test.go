package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequence_HeadDoesNotConsume(t *testing.T) {
	seq := New([]string{"a", "b"})

	head, ok := seq.Head()
	assert.True(t, ok)
	assert.Equal(t, "a", head)
	assert.Equal(t, 2, seq.Len())
}

func TestSequence_PopConsumesInOrder(t *testing.T) {
	seq := New([]string{"a", "b", "c"})

	for _, want := range []string{"a", "b", "c"} {
		got, ok := seq.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := seq.Pop()
	assert.False(t, ok)
	_, ok = seq.Head()
	assert.False(t, ok)
}

func TestSequence_Push(t *testing.T) {
	seq := New(nil)
	seq.Push("x")
	seq.Push("y")

	assert.Equal(t, []string{"x", "y"}, seq.Drain())
}

func TestSequence_Drain(t *testing.T) {
	seq := New([]string{"a", "b"})

	assert.Equal(t, []string{"a", "b"}, seq.Drain())
	assert.Equal(t, 0, seq.Len())
	assert.Equal(t, []string{}, seq.Drain())
}
