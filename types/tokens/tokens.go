// Package tokens holds the mutable sequence of unconsumed command-line
// arguments shared by a single parse. Tokens are only ever consumed from the
// head, so once a token has been popped it can never be revisited.
package tokens

import (
	"github.com/ef-ds/deque"
)

// Sequence is an ordered queue of argument tokens. A single Sequence is
// created per top-level dispatch and passed by reference through every
// nested option and command scan.
type Sequence struct {
	d deque.Deque
}

// New creates a Sequence holding args in order.
func New(args []string) *Sequence {
	s := &Sequence{}
	for _, arg := range args {
		s.d.PushBack(arg)
	}

	return s
}

// Len returns the number of unconsumed tokens.
func (s *Sequence) Len() int {
	return s.d.Len()
}

// Head returns the next token without consuming it. The second return value
// is false when the sequence is empty.
func (s *Sequence) Head() (string, bool) {
	v, ok := s.d.Front()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Pop consumes and returns the head token.
func (s *Sequence) Pop() (string, bool) {
	v, ok := s.d.PopFront()
	if !ok {
		return "", false
	}

	return v.(string), true
}

// Push appends a token to the end of the sequence.
func (s *Sequence) Push(tok string) {
	s.d.PushBack(tok)
}

// Drain consumes every remaining token and returns them in order.
func (s *Sequence) Drain() []string {
	out := make([]string, 0, s.d.Len())
	for {
		tok, ok := s.Pop()
		if !ok {
			return out
		}
		out = append(out, tok)
	}
}
