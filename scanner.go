package optree

import (
	"fmt"
	"strings"

	"github.com/halvard/optree/types/tokens"
)

// Terminator ends option scanning for the current list; the remaining
// tokens are treated as positional values or sub-commands.
const Terminator = "--"

// scanOptions greedily consumes option tokens from the head of seq against
// opts. It returns when the sequence is empty, when the head token does not
// start with "-", or after consuming the "--" terminator. A "-"-prefixed
// token matching no declared option is fatal.
//
// On a non-halting return the head token, if any, is guaranteed to be a
// positional or command token.
func scanOptions(d *Definition, opts []Option, seq *tokens.Sequence, store *Store) Result {
	for {
		head, ok := seq.Head()
		if !ok || !strings.HasPrefix(head, "-") {
			return Continue()
		}
		if head == Terminator {
			seq.Pop()
			return Continue()
		}

		applied := false
		for _, opt := range opts {
			if !opt.Matches(seq) {
				continue
			}
			if res := opt.Apply(d, seq, store); res.Halts() {
				return res
			}
			applied = true
			break
		}
		if !applied {
			return d.fail(fmt.Errorf("%w %s", ErrUnknownOption, head))
		}
	}
}
