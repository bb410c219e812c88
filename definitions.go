package optree

import (
	"errors"

	"github.com/halvard/optree/types/tokens"
)

// Exit status reported through the injected exit function. The failure
// status is deliberately -1 rather than the conventional 1 to stay
// compatible with the original contract.
const (
	ExitSuccess = 0
	ExitFailure = -1
)

// Sentinel errors for every fatal condition the engine can hit. The wrapped
// message text is part of the external contract and must not change.
var (
	ErrNoCommand         = errors.New("Invalid arguments - no command specified")
	ErrUnknownCommand    = errors.New("Invalid command")
	ErrUnknownOption     = errors.New("Invalid option")
	ErrMissingValue      = errors.New("requires a value")
	ErrTooManyArgs       = errors.New("Too many arguments")
	ErrUnknownHelpTarget = errors.New("Unknown command")
)

// Result is the control-flow outcome of a parse step. A step either
// continues the scan or halts the whole dispatch with an exit status.
// Halting is a decision, not an exit: only Definition.Run translates a
// halting Result into a call to the injected exit function, which keeps the
// engine embeddable in processes that must not terminate.
type Result struct {
	halt   bool
	status int
}

// Continue reports that parsing should carry on with the remaining tokens.
func Continue() Result {
	return Result{}
}

// Halt stops the dispatch and carries the exit status to report.
func Halt(status int) Result {
	return Result{halt: true, status: status}
}

// Halts reports whether the Result stops the dispatch.
func (r Result) Halts() bool {
	return r.halt
}

// Status returns the exit status carried by a halting Result.
func (r Result) Status() int {
	return r.status
}

// ActionFunc is the callback run when an Action option matches. It may
// inspect or consume further tokens and decide whether the dispatch
// continues or halts.
type ActionFunc func(d *Definition, seq *tokens.Sequence, store *Store) Result

// CommandFunc is the callback run when a ValueCommand has consumed its
// options and positional value. The value is nil when an optional positional
// was not supplied.
type CommandFunc func(d *Definition, store *Store, value *string) Result

// ExitFunc terminates the hosting process with the given status.
type ExitFunc func(status int)

// ConfigureDefinitionFunc is used when declaring a Definition.
type ConfigureDefinitionFunc func(d *Definition)

// ConfigureOptionFunc is used when declaring an Option variant.
type ConfigureOptionFunc func(o *option)

// ConfigureCommandFunc is used when declaring a ValueCommand.
type ConfigureCommandFunc func(c *ValueCommand)
