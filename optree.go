// Package optree provides declarative command-line definition and dispatch.
//
// A program declares its interface once, as a static tree of options,
// commands and per-command options, then hands the process arguments to the
// tree. The engine consumes tokens left to right, validates them against the
// declared grammar, fills a shared value store as options are recognized and
// invokes the matching command's action. Help text is generated from the
// same tree.
//
// It supports 3 option variants:
//
//	ValueOption - matches --tag=value and stores the value
//	Flag        - matches a bare tag and stores the boolean true
//	Action      - matches a bare tag and runs a callback
//
// Errors are fatal by design: the first token that does not fit the grammar
// produces a single "Error: ..." diagnostic and a halting Result. The engine
// never calls os.Exit itself; Definition.Run forwards a halting Result to an
// injectable exit function.
package optree

import (
	"fmt"
	"io"
	"os"

	"github.com/halvard/optree/internal/parse"
	"github.com/halvard/optree/types/doc"
	"github.com/halvard/optree/types/tokens"
)

// Definition is the root of the declarative tree: the program name, its
// description, the global options and the top-level commands. It is built
// once by the hosting program and treated as read-only during dispatch.
type Definition struct {
	Name    string
	Help    string
	Options []Option
	Cmds    []Command

	output   io.Writer
	exit     ExitFunc
	renderer Renderer
}

// New declares a Definition. Output defaults to os.Stdout (error diagnostics
// included - the contract routes them to standard output, not standard
// error), exit to os.Exit and the renderer to a terminal-width-aware
// DefaultRenderer.
func New(configs ...ConfigureDefinitionFunc) *Definition {
	d := &Definition{
		output: os.Stdout,
		exit:   os.Exit,
	}
	for _, config := range configs {
		config(d)
	}
	if d.renderer == nil {
		d.renderer = NewRenderer()
	}

	return d
}

// Output returns the writer help and diagnostics are written to.
func (d *Definition) Output() io.Writer {
	return d.output
}

// Process runs the full dispatch against args (the process arguments minus
// the program name) and returns the outcome without terminating anything. A
// fresh Store backs every call, so processing the same arguments twice
// yields identical store contents.
func (d *Definition) Process(args []string) Result {
	store := NewStore()
	seq := tokens.New(args)

	if res := scanOptions(d, d.Options, seq, store); res.Halts() {
		return res
	}

	head, ok := seq.Head()
	if !ok {
		return d.fail(ErrNoCommand)
	}
	for _, cmd := range d.Cmds {
		if cmd.CanRun(seq) {
			seq.Pop()
			return cmd.Run(d, seq, store)
		}
	}

	return d.fail(fmt.Errorf("%w %s", ErrUnknownCommand, head))
}

// ProcessString splits line into tokens using shell word-splitting rules and
// dispatches them.
func (d *Definition) ProcessString(line string) Result {
	args, err := parse.Split(line)
	if err != nil {
		return d.fail(err)
	}

	return d.Process(args)
}

// Run dispatches args and, when the outcome halts, flushes the output writer
// and forwards the status to the exit function. Flushing before exiting
// keeps help or error text from being lost when the process terminates.
func (d *Definition) Run(args []string) {
	res := d.Process(args)
	if !res.Halts() {
		return
	}
	if f, ok := d.output.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	d.exit(res.Status())
}

// Find returns the declared command with the given name, or nil.
func (d *Definition) Find(name string) Command {
	for _, cmd := range d.Cmds {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

// fail reports a fatal grammar error: a single "Error: <message>" line on
// the output writer, then a halting Result with the failure status.
func (d *Definition) fail(err error) Result {
	fmt.Fprintf(d.output, "Error: %s\n", err)

	return Halt(ExitFailure)
}

// render lays out a documentation tree on the output writer.
func (d *Definition) render(b doc.Block) {
	d.renderer.Render(d.output, b)
}
