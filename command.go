package optree

import (
	"fmt"

	"github.com/halvard/optree/types/doc"
	"github.com/halvard/optree/types/tokens"
)

// Command is a named grammar element selected by the dispatcher. After its
// name token has been consumed by the caller, Run scans the command's own
// options and settles its positional grammar. Implementations are free to
// sub-dispatch into nested commands; the shipped ValueCommand accepts at
// most one positional value.
type Command interface {
	// Name returns the exact token selecting this command. Commands are
	// never prefix-matched.
	Name() string
	// Help returns the command's description.
	Help() string
	// CanRun reports whether the head token selects this command.
	CanRun(seq *tokens.Sequence) bool
	// Run parses the command's options and positional value, then invokes
	// its action. The command-name token has already been consumed.
	Run(d *Definition, seq *tokens.Sequence, store *Store) Result
	// Describe produces the one-line fragment for the COMMAND section.
	Describe() doc.Block
	// Usage produces the command's full usage document.
	Usage(d *Definition) doc.Block
}

// ShowValue describes the single positional value a ValueCommand accepts.
type ShowValue struct {
	// Name is the placeholder shown in usage text, e.g. "FileName".
	Name string
	// Optional permits the value to be absent.
	Optional bool
	// Help describes the value in the command's usage block.
	Help string
}

// ValueCommand is a command taking its own option list and zero or one
// positional value. With the options consumed, the remaining token count
// decides the outcome: zero tokens invoke the action with a nil value when
// the positional is optional and fail otherwise, one token invokes the
// action with it, and anything more is fatal.
type ValueCommand struct {
	name    string
	help    string
	options []Option
	show    ShowValue
	action  CommandFunc
}

// NewCommand declares a ValueCommand.
func NewCommand(configs ...ConfigureCommandFunc) *ValueCommand {
	c := &ValueCommand{}
	for _, config := range configs {
		config(c)
	}

	return c
}

func (c *ValueCommand) Name() string {
	return c.name
}

func (c *ValueCommand) Help() string {
	return c.help
}

// Options returns the command's declared option list.
func (c *ValueCommand) Options() []Option {
	return c.options
}

// Show returns the command's positional value descriptor.
func (c *ValueCommand) Show() ShowValue {
	return c.show
}

func (c *ValueCommand) CanRun(seq *tokens.Sequence) bool {
	head, ok := seq.Head()

	return ok && head == c.name
}

func (c *ValueCommand) Run(d *Definition, seq *tokens.Sequence, store *Store) Result {
	if res := scanOptions(d, c.options, seq, store); res.Halts() {
		return res
	}

	switch seq.Len() {
	case 0:
		if !c.show.Optional {
			return d.fail(fmt.Errorf("%s %w", c.show.Name, ErrMissingValue))
		}
		return c.invoke(d, store, nil)
	case 1:
		value, _ := seq.Pop()
		return c.invoke(d, store, &value)
	default:
		return d.fail(fmt.Errorf("%w %v", ErrTooManyArgs, seq.Drain()))
	}
}

func (c *ValueCommand) invoke(d *Definition, store *Store, value *string) Result {
	if c.action == nil {
		return Continue()
	}

	return c.action(d, store, value)
}

func (c *ValueCommand) Describe() doc.Block {
	return doc.Horizontal(
		doc.Text(c.name),
		doc.Gap(2),
		doc.Text(c.help),
	)
}

func (c *ValueCommand) Usage(d *Definition) doc.Block {
	usage := d.Name + " " + c.name
	if len(c.options) > 0 {
		usage += " {OPTION}"
	}
	if c.show.Name != "" {
		placeholder := c.show.Name
		if c.show.Optional {
			placeholder = "[" + placeholder + "]"
		}
		usage += " " + placeholder
	}

	blocks := []doc.Block{
		doc.Text(c.help),
		doc.Blank(),
		doc.Text("USAGE: " + usage),
	}
	if c.show.Name != "" && c.show.Help != "" {
		blocks = append(blocks,
			doc.Blank(),
			doc.Horizontal(
				doc.Text(c.show.Name),
				doc.Gap(2),
				doc.Text(c.show.Help),
			).Indent(2),
		)
	}
	if len(c.options) > 0 {
		blocks = append(blocks, doc.Blank(), doc.Text("OPTION:"))
		for _, opt := range c.options {
			blocks = append(blocks, opt.Describe().Indent(2))
		}
	}
	blocks = append(blocks, doc.Blank())

	return doc.Vertical(blocks...)
}
