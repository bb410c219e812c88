package optree

import (
	"fmt"

	"github.com/halvard/optree/types/doc"
	"github.com/halvard/optree/types/tokens"
)

// Usage builds the top-level help document: description, USAGE line, the
// OPTION and COMMAND sections when present, and a terminating blank line.
func (d *Definition) Usage() doc.Block {
	usage := d.Name
	if len(d.Options) > 0 {
		usage += " {OPTION}"
	}
	if len(d.Cmds) > 0 {
		usage += " [COMMAND]"
	}

	blocks := []doc.Block{
		doc.Text(d.Help),
		doc.Blank(),
		doc.Text("USAGE: " + usage),
	}
	if len(d.Options) > 0 {
		blocks = append(blocks, doc.Blank(), doc.Text("OPTION:"))
		for _, opt := range d.Options {
			blocks = append(blocks, opt.Describe().Indent(2))
		}
	}
	if len(d.Cmds) > 0 {
		blocks = append(blocks, doc.Blank(), doc.Text("COMMAND:"))
		for _, cmd := range d.Cmds {
			blocks = append(blocks, cmd.Describe().Indent(2))
		}
	}
	blocks = append(blocks, doc.Blank())

	return doc.Vertical(blocks...)
}

// PrintUsage renders the top-level help document on the output writer.
func (d *Definition) PrintUsage() {
	d.render(d.Usage())
}

// HelpFlag declares the conventional help option: on -h or --help it prints
// the top-level help document and halts the dispatch with a success status.
func HelpFlag() *Action {
	return NewAction(
		func(d *Definition, seq *tokens.Sequence, store *Store) Result {
			d.PrintUsage()
			return Halt(ExitSuccess)
		},
		WithTags("-h", "--help"),
		WithHelp("Display help"),
	)
}

// HelpCommand declares the conventional help command. Bare "help" prints the
// top-level document; "help <name>" prints the named command's usage block
// and returns to the caller. An unknown name is fatal.
func HelpCommand() *ValueCommand {
	return NewCommand(
		WithName("help"),
		WithCommandHelp("Display help for a command"),
		WithShowValue(ShowValue{
			Name:     "CmdName",
			Optional: true,
			Help:     "Name of the command to describe",
		}),
		WithAction(func(d *Definition, store *Store, value *string) Result {
			if value == nil {
				d.PrintUsage()
				return Continue()
			}
			cmd := d.Find(*value)
			if cmd == nil {
				return d.fail(fmt.Errorf("%w %s", ErrUnknownHelpTarget, *value))
			}
			d.render(cmd.Usage(d))

			return Continue()
		}),
	)
}
