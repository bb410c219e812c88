package optree

import (
	"io"
)

// WithDefinitionName sets the program name shown in USAGE lines.
func WithDefinitionName(name string) ConfigureDefinitionFunc {
	return func(d *Definition) {
		d.Name = name
	}
}

// WithDefinitionHelp sets the program description.
func WithDefinitionHelp(help string) ConfigureDefinitionFunc {
	return func(d *Definition) {
		d.Help = help
	}
}

// WithGlobalOptions appends to the definition's global option list.
func WithGlobalOptions(options ...Option) ConfigureDefinitionFunc {
	return func(d *Definition) {
		d.Options = append(d.Options, options...)
	}
}

// WithCommands appends top-level commands. Declaration order is dispatch
// order - the first command whose name matches wins.
func WithCommands(cmds ...Command) ConfigureDefinitionFunc {
	return func(d *Definition) {
		d.Cmds = append(d.Cmds, cmds...)
	}
}

// WithOutput redirects help and error text. Useful for tests and for
// embedding; defaults to os.Stdout.
func WithOutput(w io.Writer) ConfigureDefinitionFunc {
	return func(d *Definition) {
		d.output = w
	}
}

// WithExit replaces the exit function Run forwards halting results to;
// defaults to os.Exit.
func WithExit(exit ExitFunc) ConfigureDefinitionFunc {
	return func(d *Definition) {
		d.exit = exit
	}
}

// WithRenderer replaces the help-text renderer.
func WithRenderer(r Renderer) ConfigureDefinitionFunc {
	return func(d *Definition) {
		d.renderer = r
	}
}
