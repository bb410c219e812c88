package optree

// WithName sets the exact token selecting the command.
func WithName(name string) ConfigureCommandFunc {
	return func(c *ValueCommand) {
		c.name = name
	}
}

// WithCommandHelp sets the description shown in the COMMAND section and at
// the top of the command's usage block.
func WithCommandHelp(help string) ConfigureCommandFunc {
	return func(c *ValueCommand) {
		c.help = help
	}
}

// WithOptions appends to the command's own option list. Options may be
// shared by reference across several commands.
func WithOptions(options ...Option) ConfigureCommandFunc {
	return func(c *ValueCommand) {
		c.options = append(c.options, options...)
	}
}

// WithShowValue describes the command's positional value slot.
func WithShowValue(show ShowValue) ConfigureCommandFunc {
	return func(c *ValueCommand) {
		c.show = show
	}
}

// WithAction sets the callback invoked once the command's grammar has been
// settled.
func WithAction(action CommandFunc) ConfigureCommandFunc {
	return func(c *ValueCommand) {
		c.action = action
	}
}
