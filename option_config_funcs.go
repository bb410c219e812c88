package optree

// WithTags sets the accepted spellings of an option. The first tag supplies
// the canonical store key.
func WithTags(tags ...string) ConfigureOptionFunc {
	return func(o *option) {
		o.tags = tags
	}
}

// WithHelp sets the description shown in the OPTION section of help text.
func WithHelp(help string) ConfigureOptionFunc {
	return func(o *option) {
		o.help = help
	}
}
