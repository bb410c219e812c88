// Package completion generates shell completion scripts from a snapshot of
// a declared CLI tree. Generators only produce script text; installing the
// script is the caller's concern.
package completion

// CompletionData is the flattened view of a CLI definition a Generator
// works from. Slices preserve declaration order.
type CompletionData struct {
	// Commands lists the top-level command names.
	Commands []string
	// CommandDescriptions maps command name to help text.
	CommandDescriptions map[string]string
	// Flags lists every spelling of the global options.
	Flags []string
	// Descriptions maps a flag spelling to its help text. Command-scoped
	// flags are keyed as "<command>@<flag>".
	Descriptions map[string]string
	// CommandFlags maps command name to that command's flag spellings.
	CommandFlags map[string][]string
}

// NewCompletionData creates an empty CompletionData with its maps ready for
// use.
func NewCompletionData() CompletionData {
	return CompletionData{
		CommandDescriptions: map[string]string{},
		Descriptions:        map[string]string{},
		CommandFlags:        map[string][]string{},
	}
}

// Generator produces a completion script for one shell.
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// GetGenerator returns the Generator for the named shell, or nil when the
// shell is not supported. Supported shells: "bash", "zsh".
func GetGenerator(shell string) Generator {
	switch shell {
	case "bash":
		return &BashGenerator{}
	case "zsh":
		return &ZshGenerator{}
	default:
		return nil
	}
}
