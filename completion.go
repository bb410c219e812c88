package optree

import (
	"fmt"

	"github.com/halvard/optree/completion"
)

// CompletionData flattens the declared tree into the snapshot the completion
// generators work from.
func (d *Definition) CompletionData() completion.CompletionData {
	data := completion.NewCompletionData()

	for _, opt := range d.Options {
		for _, tag := range opt.Tags() {
			data.Flags = append(data.Flags, tag)
			data.Descriptions[tag] = opt.Help()
		}
	}
	for _, cmd := range d.Cmds {
		data.Commands = append(data.Commands, cmd.Name())
		data.CommandDescriptions[cmd.Name()] = cmd.Help()
		vc, ok := cmd.(*ValueCommand)
		if !ok {
			continue
		}
		for _, opt := range vc.Options() {
			for _, tag := range opt.Tags() {
				data.CommandFlags[cmd.Name()] = append(data.CommandFlags[cmd.Name()], tag)
				data.Descriptions[cmd.Name()+"@"+tag] = opt.Help()
			}
		}
	}

	return data
}

// GenerateCompletion returns the completion script for the named shell
// ("bash" or "zsh").
func (d *Definition) GenerateCompletion(shell string) (string, error) {
	gen := completion.GetGenerator(shell)
	if gen == nil {
		return "", fmt.Errorf("unsupported shell %q", shell)
	}

	return gen.Generate(d.Name, d.CompletionData()), nil
}
