package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator emits a zsh compdef script.
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#compdef %[1]s

__%[1]s_completion() {
    local curcontext="$curcontext" state line
    typeset -A opt_args

    _arguments -C \`, programName))

	for _, flag := range data.Flags {
		desc := escapeZsh(data.Descriptions[flag])
		script.WriteString(fmt.Sprintf(`
        '%s[%s]' \`, flag, desc))
	}

	script.WriteString(`
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _values 'commands' \`)

	for _, cmd := range data.Commands {
		desc := escapeZsh(data.CommandDescriptions[cmd])
		script.WriteString(fmt.Sprintf(`
                '%s[%s]' \`, cmd, desc))
	}

	script.WriteString(`
            ;;
        args)
            case $words[1] in`)

	for _, cmd := range data.Commands {
		flags := data.CommandFlags[cmd]
		if len(flags) == 0 {
			continue
		}
		specs := make([]string, len(flags))
		for i, flag := range flags {
			desc := escapeZsh(data.Descriptions[cmd+"@"+flag])
			specs[i] = fmt.Sprintf("'%s[%s]'", flag, desc)
		}
		script.WriteString(fmt.Sprintf(`
                %s)
                    _arguments %s
                    ;;`, cmd, strings.Join(specs, " ")))
	}

	script.WriteString(fmt.Sprintf(`
            esac
            ;;
    esac
}

__%s_completion "$@"
`, programName))

	return script.String()
}
