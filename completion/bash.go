package completion

import (
	"fmt"
	"strings"
)

// BashGenerator emits a bash completion function registered with complete.
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`#!/bin/bash

function __%[1]s_completion() {
    local cur prev cmd
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd=""

    # First non-flag word is the command
    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" != -* ]]; then
            cmd="${COMP_WORDS[i]}"
            break
        fi
    done
`, programName))

	// Flag completion: global flags plus the active command's own.
	script.WriteString(`
    if [[ "$cur" == -* ]]; then
        local flags="` + strings.Join(data.Flags, " ") + `"
        case "$cmd" in`)

	for _, cmd := range data.Commands {
		flags := data.CommandFlags[cmd]
		if len(flags) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        %s)
            flags="$flags %s"
            ;;`, cmd, strings.Join(flags, " ")))
	}

	script.WriteString(`
        esac
        COMPREPLY=( $(compgen -W "$flags" -- "$cur") )
        return
    fi
`)

	// Command name completion when none has been typed yet.
	script.WriteString(fmt.Sprintf(`
    if [[ -z "$cmd" ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
    fi
}

complete -F __%s_completion %s
`, strings.Join(data.Commands, " "), programName, programName))

	return script.String()
}
