package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testData() CompletionData {
	data := NewCompletionData()
	data.Commands = []string{"copy", "help"}
	data.CommandDescriptions["copy"] = "Copy a file"
	data.CommandDescriptions["help"] = "Display help [for a command]"
	data.Flags = []string{"-h", "--help", "-v"}
	data.Descriptions["-v"] = "Verbose output"
	data.CommandFlags["copy"] = []string{"--force"}
	data.Descriptions["copy@--force"] = "Overwrite the target"

	return data
}

func TestGetGenerator(t *testing.T) {
	tests := []struct {
		shell string
		want  bool
	}{
		{"bash", true},
		{"zsh", true},
		{"fish", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			gen := GetGenerator(tt.shell)
			if tt.want {
				assert.NotNil(t, gen)
			} else {
				assert.Nil(t, gen)
			}
		})
	}
}

func TestBashGenerator(t *testing.T) {
	script := (&BashGenerator{}).Generate("filetool", testData())

	assert.True(t, strings.HasPrefix(script, "#!/bin/bash"))
	assert.Contains(t, script, "__filetool_completion")
	assert.Contains(t, script, "complete -F __filetool_completion filetool")
	assert.Contains(t, script, `"copy help"`)
	assert.Contains(t, script, "-h --help -v")
	assert.Contains(t, script, "--force")
}

func TestZshGenerator(t *testing.T) {
	script := (&ZshGenerator{}).Generate("filetool", testData())

	assert.True(t, strings.HasPrefix(script, "#compdef filetool"))
	assert.Contains(t, script, "'-v[Verbose output]'")
	assert.Contains(t, script, "'--force[Overwrite the target]'")
	assert.Contains(t, script, `'help[Display help \[for a command\]]'`)
}
