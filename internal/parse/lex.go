//go:build !windows
// +build !windows

package parse

import "github.com/google/shlex"

// Split splits a command line into argument tokens using POSIX shell
// word-splitting rules.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
