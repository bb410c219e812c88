//go:build windows
// +build windows

package parse

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Split splits a command line into argument tokens. Windows has no shlex
// equivalent, so quoting is handled by hand: double and single quotes group
// words, backslash escapes the next character outside single quotes.
func Split(s string) ([]string, error) {
	var tokens []string
	var builder strings.Builder

	inToken := false
	escaped := false
	var quote rune

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return nil, fmt.Errorf("invalid UTF-8 encoding at position %d", i)
		}
		i += size

		switch {
		case escaped:
			builder.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				builder.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if inToken {
				tokens = append(tokens, builder.String())
				builder.Reset()
				inToken = false
			}
		default:
			builder.WriteRune(r)
			inToken = true
		}
	}

	if escaped {
		return nil, fmt.Errorf("trailing escape character")
	}
	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote")
	}
	if inToken {
		tokens = append(tokens, builder.String())
	}

	return tokens, nil
}
