package completion

import (
	"strings"
)

func escapeBash(desc string) string {
	desc = strings.ReplaceAll(desc, `"`, `\"`)
	desc = strings.ReplaceAll(desc, `$`, `\$`)

	return desc
}

func escapeZsh(desc string) string {
	desc = strings.ReplaceAll(desc, `[`, `\[`)
	desc = strings.ReplaceAll(desc, `]`, `\]`)
	desc = strings.ReplaceAll(desc, `'`, `''`)

	return desc
}
