package assistant

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseInput splits a line on whitespace into a lower-cased command token
// and its arguments. A blank line yields an empty command.
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	cmd := cases.Lower(language.Und).String(strings.TrimSpace(fields[0]))
	return cmd, fields[1:]
}
