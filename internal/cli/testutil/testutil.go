// Package testutil provides test utilities for CLI testing.
package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/leapstack-labs/contactbook/internal/cli/output"
)

// sampleBook is a YAML address book with two contacts.
const sampleBook = `version: 1
contacts:
  - name: Alice
    phones:
      - "1234567890"
      - "5555555555"
    birthday: "05.06.1990"
  - name: Bob
    phones:
      - "0987654321"
`

// SetupTestBook writes a sample YAML address book into a temporary
// directory and returns its path.
func SetupTestBook(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "addressbook.yaml")
	if err := os.WriteFile(path, []byte(sampleBook), 0600); err != nil {
		t.Fatalf("failed to create address book: %v", err)
	}
	return path
}

// TestRenderer wraps a Renderer for testing with a captured output buffer.
type TestRenderer struct {
	*output.Renderer
	Out *bytes.Buffer
}

// NewTestRenderer creates a new test renderer with the specified mode and TTY state.
// Output is captured in a buffer for inspection.
func NewTestRenderer(mode output.Mode, isTTY bool) *TestRenderer {
	out := &bytes.Buffer{}
	return &TestRenderer{
		Renderer: output.NewRendererWithTTY(out, isTTY, mode),
		Out:      out,
	}
}

// Output returns the stdout output as a string.
func (tr *TestRenderer) Output() string {
	return tr.Out.String()
}

// Reset clears the output buffer.
func (tr *TestRenderer) Reset() {
	tr.Out.Reset()
}

// ansiPattern matches ANSI escape codes.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// AssertNoANSI checks that a string contains no ANSI escape codes.
func AssertNoANSI(t *testing.T, s string) {
	t.Helper()
	if ansiPattern.MatchString(s) {
		t.Errorf("string contains ANSI escape codes: %q", s)
	}
}

// AssertValidMarkdown checks that headers have text and every table row
// has the same number of cells as the header.
func AssertValidMarkdown(t *testing.T, md string) {
	t.Helper()

	cells := -1
	for i, line := range strings.Split(md, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") && strings.TrimLeft(trimmed, "# ") == "" {
			t.Errorf("empty header at line %d: %q", i+1, line)
		}
		if !strings.HasPrefix(trimmed, "|") {
			cells = -1
			continue
		}
		n := strings.Count(trimmed, "|") - strings.Count(trimmed, `\|`)
		if cells == -1 {
			cells = n
		} else if n != cells {
			t.Errorf("table row at line %d has %d separators, want %d: %q", i+1, n, cells, line)
		}
	}
}
