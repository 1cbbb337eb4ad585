package assistant

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader yields one line of input per call and io.EOF when input ends.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Run prints the welcome message and dispatches lines until close/exit.
// End of input is treated as exit so the book is still saved.
func (d *Dispatcher) Run(ctx context.Context, in LineReader, out io.Writer) error {
	_, _ = fmt.Fprintln(out, Welcome)
	d.logger.Info("session started", "contacts", d.book.Len())

	for {
		line, err := in.Readline()
		if errors.Is(err, io.EOF) {
			line = "exit"
		} else if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		reply, err := d.Execute(ctx, line)
		_, _ = fmt.Fprintln(out, reply.Text)
		if err != nil {
			return err
		}
		if reply.Exit {
			d.logger.Info("session finished")
			return nil
		}
	}
}

// ScannerReader reads lines from a plain io.Reader, writing prompt before
// each read. It is used when input is not a terminal.
type ScannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewScannerReader returns a LineReader over r.
func NewScannerReader(r io.Reader, out io.Writer, prompt string) *ScannerReader {
	return &ScannerReader{scanner: bufio.NewScanner(r), out: out, prompt: prompt}
}

// Readline returns the next line without its terminator.
func (s *ScannerReader) Readline() (string, error) {
	if s.prompt != "" && s.out != nil {
		_, _ = fmt.Fprint(s.out, s.prompt)
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}
