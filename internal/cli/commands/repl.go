package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/leapstack-labs/contactbook/internal/assistant"
)

// RunREPL runs the interactive assistant session until close/exit or end of
// input. A terminal gets line editing, history and tab completion; piped
// input is read line by line.
func RunREPL(cmd *cobra.Command) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	d := cmdCtx.Dispatcher
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()

	if !isTerminal(in) {
		cmdCtx.Logger.Debug("stdin is not a terminal, reading lines")
		return d.Run(cmd.Context(), assistant.NewScannerReader(in, out, cmdCtx.Cfg.Prompt), out)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cmdCtx.Cfg.Prompt,
		HistoryFile:     cmdCtx.Cfg.HistoryFile,
		AutoComplete:    newCommandCompleter(d),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		Stdout:          out,
		Stderr:          cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	return d.Run(cmd.Context(), interruptibleReader{rl}, out)
}

// interruptibleReader discards the current line on Ctrl-C instead of
// ending the session.
type interruptibleReader struct {
	rl *readline.Instance
}

func (r interruptibleReader) Readline() (string, error) {
	for {
		line, err := r.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		return line, err
	}
}

// newCommandCompleter completes command names and, for commands that take
// a contact name first, the names currently in the book.
func newCommandCompleter(d *assistant.Dispatcher) *readline.PrefixCompleter {
	names := func(string) []string { return d.Book().Names() }

	var items []readline.PrefixCompleterInterface
	for _, c := range d.Commands() {
		if strings.HasPrefix(c.Usage, "<name>") {
			items = append(items, readline.PcItem(c.Name, readline.PcItemDynamic(names)))
			continue
		}
		items = append(items, readline.PcItem(c.Name))
	}
	return readline.NewPrefixCompleter(items...)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
