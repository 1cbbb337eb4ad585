package commands

import (
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contactbook/internal/cli/output"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		Long: `List all contacts with their phones and birthdays.

Output adapts to environment:
  - Terminal: Styled, colored output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --format (or the global --output) to override: auto, text, markdown, json, table`,
		Example: `  # List contacts (auto-detect output format)
  contactbook list

  # List contacts as JSON
  contactbook list --format json

  # List contacts as a boxed table
  contactbook list --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			return cmdCtx.Renderer.Contacts(output.ContactsFromBook(cmdCtx.Dispatcher.Book()))
		},
	}

	addFormatFlag(cmd)
	return cmd
}

// addFormatFlag adds a local --format flag. The config loader maps it onto
// the output setting.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Output format (auto|text|markdown|json|table)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return output.Modes(), cobra.ShellCompDirectiveNoFileComp
	})
}
