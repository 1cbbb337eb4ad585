package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// NewExecCommand creates the exec command.
func NewExecCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exec <command> [args...]",
		Short: "Run a single assistant command",
		Long: `Run one assistant command without entering the interactive session.

The arguments are joined into a single command line and handled exactly as
in the interactive session. The address book is saved when the command
changed it.`,
		Example: `  # Add a contact
  contactbook exec add Alice 1234567890

  # Set a birthday
  contactbook exec add-birthday Alice 05.06.1990

  # Show upcoming birthdays
  contactbook exec birthdays`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExec(cmd, args)
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func runExec(cmd *cobra.Command, args []string) error {
	cmdCtx, cleanup, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	line := strings.Join(args, " ")
	cmdCtx.Logger.Debug("executing command", "line", line)

	reply, err := cmdCtx.Dispatcher.Execute(cmd.Context(), line)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply.Text)
	if err != nil {
		return err
	}

	// close/exit already saved.
	if reply.Changed && !reply.Exit {
		return cmdCtx.Dispatcher.Save(cmd.Context())
	}
	return nil
}
