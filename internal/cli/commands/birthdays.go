package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/contactbook/internal/cli/output"
)

// NewBirthdaysCommand creates the birthdays command.
func NewBirthdaysCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birthdays",
		Short: "Show upcoming birthdays",
		Long: `Show contacts whose birthday falls within the upcoming window
(upcoming_window, 168h by default), starting today.`,
		Example: `  # Birthdays in the coming week
  contactbook birthdays

  # Look two weeks ahead
  CONTACTBOOK_UPCOMING_WINDOW=336h contactbook birthdays`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmdCtx, cleanup, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			defer cleanup()

			book := cmdCtx.Dispatcher.Book()
			upcoming := book.UpcomingBirthdays(time.Now(), cmdCtx.Cfg.UpcomingWindow)
			return cmdCtx.Renderer.Birthdays(output.BirthdaysFromUpcoming(upcoming))
		},
	}

	addFormatFlag(cmd)
	return cmd
}
