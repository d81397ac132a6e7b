package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/commands/options"
)

func addCalendar(topLevel *cobra.Command) {
	mo := &options.MonthOptions{}

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show the weddings of a month on a calendar.",
		Example: `
weddingbook calendar
weddingbook calendar --month 2026-02
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			month, err := mo.GetMonth(time.Now())
			if err != nil {
				return err
			}
			b, err := openBook(context.Background())
			if err != nil {
				return err
			}
			b.service.SortWeddings(app.SortByDate)
			b.printer(cmd.OutOrStdout()).Calendar(month, b.service.Weddings().Items()...)
			return nil
		},
	}

	options.AddMonthArgs(cmd, mo)
	topLevel.AddCommand(cmd)
}
