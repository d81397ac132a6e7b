package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/timeutil"
	"tableflip.dev/weddingbook/pkg/wedding"
)

func addUpcoming(topLevel *cobra.Command) {
	var within string

	cmd := &cobra.Command{
		Use:   "upcoming",
		Short: "Show the weddings coming up soon.",
		Example: `
weddingbook upcoming
weddingbook upcoming --within 10d
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			window, err := timeutil.ParseWindow(within)
			if err != nil {
				return err
			}
			b, err := openBook(context.Background())
			if err != nil {
				return err
			}
			b.service.SortWeddings(app.SortByDate)
			soon := upcoming(b.service.Weddings().Items(), time.Now(), window)

			pp := b.printer(cmd.OutOrStdout())
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Within %s:\n", window)
			pp.Weddings(soon)
			return nil
		},
	}

	cmd.Flags().StringVar(&within, "within", timeutil.DefaultWindow, "how far ahead to look, in days (d) and weeks (w)")
	topLevel.AddCommand(cmd)
}

func upcoming(weddings []*wedding.Wedding, now time.Time, window timeutil.Window) []*wedding.Wedding {
	var out []*wedding.Wedding
	for _, w := range weddings {
		if window.Contains(now, w.Date().Time()) {
			out = append(out, w)
		}
	}
	return out
}
