package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/wedding"
)

func addTasks(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tasks WEDDING",
		Short: "Show the tasks of a wedding.",
		Example: `
weddingbook tasks W1
`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return weddingCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, err := wedding.ParseID(args[0])
			if err != nil {
				return err
			}
			b, err := openBook(context.Background())
			if err != nil {
				return err
			}
			w, ok := b.service.WeddingByID(id)
			if !ok {
				return fmt.Errorf("%w: %s", app.ErrWeddingNotFound, id)
			}
			b.printer(cmd.OutOrStdout()).Tasks(w)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
