package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(weddingbook completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(weddingbook completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// weddingCompletions lists the saved wedding IDs starting with toComplete.
func weddingCompletions(toComplete string) []string {
	b, err := openBook(context.Background())
	if err != nil {
		return nil
	}
	var ids []string
	for _, w := range b.service.Weddings().Items() {
		if id := w.ID().String(); strings.HasPrefix(id, toComplete) {
			ids = append(ids, id)
		}
	}
	return ids
}
