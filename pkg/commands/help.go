package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weddingbook/pkg/parser"
	"tableflip.dev/weddingbook/pkg/printers"
)

func addHelpCommands(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "help-commands",
		Short: "List the commands understood by the shell and exec.",
		Example: `
weddingbook help-commands
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			pp := &printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Help(parser.Usages())
		},
	}

	topLevel.AddCommand(cmd)
}
