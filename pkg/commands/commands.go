package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"tableflip.dev/weddingbook/pkg/commands/options"
	"tableflip.dev/weddingbook/pkg/store"
)

var (
	output  = &options.OutputOptions{}
	cfgFile string
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "weddingbook",
		Short: options.Wrap80("Keep track of the people and tasks behind the weddings you plan."),
		Long: options.Wrap80(`With no subcommand, weddingbook starts an interactive shell. Type "help"
in the shell for the list of commands.`),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runShell(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./.weddingbook.yaml or $HOME/.weddingbook.yaml)")
	cmd.PersistentFlags().String(store.KeyPath, "", "directory the address book is stored in (default ~/.weddingbook.db)")
	cmd.PersistentFlags().String(store.KeyLogLevel, "", "one of debug, info, warn or error (default warn)")
	_ = viper.BindPFlag(store.KeyPath, cmd.PersistentFlags().Lookup(store.KeyPath))
	_ = viper.BindPFlag(store.KeyLogLevel, cmd.PersistentFlags().Lookup(store.KeyLogLevel))

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addShell(topLevel)
	addExec(topLevel)
	addExport(topLevel)
	addTasks(topLevel)
	addCalendar(topLevel)
	addUpcoming(topLevel)
	addHelpCommands(topLevel)
	addMCP(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}
