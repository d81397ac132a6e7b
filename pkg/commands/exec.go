package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weddingbook/pkg/commands/options"
	"tableflip.dev/weddingbook/pkg/parser"
	"tableflip.dev/weddingbook/pkg/runner"
)

func addExec(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "exec COMMAND...",
		Short: "Run a single address book command.",
		Example: `
weddingbook exec addWedding n/Tan Lee d/20-Feb-2026 l/Raffles Hotel
weddingbook exec --yes clear
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a command")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			ctx := context.Background()
			b, err := openBook(ctx)
			if err != nil {
				return output.HandleError(err)
			}
			output.Out = cmd.OutOrStdout()
			var ask options.Asker
			if co.Yes || !output.JSON {
				ask = co.Asker(os.Stdin, os.Stdout)
			}
			err = execLine(ctx, b, cmd, strings.Join(args, " "), ask)
			return output.HandleError(err)
		},
	}

	options.AddConfirmArgs(cmd, co)
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

// execLine runs line, passing any confirmation request to ask. The pending
// slot does not outlive the process.
func execLine(ctx context.Context, b *book, cmd *cobra.Command, line string, ask options.Asker) error {
	e := b.engine()
	res, err := e.ExecuteLine(line)
	if err != nil {
		return err
	}
	if res.NeedsConfirmation && ask != nil && ask(res.Feedback) {
		res, err = e.ExecuteLine(runner.KeywordConfirm)
		if err != nil {
			return err
		}
	}

	if res.RefreshView {
		if err := b.save(ctx); err != nil {
			return err
		}
	}

	if output.JSON {
		return output.WriteResult(res)
	}
	pp := b.printer(cmd.OutOrStdout())
	pp.Result(res)
	if res.ShowHelp {
		pp.Help(parser.Usages())
	}
	if res.NeedsConfirmation {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing was changed. Run again with --yes to confirm.")
	}
	return nil
}
