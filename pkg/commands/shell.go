package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/weddingbook/pkg/parser"
	"tableflip.dev/weddingbook/pkg/printers"
	"tableflip.dev/weddingbook/pkg/runner"
)

func addShell(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive shell.",
		Example: `
weddingbook shell
echo "addWedding n/Tan Lee d/20-Feb-2026 l/Raffles Hotel" | weddingbook shell
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			return runShell(cmd)
		},
	}

	topLevel.AddCommand(cmd)
}

func runShell(cmd *cobra.Command) error {
	ctx := context.Background()
	b, err := openBook(ctx)
	if err != nil {
		return err
	}
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return runShellUI(ctx, b)
	}
	s := &shell{
		book:   b,
		engine: b.engine(),
		pp:     b.printer(cmd.OutOrStdout()),
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
	}
	return s.run(ctx)
}

// shell reads one command per line from piped input until exit or end of
// input. A terminal gets shellModel instead.
type shell struct {
	book   *book
	engine *runner.Engine
	pp     *printers.PrettyPrint
	in     io.Reader
	out    io.Writer
}

func (s *shell) run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		exit, err := s.handle(ctx, line)
		if err != nil {
			return err
		}
		if exit {
			return nil
		}
	}
	return scanner.Err()
}

// handle executes one line. Command errors are printed and the shell goes
// on; only a failed save stops it.
func (s *shell) handle(ctx context.Context, line string) (bool, error) {
	res, err := s.engine.ExecuteLine(line)
	if err != nil {
		s.pp.Error(err)
		return false, nil
	}
	s.pp.Result(res)

	if res.RefreshView {
		if err := s.book.save(ctx); err != nil {
			return false, err
		}
	}
	if res.ShowHelp {
		s.pp.Help(parser.Usages())
	}
	if res.Exit {
		_, _ = fmt.Fprintln(s.out, "")
	}
	return res.Exit, nil
}
