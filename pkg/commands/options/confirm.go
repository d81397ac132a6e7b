package options

import (
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ConfirmOptions
type ConfirmOptions struct {
	Yes bool
}

func AddConfirmArgs(cmd *cobra.Command, o *ConfirmOptions) {
	cmd.Flags().BoolVarP(&o.Yes, "yes", "y", false,
		"Answer yes if the command asks for confirmation.")
}

// Asker answers a confirmation question. A nil Asker declines everything.
type Asker func(question string) bool

// Asker returns yes for everything with --yes, a terminal prompt when in is a
// terminal, and nil otherwise.
func (o *ConfirmOptions) Asker(in, out *os.File) Asker {
	if o.Yes {
		return func(string) bool { return true }
	}
	if in == nil || !isatty.IsTerminal(in.Fd()) {
		return nil
	}
	return func(question string) bool {
		prompt := promptui.Prompt{
			Label:     strings.TrimSuffix(strings.TrimSpace(question), "(y to confirm)"),
			IsConfirm: true,
			Stdin:     in,
			Stdout:    out,
		}
		_, err := prompt.Run()
		return err == nil
	}
}
