package commands

import (
	"context"
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tableflip.dev/weddingbook/pkg/commands/options"
	"tableflip.dev/weddingbook/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the whole address book.",
		Example: `
weddingbook export
weddingbook export -o json > book.json
`,
		Args: cobra.NoArgs,
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return fo.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			b, err := openBook(context.Background())
			if err != nil {
				return err
			}
			return writeExport(cmd.OutOrStdout(), store.NewExport(b.service.Snapshot()), fo.Format)
		},
	}

	options.AddFormatArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func writeExport(w io.Writer, e store.Export, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(e)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(e); err != nil {
		return err
	}
	return enc.Close()
}
