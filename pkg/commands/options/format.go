package options

import (
	"fmt"

	"github.com/spf13/cobra"
)

// FormatOptions
type FormatOptions struct {
	Format string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Format, "format", "o", "yaml",
		"Output format. One of 'yaml' or 'json'.")
}

func (o *FormatOptions) Validate() error {
	switch o.Format {
	case "yaml", "json":
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected yaml or json", o.Format)
	}
}
