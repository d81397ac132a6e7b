package options

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/weddingbook/pkg/runner"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	Out  io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) out() io.Writer {
	if o.Out == nil {
		return color.Output
	}
	return o.Out
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(o.out(), string(b))
		return nil
	}
	return err
}

type result struct {
	Feedback          string `json:"feedback"`
	ShowHelp          bool   `json:"showHelp,omitempty"`
	Exit              bool   `json:"exit,omitempty"`
	NeedsConfirmation bool   `json:"needsConfirmation,omitempty"`
	RefreshView       bool   `json:"refreshView,omitempty"`
}

// WriteResult prints res as a JSON object.
func (o *OutputOptions) WriteResult(res runner.Result) error {
	b, err := json.Marshal(result(res))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(o.out(), string(b))
	return err
}
