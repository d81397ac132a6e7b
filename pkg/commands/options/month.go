package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var monthLayouts = []string{"2006-01", "2006-1", "Jan-2006", "January 2006"}

// MonthOptions
type MonthOptions struct {
	MonthString string
}

func AddMonthArgs(cmd *cobra.Command, o *MonthOptions) {
	cmd.Flags().StringVar(&o.MonthString, "month", "",
		`Specify a month, example: --month="2026-02" or --month="Feb-2026". Defaults to this month.`)
}

// GetMonth returns the first day of the chosen month.
func (o *MonthOptions) GetMonth(now time.Time) (time.Time, error) {
	if o.MonthString == "" {
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, o.MonthString); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unknown month %q, expected something like 2026-02", o.MonthString)
}
