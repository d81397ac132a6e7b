// Package timeutil parses the day windows used to look ahead at upcoming
// weddings.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DefaultWindow is used when no window is given.
const DefaultWindow = "4w"

const day = 24 * time.Hour

var (
	windowPattern = regexp.MustCompile(`^\s*(\d+)\s*([a-z]+)`)
	unitDays      = map[string]int{
		"d":     1,
		"day":   1,
		"days":  1,
		"w":     7,
		"wk":    7,
		"wks":   7,
		"week":  7,
		"weeks": 7,
	}
)

// Window is a whole number of days.
type Window struct {
	Days int
}

// ParseWindow parses strings such as "10d", "2w" or "1w3d". An empty string
// yields DefaultWindow.
func ParseWindow(input string) (Window, error) {
	remaining := strings.ToLower(strings.TrimSpace(input))
	if remaining == "" {
		remaining = DefaultWindow
	}

	total := 0
	for len(remaining) > 0 {
		matches := windowPattern.FindStringSubmatch(remaining)
		if len(matches) != 3 {
			return Window{}, fmt.Errorf("invalid window segment %q", strings.TrimSpace(remaining))
		}
		value, err := strconv.Atoi(matches[1])
		if err != nil {
			return Window{}, fmt.Errorf("invalid window value %q: %w", matches[1], err)
		}
		per, ok := unitDays[matches[2]]
		if !ok {
			return Window{}, fmt.Errorf("unsupported window unit %q (use d or w)", matches[2])
		}
		total += value * per
		remaining = remaining[len(matches[0]):]
	}

	if total <= 0 {
		return Window{}, fmt.Errorf("window must be at least one day")
	}
	return Window{Days: total}, nil
}

// String renders the window in weeks and days, e.g. "1w3d".
func (w Window) String() string {
	if w.Days <= 0 {
		return "0d"
	}
	var b strings.Builder
	if weeks := w.Days / 7; weeks > 0 {
		fmt.Fprintf(&b, "%dw", weeks)
	}
	if days := w.Days % 7; days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	return b.String()
}

// Contains reports whether t falls on a calendar day from the day of from up
// to and including the last day of the window.
func (w Window) Contains(from, t time.Time) bool {
	start := truncateDay(from)
	end := start.Add(time.Duration(w.Days) * day)
	d := truncateDay(t)
	return !d.Before(start) && !d.After(end)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
