package wedding

import (
	"fmt"
	"strings"
	"time"
)

// LayoutCanonical is the layout dates are echoed back in, e.g. 20-Feb-2026.
const LayoutCanonical = "02-Jan-2006"

var layouts = []string{
	LayoutCanonical,
	"2-Jan-2006",
	"2006-01-02",
	"02/01/2006",
}

// Date is the day a wedding takes place. It keeps the text the user typed so
// that storage round trips are exact, and re-parses it for ordering.
type Date struct {
	raw string
}

// ParseDate validates raw against the accepted layouts.
func ParseDate(raw string) (Date, error) {
	s := strings.TrimSpace(raw)
	if _, ok := parse(s); !ok {
		return Date{}, fmt.Errorf("%w: date %q should look like %s", ErrInvalidField, raw, LayoutCanonical)
	}
	return Date{raw: s}, nil
}

// MustDate parses the input and panics on error. Intended for tests.
func MustDate(raw string) Date {
	d, err := ParseDate(raw)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the calendar day at midnight UTC. The zero time is returned for
// the zero Date.
func (d Date) Time() time.Time {
	t, _ := parse(d.raw)
	return t
}

// SameDay reports whether both dates fall on the same calendar day, however
// they were written.
func (d Date) SameDay(other Date) bool {
	return d.Time().Equal(other.Time())
}

// Format renders the date with the given layout.
func (d Date) Format(layout string) string {
	t, ok := parse(d.raw)
	if !ok {
		return d.raw
	}
	return t.Format(layout)
}

func (d Date) String() string {
	return d.raw
}

func parse(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
