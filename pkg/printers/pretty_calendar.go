package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/weddingbook/pkg/wedding"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Calendar prints the month containing on, days with a wedding in bold,
// followed by the weddings of that month.
func (pp *PrettyPrint) Calendar(on time.Time, weddings ...*wedding.Wedding) {
	then := time.Date(on.Year(), on.Month(), 1, 0, 0, 0, 0, time.UTC)

	count := make([]int, DaysIn(then))
	var inMonth []*wedding.Wedding
	for _, w := range weddings {
		d := w.Date().Time()
		if d.Year() == then.Year() && d.Month() == then.Month() {
			count[d.Day()-1]++
			inMonth = append(inMonth, w)
		}
	}

	pp.PrintMonthCount(then, count)

	if len(inMonth) == 0 {
		pp.none()
		return
	}
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, w := range inMonth {
		_, _ = id.Fprint(pp.out(), w.ID())
		_, _ = fmt.Fprintf(pp.out(), " %2d %s, %s\n", w.Date().Time().Day(), w.Name(), w.Location())
	}
	pp.NewLine()
}

func (pp *PrettyPrint) PrintMonthCount(then time.Time, count []int) {
	out := pp.out()
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := fmt.Sprintf("%s %d", then.Month(), then.Year())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		if i < len(count) && count[i] > 0 {
			_, _ = l2.Fprintf(out, "%2d ", i+1)
		} else {
			_, _ = l1.Fprintf(out, "%2d ", i+1)
		}

		d++
		if d > time.Saturday {
			d = time.Sunday
			_, _ = fmt.Fprint(out, "\n")
		}
	}
	_, _ = fmt.Fprint(out, "\n\n")
}

func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
