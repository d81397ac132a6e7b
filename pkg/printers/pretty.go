package printers

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/weddingbook/pkg/parser"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/runner"
	"tableflip.dev/weddingbook/pkg/wedding"
)

const feedbackWidth = 80

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
	// DateLayout is used for wedding dates. Empty prints dates as entered.
	DateLayout string
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int, noun string) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d %s", count, noun)
	if count != 1 {
		_, _ = c.Fprint(pp.out(), "s")
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Result prints the feedback of a command. A pending confirmation is
// highlighted.
func (pp *PrettyPrint) Result(res runner.Result) {
	if res.Feedback == "" {
		return
	}
	text := wordwrap.String(res.Feedback, feedbackWidth)
	if res.NeedsConfirmation {
		_, _ = color.New(color.FgHiYellow, color.Bold).Fprintln(pp.out(), text)
		return
	}
	_, _ = fmt.Fprintln(pp.out(), text)
}

func (pp *PrettyPrint) Error(err error) {
	_, _ = color.New(color.FgRed).Fprintln(pp.out(), wordwrap.String(err.Error(), feedbackWidth))
}

// Persons prints the person view, numbered from 1 as commands address them.
func (pp *PrettyPrint) Persons(persons []*person.Person) {
	pp.TitleWithCount("Persons", len(persons), "person")
	if len(persons) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	tags := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.Wrap = true
	tbl.AddRow("", bold.Sprint("Name"), bold.Sprint("Phone"), bold.Sprint("Email"), bold.Sprint("Role"), bold.Sprint("Address"), bold.Sprint("Weddings"))
	for i, p := range persons {
		ids := make([]string, 0, len(p.Tags()))
		for _, t := range p.Tags() {
			ids = append(ids, t.String())
		}
		tbl.AddRow(strconv.Itoa(i+1)+".", p.Name(), p.Phone(), p.Email(), p.Role(), p.Address(), tags.Sprint(strings.Join(ids, " ")))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Weddings prints the wedding view in its current order.
func (pp *PrettyPrint) Weddings(weddings []*wedding.Wedding) {
	pp.TitleWithCount("Weddings", len(weddings), "wedding")
	if len(weddings) == 0 {
		pp.none()
		return
	}

	bold := color.New(color.Bold)
	id := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.Wrap = true
	tbl.AddRow("", bold.Sprint("Name"), bold.Sprint("Date"), bold.Sprint("Location"), bold.Sprint("Tasks"))
	for _, w := range weddings {
		tbl.AddRow(id.Sprint(w.ID()), w.Name(), pp.date(w.Date()), w.Location(), taskSummary(w))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// Tasks prints the numbered task list of one wedding.
func (pp *PrettyPrint) Tasks(w *wedding.Wedding) {
	pp.Title(fmt.Sprintf("%s %s", w.ID(), w.Name()))
	tasks := w.Tasks()
	if len(tasks) == 0 {
		pp.none()
		return
	}
	done := color.New(color.Faint, color.CrossedOut)
	for i, t := range tasks {
		line := fmt.Sprintf("%d. %s", i+1, t)
		if t.Done {
			_, _ = done.Fprintln(pp.out(), line)
			continue
		}
		_, _ = fmt.Fprintln(pp.out(), line)
	}
	pp.NewLine()
}

// Help prints the command reference.
func (pp *PrettyPrint) Help(usages []parser.Usage) {
	bold := color.New(color.Bold)

	pp.Title("Commands")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, u := range usages {
		tbl.AddRow(bold.Sprint(u.Keyword), u.Format, u.Description)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func (pp *PrettyPrint) date(d wedding.Date) string {
	if pp.DateLayout == "" {
		return d.String()
	}
	return d.Format(pp.DateLayout)
}

func taskSummary(w *wedding.Wedding) string {
	if w.TaskCount() == 0 {
		return "-"
	}
	done := 0
	for _, t := range w.Tasks() {
		if t.Done {
			done++
		}
	}
	return fmt.Sprintf("%d/%d done", done, w.TaskCount())
}
