package printers

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/weddingbook/pkg/parser"
	"tableflip.dev/weddingbook/pkg/person"
	"tableflip.dev/weddingbook/pkg/runner"
	"tableflip.dev/weddingbook/pkg/wedding"
)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	buf := &bytes.Buffer{}
	return &PrettyPrint{Out: buf}, buf
}

func TestResult_WrapsFeedback(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Result(runner.Result{Feedback: strings.Repeat("word ", 40)})

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len(strings.TrimSpace(line)), feedbackWidth)
	}
}

func TestResult_EmptyFeedbackPrintsNothing(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Result(runner.Result{RefreshView: true})
	assert.Empty(t, buf.String())
}

func TestError(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Error(errors.New("boom"))
	assert.Equal(t, "boom\n", buf.String())
}

func TestPersons(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Persons([]*person.Person{
		person.New("Alice", "91234567", "a@x.com", "Guest", "123 St", person.Tag{Wedding: 2}),
	})

	out := buf.String()
	assert.Contains(t, out, "Persons - 1 person\n")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "W2")
}

func TestPersons_Empty(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Persons(nil)
	assert.Contains(t, buf.String(), "Persons - 0 persons")
	assert.Contains(t, buf.String(), "none")
}

func TestWeddingsAndTasks(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.DateLayout = "2006-01-02"
	w, err := wedding.New(3, "Tan Lee", wedding.MustDate("20-Feb-2026"), "Hall")
	require.NoError(t, err)
	task, err := wedding.NewTask("Book DJ")
	require.NoError(t, err)
	task.Mark()
	w.AddTask(task)

	pp.Weddings([]*wedding.Wedding{w})
	out := buf.String()
	assert.Contains(t, out, "W3")
	assert.Contains(t, out, "2026-02-20")
	assert.Contains(t, out, "1/1 done")

	buf.Reset()
	pp.Tasks(w)
	assert.Contains(t, buf.String(), "1. [X] Book DJ")
}

func TestHelp(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Help(parser.Usages())
	assert.Contains(t, buf.String(), "listWeddingByDate")
	assert.Contains(t, buf.String(), "Confirms the command awaiting confirmation.")
}

func TestCalendar(t *testing.T) {
	pp, buf := newPrinter(t)
	in, err := wedding.New(1, "Tan Lee", wedding.MustDate("20-Feb-2026"), "Hall")
	require.NoError(t, err)
	out, err := wedding.New(2, "Ng Ong", wedding.MustDate("20-Mar-2026"), "Garden")
	require.NoError(t, err)

	pp.Calendar(time.Date(2026, time.February, 11, 0, 0, 0, 0, time.UTC), in, out)

	s := buf.String()
	assert.Contains(t, s, "February 2026")
	assert.Contains(t, s, "28 ")
	assert.NotContains(t, s, "29 ")
	assert.Contains(t, s, "Tan Lee, Hall")
	assert.NotContains(t, s, "Ng Ong")
}

func TestDaysIn(t *testing.T) {
	assert.Equal(t, 29, DaysIn(time.Date(2028, time.February, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 31, DaysIn(time.Date(2026, time.December, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Sunday, StartDay(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)))
}
