package runner

import (
	"fmt"
	"strings"

	"tableflip.dev/weddingbook/pkg/wedding"
)

// AddTask appends a task to a wedding.
type AddTask struct {
	unforceable
	Wedding     wedding.ID
	Description string
}

func (*AddTask) Keyword() string { return KeywordAddTask }

func (c *AddTask) Execute(env *Env) (Result, error) {
	w, err := lookupWedding(env, c.Wedding)
	if err != nil {
		return Result{}, err
	}
	t, err := wedding.NewTask(c.Description)
	if err != nil {
		return Result{}, err
	}
	w.AddTask(t)
	return Result{Feedback: fmt.Sprintf("New task added to %s: %s", w.ID(), t), RefreshView: true}, nil
}

// DeleteTask removes the task at Index from a wedding.
type DeleteTask struct {
	unforceable
	Wedding wedding.ID
	Index   int
}

func (*DeleteTask) Keyword() string { return KeywordDeleteTask }

func (c *DeleteTask) Execute(env *Env) (Result, error) {
	w, err := lookupWedding(env, c.Wedding)
	if err != nil {
		return Result{}, err
	}
	t, err := w.RemoveTask(c.Index)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Deleted task from %s: %s", w.ID(), t.Description), RefreshView: true}, nil
}

// MarkTask flags the task at Index as done.
type MarkTask struct {
	unforceable
	Wedding wedding.ID
	Index   int
}

func (*MarkTask) Keyword() string { return KeywordMarkTask }

func (c *MarkTask) Execute(env *Env) (Result, error) {
	t, err := lookupTask(env, c.Wedding, c.Index)
	if err != nil {
		return Result{}, err
	}
	t.Mark()
	return Result{Feedback: "Marked task as done: " + t.String(), RefreshView: true}, nil
}

// UnmarkTask flags the task at Index as not done.
type UnmarkTask struct {
	unforceable
	Wedding wedding.ID
	Index   int
}

func (*UnmarkTask) Keyword() string { return KeywordUnmarkTask }

func (c *UnmarkTask) Execute(env *Env) (Result, error) {
	t, err := lookupTask(env, c.Wedding, c.Index)
	if err != nil {
		return Result{}, err
	}
	t.Unmark()
	return Result{Feedback: "Marked task as not done: " + t.String(), RefreshView: true}, nil
}

// ListTask prints a wedding's tasks, numbered from 1.
type ListTask struct {
	unforceable
	Wedding wedding.ID
}

func (*ListTask) Keyword() string { return KeywordListTask }

func (c *ListTask) Execute(env *Env) (Result, error) {
	w, err := lookupWedding(env, c.Wedding)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: FormatTasks(w)}, nil
}

// FormatTasks renders a wedding's tasks as "1. [X] Book DJ" lines.
func FormatTasks(w *wedding.Wedding) string {
	tasks := w.Tasks()
	if len(tasks) == 0 {
		return fmt.Sprintf("There are no tasks for %s.", w.ID())
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Tasks for %s (%s):", w.ID(), w.Name())
	for i, t := range tasks {
		fmt.Fprintf(&b, "\n%d. %s", i+1, t)
	}
	return b.String()
}

func lookupTask(env *Env, id wedding.ID, index int) (*wedding.Task, error) {
	w, err := lookupWedding(env, id)
	if err != nil {
		return nil, err
	}
	return w.Task(index)
}
