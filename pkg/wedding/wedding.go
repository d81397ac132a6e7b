// Package wedding models wedding events and the tasks planned for them.
package wedding

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidField is returned when a wedding attribute fails validation.
	ErrInvalidField = errors.New("invalid wedding field")

	// ErrInvalidIndex is returned when a task index is outside a wedding's
	// task list.
	ErrInvalidIndex = errors.New("invalid task index")
)

// Wedding is an event that persons can be tagged with. The name, date and
// location are immutable; an edit produces a new Wedding with the same ID that
// replaces the old one. The task list is owned and mutated in place.
type Wedding struct {
	id       ID
	name     string
	date     Date
	location string
	tasks    []*Task
}

// New builds a wedding. Name and location must not be blank.
func New(id ID, name string, date Date, location string, tasks ...*Task) (*Wedding, error) {
	if id <= 0 || id > MaxID {
		return nil, fmt.Errorf("%w: wedding id must be between W1 and %s", ErrInvalidField, MaxID)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: wedding name must not be blank", ErrInvalidField)
	}
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: wedding location must not be blank", ErrInvalidField)
	}
	if date.raw == "" {
		return nil, fmt.Errorf("%w: wedding date is required", ErrInvalidField)
	}
	w := &Wedding{id: id, name: name, date: date, location: location}
	for _, t := range tasks {
		if t != nil {
			w.tasks = append(w.tasks, t)
		}
	}
	return w, nil
}

// ID returns the wedding's identifier.
func (w *Wedding) ID() ID { return w.id }

// Name returns the wedding's name.
func (w *Wedding) Name() string { return w.name }

// Date returns the day of the wedding.
func (w *Wedding) Date() Date { return w.date }

// Location returns where the wedding takes place.
func (w *Wedding) Location() string { return w.location }

// Tasks returns the wedding's tasks in order. The slice is a copy; the tasks
// are shared.
func (w *Wedding) Tasks() []*Task {
	out := make([]*Task, len(w.tasks))
	copy(out, w.tasks)
	return out
}

// TaskCount returns the number of tasks.
func (w *Wedding) TaskCount() int { return len(w.tasks) }

// Task returns the task at the zero-based index.
func (w *Wedding) Task(index int) (*Task, error) {
	if index < 0 || index >= len(w.tasks) {
		return nil, w.indexError(index)
	}
	return w.tasks[index], nil
}

// AddTask appends a task.
func (w *Wedding) AddTask(t *Task) {
	w.tasks = append(w.tasks, t)
}

// RemoveTask deletes and returns the task at the zero-based index.
func (w *Wedding) RemoveTask(index int) (*Task, error) {
	if index < 0 || index >= len(w.tasks) {
		return nil, w.indexError(index)
	}
	t := w.tasks[index]
	w.tasks = append(w.tasks[:index], w.tasks[index+1:]...)
	return t, nil
}

func (w *Wedding) indexError(index int) error {
	return fmt.Errorf("%w: wedding %s has %d task(s), there is no task %d", ErrInvalidIndex, w.id, len(w.tasks), index+1)
}

// WithDetails returns a copy of the wedding with new name, date and location.
// The ID and task list carry over.
func (w *Wedding) WithDetails(name string, date Date, location string) (*Wedding, error) {
	return New(w.id, name, date, location, w.tasks...)
}

// IsSame reports whether both weddings describe the same event: equal name,
// date and location. The ID is not considered.
func (w *Wedding) IsSame(other *Wedding) bool {
	if w == nil || other == nil {
		return w == other
	}
	return w.name == other.name && w.date.SameDay(other.date) && w.location == other.location
}

// Equal is full equality, including the ID and every task.
func (w *Wedding) Equal(other *Wedding) bool {
	if !w.IsSame(other) || w == nil {
		return w == other
	}
	if w.id != other.id || len(w.tasks) != len(other.tasks) {
		return false
	}
	for i := range w.tasks {
		if !w.tasks[i].Equal(other.tasks[i]) {
			return false
		}
	}
	return true
}

func (w *Wedding) String() string {
	return fmt.Sprintf("%s; Date: %s; Location: %s", w.name, w.date, w.location)
}
