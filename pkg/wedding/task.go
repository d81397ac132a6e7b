package wedding

import (
	"fmt"
	"strings"
)

// Task is a to-do item owned by exactly one wedding. Unlike the wedding
// itself, a task is mutated in place.
type Task struct {
	Description string
	Done        bool
}

// NewTask validates the description and returns an open task.
func NewTask(description string) (*Task, error) {
	d := strings.TrimSpace(description)
	if d == "" {
		return nil, fmt.Errorf("%w: task description must not be blank", ErrInvalidField)
	}
	return &Task{Description: d}, nil
}

// Mark flags the task as done.
func (t *Task) Mark() {
	t.Done = true
}

// Unmark flags the task as not done.
func (t *Task) Unmark() {
	t.Done = false
}

// Equal compares description and done flag.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Description == other.Description && t.Done == other.Done
}

func (t *Task) String() string {
	if t.Done {
		return "[X] " + t.Description
	}
	return "[ ] " + t.Description
}
