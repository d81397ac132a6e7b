// Package runner executes address book commands. A command is a unit of work
// run against the app.Service; commands whose default behavior is risky can
// produce a force variant that skips their one safety check, which the Confirm
// command runs once the user agrees.
package runner

import (
	"errors"

	"tableflip.dev/weddingbook/pkg/app"
)

// Keywords as typed by the user.
const (
	KeywordAdd               = "add"
	KeywordEdit              = "edit"
	KeywordDelete            = "delete"
	KeywordClear             = "clear"
	KeywordList              = "list"
	KeywordFind              = "find"
	KeywordFilter            = "filter"
	KeywordTag               = "tag"
	KeywordUntag             = "untag"
	KeywordAddWedding        = "addWedding"
	KeywordEditWedding       = "editWedding"
	KeywordDeleteWedding     = "deleteWedding"
	KeywordListWedding       = "listWedding"
	KeywordListWeddingByDate = "listWeddingByDate"
	KeywordSortWeddingByID   = "sortWID"
	KeywordSortWeddingByDate = "sortWDate"
	KeywordAddTask           = "addTask"
	KeywordDeleteTask        = "deleteTask"
	KeywordMarkTask          = "mark"
	KeywordUnmarkTask        = "unmark"
	KeywordListTask          = "listTask"
	KeywordConfirm           = "y"
	KeywordHelp              = "help"
	KeywordExit              = "exit"
)

var (
	// ErrNoChange is returned by an edit that leaves every field as it was.
	ErrNoChange = errors.New("no changes detected, the edited value is identical to the original")

	// ErrNoPendingCommand is returned by Confirm when nothing awaits
	// confirmation.
	ErrNoPendingCommand = errors.New("there is no command waiting for confirmation")

	// ErrNotForceable is returned by Confirm when the pending command has no
	// force variant.
	ErrNotForceable = errors.New("the pending command cannot be forced")
)

// Command is a unit of work against the address book.
type Command interface {
	// Keyword is the word that invokes the command.
	Keyword() string

	// Execute runs the command. A Result with NeedsConfirmation set means
	// nothing was changed and the command is waiting for the user.
	Execute(env *Env) (Result, error)

	// Force returns a copy of the command that skips its safety check, or
	// nil when the command has none.
	Force() Command
}

// Env is what a command executes against.
type Env struct {
	Service *app.Service
	Session *Session
}

// Result is the outcome of a command. The flags are independent;
// NeedsConfirmation is the only one that means the command is not complete.
type Result struct {
	Feedback          string
	ShowHelp          bool
	Exit              bool
	NeedsConfirmation bool
	RefreshView       bool
}

// unforceable is embedded by commands without a safety check.
type unforceable struct{}

func (unforceable) Force() Command { return nil }
