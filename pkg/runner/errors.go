package runner

import (
	"errors"
	"fmt"

	"tableflip.dev/weddingbook/pkg/app"
	"tableflip.dev/weddingbook/pkg/collection"
)

// Error is a command failure worded for the user. Err keeps the full chain
// for logging and errors.Is.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func fail(err error, format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...), Err: err}
}

// plain words for the sentinels that reach a command through app.Service.
var plain = []struct {
	err error
	msg string
}{
	{app.ErrDuplicateTag, "the person is already tagged with this wedding"},
	{app.ErrNotTagged, "the person is not tagged with this wedding"},
	{app.ErrWeddingNotFound, "the wedding does not exist"},
	{collection.ErrDuplicateEntity, "this entry already exists in the address book"},
	{collection.ErrEntityNotFound, "the entry has changed since the command was given, please run it again"},
}

// userError rewords err for the user unless a command already did.
func userError(err error) error {
	var ue *Error
	if errors.As(err, &ue) {
		return err
	}
	for _, p := range plain {
		if errors.Is(err, p.err) {
			return &Error{Message: p.msg, Err: err}
		}
	}
	return err
}
