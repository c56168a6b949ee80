package errs

import (
	"errors"
	"fmt"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Newf(format string, args ...any) error {
	return cr.Newf(format, args...)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark attaches markErr so that errors.Is(err, markErr) holds while the
// original cause stays readable in %+v output. Cockroach marker
// metadata is only visible to its own Is, so the returned error also
// answers the standard library's Is protocol for markErr.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return &markedError{cause: cr.Mark(err, markErr), mark: markErr}
}

type markedError struct {
	cause error
	mark  error
}

func (e *markedError) Error() string { return e.cause.Error() }

func (e *markedError) Unwrap() error { return e.cause }

func (e *markedError) Is(target error) bool { return errors.Is(e.mark, target) }

func (e *markedError) Format(s fmt.State, verb rune) { cr.FormatError(e, s, verb) }

func WithDetail(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.WithDetail(err, fmt.Sprintf(format, args...))
}
