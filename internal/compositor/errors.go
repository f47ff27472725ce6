package compositor

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation marks a bundle whose inputs fail a precondition: a
	// missing source or mismatched albedo/parameter dimensions.
	ErrValidation = errors.New("bundle validation failed")
	// ErrIO marks a failure to create a directory or to read or write an
	// image.
	ErrIO = errors.New("image i/o failed")
)

// Error is a processing failure for one bundle. Paths names the files
// involved so the log line identifies them.
type Error struct {
	Kind  error
	Msg   string
	Paths []string
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if len(e.Paths) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Paths, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func validationf(paths []string, format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...), Paths: paths}
}

func ioError(msg string, err error, paths ...string) error {
	return &Error{Kind: ErrIO, Msg: msg, Paths: paths, Err: err}
}
