package config

import (
	"errors"
	"fmt"
)

// ErrArgument marks malformed command-line input or an unusable config
// file. It is always fatal.
var ErrArgument = errors.New("invalid arguments")

// ArgumentError describes one rejected argument.
type ArgumentError struct {
	Arg string
	Msg string
	Err error
}

func (e *ArgumentError) Error() string {
	if e == nil {
		return ""
	}
	msg := e.Msg
	if e.Arg != "" {
		msg = fmt.Sprintf("%s (%s)", e.Msg, e.Arg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArgumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrArgument}
	}
	return []error{ErrArgument, e.Err}
}

func argumentf(arg, format string, args ...any) error {
	return &ArgumentError{Arg: arg, Msg: fmt.Sprintf(format, args...)}
}
