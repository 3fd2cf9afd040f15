package exit

import (
	"errors"
	"fmt"
)

// Process exit codes. Warnings never change the status.
const (
	Usage    = 1
	Upstream = 2
)

type Error struct {
	Code int
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(code int, err error) error {
	return &Error{Code: code, Err: err}
}

// Code returns the exit code carried by err: 0 for nil, Usage when err
// carries none.
func Code(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *Error
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return Usage
}
