package console

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCommand indicates the first token matched no registered command.
	ErrUnknownCommand = errors.New("console: command not found")

	// ErrDuplicateCommand indicates two commands were registered under one name.
	ErrDuplicateCommand = errors.New("console: duplicate command name")
)

// CommandError wraps an error with the command name that caused it.
type CommandError struct {
	Name    string
	Wrapped error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %q", e.Wrapped.Error(), e.Name)
}

func (e *CommandError) Unwrap() error {
	return e.Wrapped
}
