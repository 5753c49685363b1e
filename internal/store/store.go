// Package store defines the persistence boundary for the todo list and the
// errors backends report through it.
package store

import (
	"fmt"

	"github.com/idilsaglam/todo/internal/model"
)

// Store loads and saves the whole todo list. Backends never write partially:
// Save replaces whatever was stored before.
type Store interface {
	Load() ([]model.Todo, error)
	Save(todos []model.Todo) error
}

// ParseError reports stored content that is not a valid todo list.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// IOError reports a failure to open, read or write the backing medium.
type IOError struct {
	Op   string // "open" | "read" | "write"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
