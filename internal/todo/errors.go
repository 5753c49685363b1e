package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicate is returned when an identical todo is already on the list.
	ErrDuplicate = errors.New("todo already exists on the todo list")
	// ErrEmptyList is returned when changing state on a list with no todos.
	ErrEmptyList = errors.New("the todo list is empty")
	// ErrOutOfRange matches every *IndexError.
	ErrOutOfRange = errors.New("todo index out of range")
	// ErrNotCompleted is returned when deleting an open todo under the strict policy.
	ErrNotCompleted = errors.New("todo is not yet completed")
	// ErrDeclined is returned when the user refuses to delete an open todo.
	ErrDeclined = errors.New("deletion not confirmed")
	// ErrEmptyTitle is returned for blank titles.
	ErrEmptyTitle = errors.New("todo title is empty")
)

// IndexError reports a position that does not exist on the list.
// Index is 0-based; the message shows the 1-based position users type.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("invalid todo at position %d (list has %d)", e.Index+1, e.Len)
}

func (e *IndexError) Is(target error) bool { return target == ErrOutOfRange }
