package model

import "fmt"

// Todo is the domain model for a todo entry.
type Todo struct {
	Title     string `json:"title" yaml:"title"`
	Completed bool   `json:"completed" yaml:"completed"`
}

// New returns an open todo with the given title.
func New(title string) Todo {
	return Todo{Title: title}
}

// Box is the checkbox shown in plain listings.
func (t Todo) Box() string {
	if t.Completed {
		return "[X]"
	}
	return "[]"
}

// Line renders the todo as it appears in `todo list`, with a 1-based position.
func (t Todo) Line(position int) string {
	return fmt.Sprintf("%d. %s %s", position, t.Box(), t.Title)
}
