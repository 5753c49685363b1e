// Package memstore is an in-memory todo store for tests and embedding.
package memstore

import (
	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store"
)

// Store holds the list in memory. LoadErr and SaveErr, when set, are returned
// instead of touching the list.
type Store struct {
	todos   []model.Todo
	Saves   int
	LoadErr error
	SaveErr error
}

var _ store.Store = (*Store)(nil)

// New returns a store seeded with a copy of initial.
func New(initial ...model.Todo) *Store {
	return &Store{todos: clone(initial)}
}

func (s *Store) Load() ([]model.Todo, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	return clone(s.todos), nil
}

func (s *Store) Save(todos []model.Todo) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.todos = clone(todos)
	s.Saves++
	return nil
}

// Todos returns a copy of the current list without going through Load.
func (s *Store) Todos() []model.Todo { return clone(s.todos) }

func clone(todos []model.Todo) []model.Todo {
	out := make([]model.Todo, len(todos))
	copy(out, todos)
	return out
}
