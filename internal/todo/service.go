// Package todo applies list operations on top of a store.Store. Every
// mutation loads the whole list, validates against it, and saves it back.
package todo

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store"
)

// Service runs todo operations against a store.
type Service struct {
	store   store.Store
	policy  DeletePolicy
	confirm Confirmer
	logger  *log.Logger
}

// Option configures a Service.
type Option func(*Service)

func WithDeletePolicy(p DeletePolicy) Option {
	return func(s *Service) { s.policy = p }
}

func WithConfirmer(c Confirmer) Option {
	return func(s *Service) { s.confirm = c }
}

func WithLogger(l *log.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService returns a Service with the strict delete policy unless told otherwise.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:  st,
		policy: DeleteStrict,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Policy reports the delete policy in effect.
func (s *Service) Policy() DeletePolicy { return s.policy }

// Confirming returns a copy of s that asks c before deleting open todos.
func (s *Service) Confirming(c Confirmer) *Service {
	cp := *s
	cp.confirm = c
	return &cp
}

// List returns the todos in display order.
func (s *Service) List() ([]model.Todo, error) {
	return s.store.Load()
}

// Create appends a new open todo unless an identical one exists.
func (s *Service) Create(title string) (model.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Todo{}, ErrEmptyTitle
	}
	todos, err := s.store.Load()
	if err != nil {
		return model.Todo{}, err
	}
	td := model.New(title)
	if contains(todos, td) {
		return model.Todo{}, ErrDuplicate
	}
	todos = append(todos, td)
	if err := s.store.Save(todos); err != nil {
		return model.Todo{}, err
	}
	s.logger.Debug("created todo", "title", title, "position", len(todos))
	return td, nil
}

// SetState marks the todo at index (0-based) completed or open.
func (s *Service) SetState(index int, completed bool) (model.Todo, error) {
	todos, err := s.store.Load()
	if err != nil {
		return model.Todo{}, err
	}
	if len(todos) == 0 {
		return model.Todo{}, ErrEmptyList
	}
	if err := checkIndex(todos, index); err != nil {
		return model.Todo{}, err
	}
	todos[index].Completed = completed
	if err := s.store.Save(todos); err != nil {
		return model.Todo{}, err
	}
	s.logger.Debug("set todo state", "position", index+1, "completed", completed)
	return todos[index], nil
}

// Rename changes the title of the todo at index (0-based). The new title must
// not make it identical to another todo.
func (s *Service) Rename(index int, title string) (model.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Todo{}, ErrEmptyTitle
	}
	todos, err := s.store.Load()
	if err != nil {
		return model.Todo{}, err
	}
	if len(todos) == 0 {
		return model.Todo{}, ErrEmptyList
	}
	if err := checkIndex(todos, index); err != nil {
		return model.Todo{}, err
	}
	renamed := model.Todo{Title: title, Completed: todos[index].Completed}
	for i, td := range todos {
		if i != index && td == renamed {
			return model.Todo{}, ErrDuplicate
		}
	}
	todos[index] = renamed
	if err := s.store.Save(todos); err != nil {
		return model.Todo{}, err
	}
	s.logger.Debug("renamed todo", "position", index+1, "title", title)
	return renamed, nil
}

// Delete removes the todo at index (0-based). Open todos are refused under
// DeleteStrict and need confirmation under DeleteConfirm.
func (s *Service) Delete(index int) (model.Todo, error) {
	todos, err := s.store.Load()
	if err != nil {
		return model.Todo{}, err
	}
	if err := checkIndex(todos, index); err != nil {
		return model.Todo{}, err
	}
	td := todos[index]
	if !td.Completed {
		if err := s.allowOpenDelete(td); err != nil {
			return model.Todo{}, err
		}
	}
	todos = append(todos[:index], todos[index+1:]...)
	if err := s.store.Save(todos); err != nil {
		return model.Todo{}, err
	}
	s.logger.Debug("deleted todo", "position", index+1, "title", td.Title)
	return td, nil
}

func (s *Service) allowOpenDelete(td model.Todo) error {
	if s.policy != DeleteConfirm || s.confirm == nil {
		return ErrNotCompleted
	}
	ok, err := s.confirm.Confirm(fmt.Sprintf("Todo %q is not completed yet. Delete it anyway?", td.Title))
	if err != nil {
		return fmt.Errorf("confirm delete: %w", err)
	}
	if !ok {
		return ErrDeclined
	}
	return nil
}

func checkIndex(todos []model.Todo, index int) error {
	if index < 0 || index >= len(todos) {
		return &IndexError{Index: index, Len: len(todos)}
	}
	return nil
}

func contains(todos []model.Todo, td model.Todo) bool {
	for _, t := range todos {
		if t == td {
			return true
		}
	}
	return false
}
