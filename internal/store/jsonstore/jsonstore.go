package jsonstore

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store"
)

// JSON-backed storage. Single file, human-readable, portable.
// No locking; fine for a local single-user CLI.

// DefaultFile is the data file used when no path is configured.
const DefaultFile = "todos.json"

//go:embed todos.schema.json
var schemaJSON string

var todoSchema = jsonschema.MustCompileString("todos.schema.json", schemaJSON)

// Store keeps the todo list in one JSON file.
type Store struct {
	path   string
	logger *log.Logger
}

var _ store.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for load/save tracing.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New returns a Store backed by path. An empty path means DefaultFile in the
// working directory.
func New(path string, opts ...Option) *Store {
	if path == "" {
		path = DefaultFile
	}
	s := &Store{path: path, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path is the file the store reads and writes.
func (s *Store) Path() string { return s.path }

// Load reads the list, creating the file when it does not exist yet.
// Empty content is an empty list.
func (s *Store) Load() ([]model.Todo, error) {
	f, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, &store.IOError{Op: "open", Path: s.path, Err: err}
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, &store.IOError{Op: "read", Path: s.path, Err: err}
	}
	if len(bytes.TrimSpace(b)) == 0 {
		s.logger.Debug("empty todo file", "path", s.path)
		return []model.Todo{}, nil
	}

	todos, err := decode(b)
	if err != nil {
		return nil, &store.ParseError{Path: s.path, Err: err}
	}
	s.logger.Debug("loaded todos", "path", s.path, "count", len(todos))
	return todos, nil
}

// Save overwrites the file with the pretty-printed list.
func (s *Store) Save(todos []model.Todo) error {
	b, err := Encode(todos)
	if err != nil {
		return &store.IOError{Op: "write", Path: s.path, Err: err}
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return &store.IOError{Op: "write", Path: s.path, Err: err}
	}
	s.logger.Debug("saved todos", "path", s.path, "count", len(todos))
	return nil
}

// Encode renders todos the way they are stored on disk. A nil list encodes as [].
func Encode(todos []model.Todo) ([]byte, error) {
	if todos == nil {
		todos = []model.Todo{}
	}
	b, err := json.MarshalIndent(todos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

func decode(b []byte) ([]model.Todo, error) {
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if err := todoSchema.Validate(doc); err != nil {
		return nil, fmt.Errorf("schema: %w", err)
	}
	var todos []model.Todo
	if err := json.Unmarshal(b, &todos); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return todos, nil
}
