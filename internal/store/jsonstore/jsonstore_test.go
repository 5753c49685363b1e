package jsonstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store"
)

func newTempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), DefaultFile))
}

func TestLoad_MissingFileCreatesEmptyList(t *testing.T) {
	s := newTempStore(t)

	todos, err := s.Load()
	require.NoError(t, err)
	assert.NotNil(t, todos)
	assert.Empty(t, todos)

	_, err = os.Stat(s.Path())
	assert.NoError(t, err, "load should create the data file")
}

func TestLoad_WhitespaceOnlyIsEmpty(t *testing.T) {
	s := newTempStore(t)
	require.NoError(t, os.WriteFile(s.Path(), []byte("\n  \n"), 0o644))

	todos, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := newTempStore(t)
	want := []model.Todo{
		{Title: "Buy milk"},
		{Title: "Walk dog", Completed: true},
		{Title: "Ünïcode ✓"},
	}

	require.NoError(t, s.Save(want))
	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	first, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	require.NoError(t, s.Save(got))
	second, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSave_PrettyPrinted(t *testing.T) {
	s := newTempStore(t)
	require.NoError(t, s.Save([]model.Todo{{Title: "a"}}))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[\n  {\n    \"title\": \"a\",\n    \"completed\": false\n  }\n]", string(b))
}

func TestSave_NilWritesEmptyArray(t *testing.T) {
	s := newTempStore(t)
	require.NoError(t, s.Save(nil))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestSave_OverwritesLongerContent(t *testing.T) {
	s := newTempStore(t)
	require.NoError(t, s.Save([]model.Todo{{Title: "one"}, {Title: "two"}, {Title: "three"}}))
	require.NoError(t, s.Save([]model.Todo{{Title: "one"}}))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{{Title: "one"}}, got)
}

func TestLoad_ParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed json", `[{"title": "a",`},
		{"not an array", `{"title": "a", "completed": false}`},
		{"missing completed", `[{"title": "a"}]`},
		{"wrong title type", `[{"title": 3, "completed": false}]`},
		{"wrong completed type", `[{"title": "a", "completed": "yes"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTempStore(t)
			require.NoError(t, os.WriteFile(s.Path(), []byte(tt.content), 0o644))

			_, err := s.Load()
			require.Error(t, err)
			var perr *store.ParseError
			require.True(t, errors.As(err, &perr), "want ParseError, got %T", err)
			assert.Equal(t, s.Path(), perr.Path)
		})
	}
}

func TestLoad_IgnoresUnknownFields(t *testing.T) {
	s := newTempStore(t)
	content := `[{"title": "a", "completed": true, "priority": 2}]`
	require.NoError(t, os.WriteFile(s.Path(), []byte(content), 0o644))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Todo{{Title: "a", Completed: true}}, got)
}

func TestLoad_OpenFailureIsIOError(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing-dir", DefaultFile))

	_, err := s.Load()
	var ioErr *store.IOError
	require.True(t, errors.As(err, &ioErr), "want IOError, got %T", err)
	assert.Equal(t, "open", ioErr.Op)
}

func TestSave_WriteFailureIsIOError(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing-dir", DefaultFile))

	err := s.Save([]model.Todo{{Title: "a"}})
	var ioErr *store.IOError
	require.True(t, errors.As(err, &ioErr), "want IOError, got %T", err)
	assert.Equal(t, "write", ioErr.Op)
}

func TestNew_DefaultPath(t *testing.T) {
	assert.Equal(t, DefaultFile, New("").Path())
}
