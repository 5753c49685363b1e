package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/todo/internal/todo"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TODO_FILE", "TODO_DELETE_POLICY", "TODO_THEME", "TODO_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "todos.json", cfg.File)
	assert.Equal(t, "strict", cfg.DeletePolicy)
	assert.Equal(t, "classic", cfg.Theme)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Empty(t, cfg.Source)
	require.NoError(t, cfg.Validate())
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	content := `
file = "work.json"
delete_policy = "confirm"
theme = "mono"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.toml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "work.json", cfg.File)
	assert.Equal(t, "confirm", cfg.DeletePolicy)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "warn", cfg.LogLevel, "unset keys keep defaults")
	assert.Equal(t, filepath.Join(dir, "todo.toml"), cfg.Source)
}

func TestLoad_HiddenConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".todo.toml"), []byte(`theme = "neon"`), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "neon", cfg.Theme)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.toml"), []byte(`file = "work.json"`), 0o644))
	t.Setenv("TODO_FILE", "home.json")
	t.Setenv("TODO_LOG_LEVEL", "debug")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "home.json", cfg.File)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_BadToml(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "todo.toml"), []byte(`file = `), 0o644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, "loading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"confirm policy", func(c *Config) { c.DeletePolicy = "confirm" }, true},
		{"bad policy", func(c *Config) { c.DeletePolicy = "never" }, false},
		{"bad theme", func(c *Config) { c.Theme = "solarized" }, false},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"empty file", func(c *Config) { c.File = " " }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParsedAccessors(t *testing.T) {
	cfg := Default()
	cfg.DeletePolicy = "confirm"
	cfg.LogLevel = "debug"

	p, err := cfg.Policy()
	require.NoError(t, err)
	assert.Equal(t, todo.DeleteConfirm, p)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, log.DebugLevel, lvl)
}
