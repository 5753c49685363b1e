package todo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DeletePolicy decides what Delete does with a todo that is not completed.
type DeletePolicy string

const (
	// DeleteStrict refuses to delete open todos.
	DeleteStrict DeletePolicy = "strict"
	// DeleteConfirm asks the Confirmer before deleting open todos.
	DeleteConfirm DeletePolicy = "confirm"
)

// ParseDeletePolicy accepts "strict" or "confirm" in any case.
func ParseDeletePolicy(s string) (DeletePolicy, error) {
	switch p := DeletePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case DeleteStrict, DeleteConfirm:
		return p, nil
	}
	return "", fmt.Errorf("invalid delete policy %q: must be %q or %q", s, DeleteStrict, DeleteConfirm)
}

// Confirmer asks a yes/no question.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) (bool, error)

func (f ConfirmFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// PromptConfirmer reads one answer line per question. Only y/yes (any case)
// counts as consent.
type PromptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPromptConfirmer returns a Confirmer that prints to out and reads from in.
func NewPromptConfirmer(in io.Reader, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{in: bufio.NewReader(in), out: out}
}

func (c *PromptConfirmer) Confirm(prompt string) (bool, error) {
	fmt.Fprintf(c.out, "%s [y/N]: ", prompt)
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
