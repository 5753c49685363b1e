package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes user-facing messages. Failures go to the same writer as
// results; the CLI reports everything on standard output.
type Printer struct {
	out   io.Writer
	theme Theme
}

// NewPrinter returns a Printer whose colors follow what out supports.
func NewPrinter(out io.Writer, theme string) *Printer {
	return &Printer{out: out, theme: ThemeFor(theme, lipgloss.NewRenderer(out))}
}

func (p *Printer) Theme() Theme      { return p.theme }
func (p *Printer) Writer() io.Writer { return p.out }

func (p *Printer) OK(msg string) {
	fmt.Fprintln(p.out, p.theme.Success.Render(p.theme.SymOK+" "+msg))
}

func (p *Printer) Fail(msg string) {
	fmt.Fprintln(p.out, p.theme.Error.Render(p.theme.SymFail+" "+msg))
}

// Println writes s unstyled.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}

func (p *Printer) Panel(lines []string) {
	fmt.Fprintln(p.out, p.theme.Panel(lines))
}
