package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Done, Help                          lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymOK, SymFail           string
	SymDone, SymPending      string

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor

	// Frame draws panels; built from Border and BorderColor.
	Frame lipgloss.Style
}

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// ThemeFor builds the named theme on r. Unknown names get the classic theme.
// A nil renderer uses lipgloss' default.
func ThemeFor(name string, r *lipgloss.Renderer) Theme {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	t := palette(name, r.NewStyle())
	t.Frame = r.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return t
}

func palette(name string, plain lipgloss.Style) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:         "neon",
			Title:        plain.Bold(true).Foreground(lipgloss.Color("13")),
			Muted:        plain.Faint(true),
			Accent:       plain.Foreground(lipgloss.Color("14")),
			Success:      plain.Foreground(lipgloss.Color("10")),
			Error:        plain.Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      plain.Foreground(lipgloss.Color("11")),
			Selected:     plain.Bold(true).Foreground(lipgloss.Color("13")),
			Done:         plain.Faint(true).Strikethrough(true),
			Help:         plain.Faint(true),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymOK: "✔", SymFail: "✖",
			SymDone: "✔", SymPending: "•",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("14"),
		}
	case "mono":
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain, Done: plain, Help: plain,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "ok:", SymFail: "error:",
			SymDone: "x", SymPending: "-",
			Border:      asciiBorder,
			BorderColor: lipgloss.NoColor{},
		}
	default:
		return Theme{
			Name:         "classic",
			Title:        plain.Bold(true),
			Muted:        plain.Faint(true),
			Accent:       plain.Foreground(lipgloss.Color("12")),
			Success:      plain.Foreground(lipgloss.Color("42")),
			Error:        plain.Foreground(lipgloss.Color("9")).Bold(true),
			Pending:      plain.Foreground(lipgloss.Color("214")),
			Selected:     plain.Bold(true).Reverse(true),
			Done:         plain.Faint(true).Strikethrough(true),
			Help:         plain.Faint(true),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymOK: "✔", SymFail: "✖",
			SymDone: "✔", SymPending: "•",
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
}

// Box returns the checkbox for a completion state.
func (t Theme) Box(completed bool) string {
	if completed {
		return t.BoxChecked
	}
	return t.BoxUnchecked
}
