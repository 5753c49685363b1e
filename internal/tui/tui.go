// Package tui is the interactive todo list. Every action goes through
// todo.Service, so each change is validated and saved immediately.
package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/todo"
	"github.com/idilsaglam/todo/internal/ui"
)

// listItem adapts a todo to bubbles/list.Item. pos is its 0-based position
// in the stored list, which survives filtering.
type listItem struct {
	todo model.Todo
	pos  int
}

func (i listItem) Title() string       { return i.todo.Title }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.todo.Title }

type mode int

const (
	browsing mode = iota
	adding
	editing
	confirming
)

// Model is the Bubble Tea model of the interactive list.
type Model struct {
	svc   *todo.Service
	theme ui.Theme

	list  list.Model
	input textinput.Model
	mode  mode

	target int    // stored position being edited or confirmed
	status string // last result or error, shown under the list
	failed bool

	width, height int
}

// itemDelegate renders items on a single line.
type itemDelegate struct{ theme ui.Theme }

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.theme.Muted.Render(d.theme.BoxUnchecked)
	text := it.todo.Title
	if it.todo.Completed {
		box = d.theme.Success.Render(d.theme.BoxChecked)
		text = d.theme.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.theme.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s", prefix, box, text)
}

var (
	addBind    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	editBind   = key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit"))
	toggleBind = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	deleteBind = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete"))
)

// New builds the model from the service's current list. Open todos are never
// deleted without an in-app y/n answer, whatever confirmer svc carries.
func New(svc *todo.Service, theme ui.Theme) (Model, error) {
	todos, err := svc.List()
	if err != nil {
		return Model{}, err
	}

	l := list.New(items(todos), itemDelegate{theme: theme}, 80, 20)
	l.Title = "Todos"
	l.SetShowHelp(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Help
	l.Styles.PaginationStyle = theme.Help
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("todo", "todos")
	extra := func() []key.Binding { return []key.Binding{toggleBind, addBind, editBind, deleteBind} }
	l.AdditionalShortHelpKeys = extra
	l.AdditionalFullHelpKeys = extra

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	return Model{
		svc:   svc.Confirming(nil),
		theme: theme,
		list:  l,
		input: ti,
	}, nil
}

// Run starts the interactive list in the alternate screen.
func Run(svc *todo.Service, theme ui.Theme) error {
	m, err := New(svc, theme)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func items(todos []model.Todo) []list.Item {
	out := make([]list.Item, 0, len(todos))
	for i, td := range todos {
		out = append(out, listItem{todo: td, pos: i})
	}
	return out
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		m.list.SetSize(size.Width-4, size.Height-6)
		return m, nil
	}

	switch m.mode {
	case adding, editing:
		return m.updateInput(msg)
	case confirming:
		return m.updateConfirm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case " ":
		if it, ok := m.selected(); ok {
			_, err := m.svc.SetState(it.pos, !it.todo.Completed)
			return m.after(err, "updated"), nil
		}
		return m, nil
	case "d":
		if it, ok := m.selected(); ok {
			_, err := m.svc.Delete(it.pos)
			if errors.Is(err, todo.ErrNotCompleted) && m.svc.Policy() == todo.DeleteConfirm {
				m.mode = confirming
				m.target = it.pos
				m.setStatus(fmt.Sprintf("%q is not completed yet. Delete it anyway? (y/n)", it.todo.Title), false)
				return m, nil
			}
			return m.after(err, "deleted"), nil
		}
		return m, nil
	case "a":
		m.mode = adding
		m.input.SetValue("")
		m.input.Placeholder = "New todo title..."
		return m, m.input.Focus()
	case "e":
		if it, ok := m.selected(); ok {
			m.mode = editing
			m.target = it.pos
			m.input.SetValue(it.todo.Title)
			m.input.CursorEnd()
			m.input.Placeholder = "Edit todo title..."
			return m, m.input.Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			var err error
			verb := "added"
			if m.mode == adding {
				_, err = m.svc.Create(title)
			} else {
				_, err = m.svc.Rename(m.target, title)
				verb = "renamed"
			}
			if err != nil {
				m.setStatus(err.Error(), true)
				return m, nil
			}
			m.closeInput()
			return m.after(nil, verb), nil
		case "esc":
			m.closeInput()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	m.mode = browsing
	switch strings.ToLower(k.String()) {
	case "y":
		yes := todo.ConfirmFunc(func(string) (bool, error) { return true, nil })
		_, err := m.svc.Confirming(yes).Delete(m.target)
		return m.after(err, "deleted"), nil
	default:
		m.setStatus(todo.ErrDeclined.Error(), true)
		return m, nil
	}
}

func (m *Model) closeInput() {
	m.mode = browsing
	m.input.SetValue("")
	m.input.Blur()
}

// after reloads the list from the service and reports the outcome.
func (m Model) after(err error, verb string) Model {
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	todos, lerr := m.svc.List()
	if lerr != nil {
		m.setStatus(lerr.Error(), true)
		return m
	}
	idx := m.list.Index()
	m.list.SetItems(items(todos))
	if idx >= len(todos) {
		idx = len(todos) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	m.setStatus(verb, false)
	return m
}

func (m *Model) setStatus(s string, failed bool) {
	m.status, m.failed = s, failed
}

func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

// Todos returns the todos currently shown, in stored order.
func (m Model) Todos() []model.Todo {
	var out []model.Todo
	for _, it := range m.list.Items() {
		if li, ok := it.(listItem); ok {
			out = append(out, li.todo)
		}
	}
	return out
}

// Status returns the last status line and whether it reports a failure.
func (m Model) Status() (string, bool) { return m.status, m.failed }

func (m Model) View() string {
	content := m.list.View()
	if m.mode == adding || m.mode == editing {
		title := "Add todo"
		if m.mode == editing {
			title = "Edit todo"
		}
		content += "\n" + m.theme.Frame.Render(title+"\n"+m.input.View())
	}
	if m.status != "" {
		style := m.theme.Success
		sym := m.theme.SymOK
		if m.failed {
			style, sym = m.theme.Error, m.theme.SymFail
		}
		if m.mode == confirming {
			style, sym = m.theme.Pending, "?"
		}
		content += "\n" + style.Render(sym+" "+m.status)
	}
	return m.theme.Frame.Render(content)
}
