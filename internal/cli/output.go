package cli

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/ui"
)

// writeTodos prints the list in the requested format. Text output of an
// empty list is empty.
func writeTodos(w io.Writer, format string, todos []model.Todo) error {
	switch format {
	case "json":
		b, err := jsonstore.Encode(todos)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		if todos == nil {
			todos = []model.Todo{}
		}
		b, err := yaml.Marshal(todos)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(b)
		return err
	}
	for i, td := range todos {
		if _, err := fmt.Fprintln(w, td.Line(i+1)); err != nil {
			return err
		}
	}
	return nil
}

// -------------- panel view ----------------

func panelLines(t ui.Theme, todos []model.Todo, group bool) []string {
	d, p := stats(todos)
	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Todos"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), len(todos),
	)

	var lines []string
	lines = append(lines, header)
	lines = append(lines, t.Muted.Render(ui.ProgressBar(d, d+p, 28)))
	lines = append(lines, "")
	if group {
		lines = append(lines, groupLines(t, todos)...)
	} else {
		lines = append(lines, flatLines(t, todos, nil)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Muted.Render("Tip: add with `todo new \"Buy milk\"`"))
	return lines
}

func stats(todos []model.Todo) (done, pending int) {
	for _, td := range todos {
		if td.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}

// flatLines renders one line per todo. positions, when set, holds the 1-based
// position of each todo in the full list.
func flatLines(t ui.Theme, todos []model.Todo, positions []int) []string {
	if len(todos) == 0 {
		return []string{t.Muted.Render("no items")}
	}
	out := make([]string, 0, len(todos))
	for i, td := range todos {
		pos := i + 1
		if positions != nil {
			pos = positions[i]
		}
		box, style := t.Muted.Render(t.BoxUnchecked), t.Muted
		title := td.Title
		if td.Completed {
			box, style = t.Success.Render(t.BoxChecked), t.Done
			title = style.Render(title)
		}
		if len([]rune(td.Title)) > 80 {
			title = style.Render(string([]rune(td.Title)[:77]) + "...")
		}
		out = append(out, fmt.Sprintf("%s %s %s", t.Muted.Render(fmt.Sprintf("%2d.", pos)), box, title))
	}
	return out
}

func groupLines(t ui.Theme, todos []model.Todo) []string {
	var pend, done []model.Todo
	var pendPos, donePos []int
	for i, td := range todos {
		if td.Completed {
			done = append(done, td)
			donePos = append(donePos, i+1)
		} else {
			pend = append(pend, td)
			pendPos = append(pendPos, i+1)
		}
	}
	var lines []string
	lines = append(lines, t.Accent.Render("Pending"))
	if len(pend) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(t, pend, pendPos)...)
	}
	lines = append(lines, "")
	lines = append(lines, t.Accent.Render("Done"))
	if len(done) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	} else {
		lines = append(lines, flatLines(t, done, donePos)...)
	}
	return lines
}
