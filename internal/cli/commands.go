package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo/internal/ui"
)

const skipSetup = "skip-setup"

var (
	errNoTitle = errors.New("no title has been provided")
	errNoID    = errors.New("no todo ID has been provided")
)

func (a *app) listCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"l"},
		Short:   "List todos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(a.opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", a.opts.Format, ValidFormats)
			}
			todos, err := a.svc.List()
			if err != nil {
				return fmt.Errorf("an error occurred while loading the todo list: %w", err)
			}
			if a.opts.Panel {
				a.printer.Panel(panelLines(a.printer.Theme(), todos, a.opts.Group))
				return nil
			}
			return writeTodos(a.out, a.opts.Format, todos)
		},
	}
	cmd.Flags().StringVar(&a.opts.Format, "format", "text", "output format (text|json|yaml)")
	cmd.Flags().BoolVar(&a.opts.Panel, "panel", false, "framed view with progress bar")
	cmd.Flags().BoolVar(&a.opts.Group, "group", false, "group the panel view by pending/done")
	return cmd
}

func (a *app) newCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "new <title...>",
		Aliases: []string{"n"},
		Short:   "Add a new todo (title can be multiple words)",
		RunE: func(cmd *cobra.Command, args []string) error {
			title := strings.TrimSpace(strings.Join(args, " "))
			if title == "" {
				return errNoTitle
			}
			td, err := a.svc.Create(title)
			if err != nil {
				return fmt.Errorf("an error occurred during the creation of a todo: %w", err)
			}
			a.printer.OK("Successfully created a new todo: " + td.Title)
			return nil
		},
	}
}

func (a *app) stateCommand(name, alias string, completed bool) *cobra.Command {
	short, verb := "Mark a todo as completed", "Completed"
	if !completed {
		short, verb = "Mark a todo as not completed", "Reopened"
	}
	return &cobra.Command{
		Use:     name + " <id>",
		Aliases: []string{alias},
		Short:   short,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseID(args, 1)
			if err != nil {
				return err
			}
			td, err := a.svc.SetState(idx, completed)
			if err != nil {
				return fmt.Errorf("an error occurred while setting the state of the todo: %w", err)
			}
			a.printer.OK(fmt.Sprintf("%s todo %d: %s", verb, idx+1, td.Title))
			return nil
		},
	}
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"d"},
		Short:   "Delete a completed todo",
		Long: "Delete a todo. Open todos are refused under the strict delete policy;\n" +
			"under the confirm policy you are asked first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseID(args, 1)
			if err != nil {
				return err
			}
			td, err := a.svc.Delete(idx)
			if err != nil {
				return fmt.Errorf("an error occurred while deleting the todo: %w", err)
			}
			a.printer.OK(fmt.Sprintf("Deleted todo %d: %s", idx+1, td.Title))
			return nil
		},
	}
}

func (a *app) editCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "edit <id> <title...>",
		Aliases: []string{"e"},
		Short:   "Change the title of a todo",
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := parseID(args, -1)
			if err != nil {
				return err
			}
			title := strings.TrimSpace(strings.Join(args[1:], " "))
			if title == "" {
				return errNoTitle
			}
			td, err := a.svc.Rename(idx, title)
			if err != nil {
				return fmt.Errorf("an error occurred while editing the todo: %w", err)
			}
			a.printer.OK(fmt.Sprintf("Renamed todo %d: %s", idx+1, td.Title))
			return nil
		},
	}
}

func (a *app) tuiCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tui",
		Aliases: []string{"t"},
		Short:   "Browse and edit todos interactively",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.runTUI(a.svc, ui.ThemeFor(a.cfg.Theme, nil)); err != nil {
				return fmt.Errorf("tui: %w", err)
			}
			return nil
		},
	}
}

func helpCommand(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:         "help [command]",
		Aliases:     []string{"h"},
		Short:       "Help about any command",
		Annotations: map[string]string{skipSetup: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _, err := root.Find(args)
			if err != nil || target == nil {
				target = root
			}
			return target.Help()
		},
	}
}

// parseID reads the 1-based todo ID in args[0] and returns it 0-based.
// want is the exact argument count, or -1 for "at least one".
func parseID(args []string, want int) (int, error) {
	if len(args) == 0 {
		return 0, errNoID
	}
	if want > 0 && len(args) != want {
		return 0, fmt.Errorf("expected %d argument(s), got %d", want, len(args))
	}
	n, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid todo ID %q: not a number", args[0])
	}
	if n < 1 {
		return 0, fmt.Errorf("invalid todo ID %d: must be a positive integer", n)
	}
	return n - 1, nil
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
