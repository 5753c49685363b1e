package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/todo/internal/config"
	"github.com/idilsaglam/todo/internal/store/jsonstore"
	"github.com/idilsaglam/todo/internal/todo"
	"github.com/idilsaglam/todo/internal/tui"
	"github.com/idilsaglam/todo/internal/ui"
)

// ExitCode is what Run returns on every path. Failures are reported as
// messages on standard output, never through the exit status.
const ExitCode = 0

// ValidFormats defines the allowed list output formats.
var ValidFormats = []string{"text", "json", "yaml"}

var errNoArgs = errors.New("no arguments provided, please provide at least one argument")

// Options holds global flags for all commands.
type Options struct {
	File         string
	DeletePolicy string
	Theme        string
	LogLevel     string
	Format       string // "text" | "json" | "yaml"
	Panel        bool   // framed list with progress bar
	Group        bool   // panel list grouped by pending/done
}

// TUIFunc runs the interactive list.
type TUIFunc func(svc *todo.Service, theme ui.Theme) error

// app carries the streams and the collaborators built from configuration.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	dir     string
	runTUI  TUIFunc
	opts    Options
	cfg     *config.Config
	svc     *todo.Service
	printer *ui.Printer
	logger  *log.Logger
}

// Option configures Run.
type Option func(*app)

// WithIO replaces the process streams.
func WithIO(in io.Reader, out, errOut io.Writer) Option {
	return func(a *app) {
		a.in, a.out, a.errOut = in, out, errOut
	}
}

// WithDir sets the directory searched for todo.toml and against which a
// relative data file is resolved. Empty means the working directory.
func WithDir(dir string) Option {
	return func(a *app) { a.dir = dir }
}

// WithTUI replaces the interactive list runner.
func WithTUI(fn TUIFunc) Option {
	return func(a *app) { a.runTUI = fn }
}

// Run dispatches args (without the program name) and returns the process
// exit code, which is always ExitCode.
func Run(args []string, opts ...Option) int {
	a := &app{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		runTUI: tui.Run,
	}
	for _, opt := range opts {
		opt(a)
	}

	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	if err := root.Execute(); err != nil {
		if a.printer == nil {
			a.printer = ui.NewPrinter(a.out, config.DefaultTheme)
		}
		a.printer.Fail(err.Error())
	}
	return ExitCode
}

// NewRootCommand builds the command tree on the process streams.
func NewRootCommand() *cobra.Command {
	a := &app{in: os.Stdin, out: os.Stdout, errOut: os.Stderr, runTUI: tui.Run}
	return a.rootCommand()
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "todo - a tiny todo list kept in todos.json",
		Long:          "A command-line todo list. Items live in a JSON file in the current directory.",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipSetup] == "true" {
				return nil
			}
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoArgs
		},
	}

	f := cmd.PersistentFlags()
	f.StringVarP(&a.opts.File, "file", "f", config.DefaultFile, "todo data file")
	f.StringVar(&a.opts.DeletePolicy, "delete-policy", config.DefaultDeletePolicy, "deleting open todos: strict|confirm")
	f.StringVar(&a.opts.Theme, "theme", config.DefaultTheme, "color theme: classic|neon|mono")
	f.StringVar(&a.opts.LogLevel, "log-level", config.DefaultLogLevel, "log level: debug|info|warn|error")

	cmd.AddCommand(a.listCommand())
	cmd.AddCommand(a.newCommand())
	cmd.AddCommand(a.stateCommand("complete", "c", true))
	cmd.AddCommand(a.stateCommand("uncomplete", "uc", false))
	cmd.AddCommand(a.deleteCommand())
	cmd.AddCommand(a.editCommand())
	cmd.AddCommand(a.tuiCommand())
	cmd.SetHelpCommand(helpCommand(cmd))
	cmd.InitDefaultHelpCmd()

	return cmd
}

// setup layers flags over config.Load and builds the service.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.dir)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.File = a.opts.File
	}
	if flags.Changed("delete-policy") {
		cfg.DeletePolicy = a.opts.DeletePolicy
	}
	if flags.Changed("theme") {
		cfg.Theme = a.opts.Theme
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.opts.LogLevel
	}
	a.printer = ui.NewPrinter(a.out, cfg.Theme)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	level, _ := cfg.Level()
	a.logger = log.NewWithOptions(a.errOut, log.Options{
		Level:  level,
		Prefix: "todo",
	})
	if cfg.Source != "" {
		a.logger.Debug("loaded config", "path", cfg.Source)
	}

	path := cfg.File
	if !filepath.IsAbs(path) && a.dir != "" {
		path = filepath.Join(a.dir, path)
	}
	policy, _ := cfg.Policy()
	a.svc = todo.NewService(
		jsonstore.New(path, jsonstore.WithLogger(a.logger)),
		todo.WithDeletePolicy(policy),
		todo.WithConfirmer(todo.NewPromptConfirmer(a.in, a.out)),
		todo.WithLogger(a.logger),
	)
	return nil
}
