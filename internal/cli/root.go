// Package cli implements the shopdocs command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shopdocs/launcher/internal/config"
	"github.com/shopdocs/launcher/internal/history"
	"github.com/shopdocs/launcher/internal/launch"
	"github.com/shopdocs/launcher/internal/locate"
	"github.com/shopdocs/launcher/internal/logging"
	"github.com/shopdocs/launcher/internal/opener"
)

// App holds the state of one invocation.
type App struct {
	// flags
	configFile string
	noColor    bool
	verbose    bool

	// injected collaborators
	fs     afero.Fs
	opener opener.Opener
	logDir string

	// set up in PersistentPreRunE
	viper    *viper.Viper
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
	runID    string

	root *cobra.Command
}

// Option configures an App.
type Option func(*App)

// WithFileSystem replaces the filesystem used for lookups and history.
func WithFileSystem(fsys afero.Fs) Option {
	return func(a *App) { a.fs = fsys }
}

// WithOpener replaces the system opener.
func WithOpener(o opener.Opener) Option {
	return func(a *App) { a.opener = o }
}

// WithLogDir writes the log file to dir instead of the cache directory.
func WithLogDir(dir string) Option {
	return func(a *App) { a.logDir = dir }
}

// New builds the command tree.
func New(opts ...Option) *App {
	a := &App{fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(a)
	}

	a.root = &cobra.Command{
		Use:   "shopdocs",
		Short: "Open shop drawing and e-report PDFs by number",
		Long: `shopdocs resolves short job, e-report and drawing numbers into PDF files on
the shared drive and opens them with the default PDF viewer.

Numbers can be written as ranges, and a range end may drop the leading digits
it shares with its start. E-report numbers also borrow leading digits from the
previous argument.

Configuration Sources (in order of precedence):
  1. Command line flags
  2. Environment variables (SHOPDOCS_*)
  3. Configuration file (--config, SHOPDOCS_CONFIG, ./shopdocs.yaml,
     ~/.config/shopdocs/shopdocs.yaml, /etc/shopdocs/shopdocs.yaml)
  4. Built-in defaults

Examples:
  # Drawings A1 through A9 and S12 of job 4410
  shopdocs dwg 4410 A1-A9 S12

  # E-reports 12345, 12350 through 12360, and 12371
  shopdocs erep 12345 50-60 71

  # Show what a command line expands to
  shopdocs resolve 1234 23-25`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "config file (default: discovered shopdocs.yaml)")
	flags.Bool("dry-run", false, "locate and report files without opening them")
	flags.String("log-level", "", "log level: debug|info|warn|error")
	flags.String("handler", "", "PDF viewer executable; receives every found file at once")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "mirror log records to stderr")
	flags.BoolVar(&a.noColor, "no-color", false, "disable colored output")

	a.root.AddCommand(
		a.newDrawingCommand(),
		a.newReportCommand(),
		a.newResolveCommand(),
		a.newHistoryCommand(),
		a.newConfigCommand(),
	)
	return a
}

// Command returns the root command.
func (a *App) Command() *cobra.Command {
	return a.root
}

// Run executes args and releases resources afterwards.
func (a *App) Run(ctx context.Context, args []string) error {
	a.root.SetArgs(args)
	err := a.root.ExecuteContext(ctx)
	if a.closeLog != nil {
		_ = a.closeLog()
		a.closeLog = nil
	}
	return err
}

// Execute runs the CLI with the process arguments and exits non-zero on error.
func Execute() {
	app := New()
	if err := app.Run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// flagKeys maps persistent flags onto config keys.
var flagKeys = map[string]string{
	"dry-run":   "dry_run",
	"log-level": "log_level",
	"handler":   "handler",
}

func (a *App) setup(cmd *cobra.Command, args []string) error {
	v, err := config.New(a.configFile)
	if err != nil {
		return NewConfigError("load configuration", err, CommonSuggestions.CheckConfig)
	}

	for flagName, key := range flagKeys {
		if f := cmd.Flags().Lookup(flagName); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", flagName, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return NewConfigError("load configuration", err, CommonSuggestions.CheckConfig)
	}

	a.viper = v
	a.cfg = cfg
	a.runID = uuid.NewString()

	logger, closeLog, err := logging.Init(logging.Options{
		Level:   cfg.LogLevel,
		Verbose: a.verbose,
		Dir:     a.logDir,
		Stderr:  cmd.ErrOrStderr(),
		RunID:   a.runID,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	a.logger = logger
	a.closeLog = closeLog

	logger.Debug("command started",
		"command", cmd.Name(),
		"args", args,
		"config_file", v.ConfigFileUsed(),
		"dry_run", cfg.DryRun)
	return nil
}

func (a *App) systemOpener() opener.Opener {
	if a.opener != nil {
		return a.opener
	}
	return opener.NewSystem(a.cfg.Handler, opener.WithLogger(a.logger))
}

func (a *App) historyStore() (*history.Store, error) {
	if !a.cfg.History.Enabled {
		return nil, nil
	}
	return history.Open(a.cfg.History.File, a.cfg.History.Limit, history.WithFileSystem(a.fs))
}

func (a *App) launcher(command string, out io.Writer, locator *locate.Locator, found func(bool) func(locate.Result) string) *launch.Launcher {
	l := &launch.Launcher{
		Command: command,
		RunID:   a.runID,
		DryRun:  a.cfg.DryRun,
		Locator: locator,
		Opener:  a.systemOpener(),
		Reporter: &consoleReporter{
			out:    out,
			styles: newStyles(out, a.noColor),
			found:  found(a.cfg.DryRun),
		},
		Logger: a.logger,
	}

	store, err := a.historyStore()
	if err != nil {
		a.logger.Warn("history disabled", "error", err)
	} else if store != nil {
		l.History = store
	}
	return l
}

// changedFlag reports whether name was set on the command line.
func changedFlag(flags *pflag.FlagSet, name string) bool {
	f := flags.Lookup(name)
	return f != nil && f.Changed
}
