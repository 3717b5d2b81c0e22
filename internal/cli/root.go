package cli

import (
	"io"
	"os"
	"strings"

	"todo-notes/internal/config"
	"todo-notes/internal/format"
	"todo-notes/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type App struct {
	Target     string
	ConfigDir  string
	Format     string
	PrettyJSON bool
	NoColor    bool
	Verbose    bool
	Width      int

	// Env and Getwd are the only ambient inputs; tests replace them.
	Env   config.Env
	Getwd func() (string, error)

	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{Env: config.OSEnv, Getwd: os.Getwd})
}

// Run executes the CLI with args (without the program name) and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	err := cmd.Execute()
	if err != nil {
		reportError(stderr, err)
	}
	return ExitCode(err)
}

func newRootCmd(app *App) *cobra.Command {
	if app.Env == nil {
		app.Env = config.OSEnv
	}
	if app.Getwd == nil {
		app.Getwd = os.Getwd
	}

	cmd := &cobra.Command{
		Use:           "todo",
		Short:         "Numbered todo lists, one per git repository",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Add to the list for the repository you are in (or the DEFAULT list)
  todo add "buy milk"

  # Show the list
  todo

  # Delete items 2 and 4, then renumber
  todo delete 2 4

  # Work on a named list instead
  todo -t groceries add eggs
`),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageErrorf("unknown command %q for %q", args[0], cmd.CommandPath())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		f, err := format.Validate(app.Format)
		if err != nil {
			return usageError{err: err}
		}
		app.Format = f
		format.ConfigureColor(app.NoColor)
		app.log = logging.New(cmd.ErrOrStderr(), app.Verbose)
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.log != nil {
			_ = app.log.Sync()
		}
		return nil
	}
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return usageError{err: err}
	})

	cmd.PersistentFlags().StringVarP(&app.Target, "target", "t", "", "List name to use instead of the repository/default list (env "+config.EnvList+")")
	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", "", "Config directory (env "+config.EnvConfigDir+"; default $XDG_CONFIG_HOME/"+config.DirName+")")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr(app.Env, "TODO_NOTES_FORMAT", format.Text), "Output format (text|json|edn)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print json/edn output")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Log list resolution details to stderr")
	cmd.PersistentFlags().IntVar(&app.Width, "width", 0, "Truncate item lines to this many columns (0 = no limit)")

	cmd.AddCommand(newAddCmd(app))
	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newDeleteCmd(app))
	cmd.AddCommand(newResetCmd(app))
	cmd.AddCommand(newListsCmd(app))
	cmd.AddCommand(newHistoryCmd(app))

	return cmd
}

func envOr(env config.Env, k, d string) string {
	if v := env(k); v != "" {
		return v
	}
	return d
}

// envelope wraps json/edn output.
type envelope struct {
	List string `json:"list"`
	Data any    `json:"data"`
}

// emit writes text in text mode, otherwise data inside an envelope.
func emit(cmd *cobra.Command, app *App, list string, data any, text string) error {
	if app.Format == format.Text {
		_, err := io.WriteString(cmd.OutOrStdout(), text)
		return err
	}
	return format.Write(cmd.OutOrStdout(), envelope{List: list, Data: data}, app.Format, app.PrettyJSON)
}

func (app *App) logger() *zap.Logger {
	if app.log == nil {
		return zap.NewNop()
	}
	return app.log
}

func (app *App) configDir() (string, error) {
	if d := strings.TrimSpace(app.ConfigDir); d != "" {
		return d, nil
	}
	return config.Dir(app.Env)
}

func (app *App) loadConfig() (*config.Config, error) {
	dir, err := app.configDir()
	if err != nil {
		return nil, err
	}
	return config.Load(dir)
}

func (app *App) cwd() string {
	wd, err := app.Getwd()
	if err != nil {
		app.logger().Debug("cannot read working directory; skipping repository lookup", zap.Error(err))
		return ""
	}
	return wd
}
