package cli

import (
	"fmt"
	"os"
	"strings"

	"devdirs-cli/internal/controller"
	"devdirs-cli/internal/finder"
	"devdirs-cli/internal/format"
	"devdirs-cli/internal/opener"
	"devdirs-cli/internal/store"
	"devdirs-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigDir  string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "devdirs",
		Short:        "Browse project folders and open them in your editor",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive picker
  devdirs

  # Scriptable commands
  devdirs list
  devdirs open ~/Work/api
  devdirs selection
  devdirs recents clear
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive picker.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// The config/state lookup goes through the env override, so the flag
		// just feeds it. Keeps fixtures/tests and the flag on one code path.
		if strings.TrimSpace(app.ConfigDir) != "" {
			return os.Setenv("DEVDIRS_CONFIG_DIR", app.ConfigDir)
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigDir, "config-dir", envOr("DEVDIRS_CONFIG_DIR", ""), "Path to config/state dir (default ~/.devdirs)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newOpenCmd(app))
	cmd.AddCommand(newSelectionCmd(app))
	cmd.AddCommand(newRecentsCmd(app))
	cmd.AddCommand(newDoctorCmd(app))

	return cmd
}

func runTUI(app *App) error {
	cfg, st, err := loadEnv()
	if err != nil {
		return err
	}
	return tui.Run(cfg, st)
}

// loadEnv resolves configuration and the backing store. Config problems are
// fatal here; degraded scan/recents conditions are handled further down.
func loadEnv() (store.Config, store.Store, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return store.Config{}, store.Store{}, err
	}
	dir, err := store.ConfigDir()
	if err != nil {
		return store.Config{}, store.Store{}, err
	}
	return cfg, store.Store{Dir: dir, Capacity: cfg.Capacity}, nil
}

// newController wires the real collaborators, with diagnostics on stderr.
func newController(cmd *cobra.Command, cfg store.Config, st store.Store) *controller.Controller {
	warn := func(msg string) {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning: "+msg)
	}
	return controller.New(
		cfg,
		st,
		opener.Editor{App: cfg.EditorApp, Cmd: cfg.EditorCmd},
		finder.Finder{Warn: warn},
		warn,
	)
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.WriteJSON(cmd.OutOrStdout(), v, app.PrettyJSON)
}
