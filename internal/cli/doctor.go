package cli

import (
	"os"

	"github.com/spf13/cobra"
)

type rootCheck struct {
	Root  string `json:"root"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

type doctorOutput struct {
	ConfigDir string      `json:"configDir"`
	EditorApp string      `json:"editorApp"`
	EditorCmd string      `json:"editorCmd"`
	Capacity  int         `json:"capacity"`
	Roots     []rootCheck `json:"roots"`
}

func newDoctorCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check the configuration and scan roots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := loadEnv()
			if err != nil {
				return err
			}

			out := doctorOutput{
				ConfigDir: st.Dir,
				EditorApp: cfg.EditorApp,
				EditorCmd: cfg.EditorCmd,
				Capacity:  cfg.Capacity,
				Roots:     []rootCheck{},
			}
			for _, root := range cfg.Roots {
				chk := rootCheck{Root: root}
				if _, err := os.ReadDir(root); err != nil {
					chk.Error = err.Error()
				} else {
					chk.OK = true
				}
				out.Roots = append(out.Roots, chk)
			}
			return writeOut(cmd, app, out)
		},
	}
}
