package cli

import (
	"fmt"
	"path/filepath"

	"devdirs-cli/internal/model"
	"devdirs-cli/internal/workspace"

	"github.com/spf13/cobra"
)

func newOpenCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "open <folder>",
		Short: "Open a folder in the editor and record it as recent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := loadEnv()
			if err != nil {
				return err
			}
			c := newController(cmd, cfg, st)
			c.Load(cmd.Context())

			abs, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			f := model.FolderFromPath(abs)
			if err := c.Open(cmd.Context(), f); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]string{
				"opened": f.Path,
				"target": workspace.ResolveOpenTarget(f),
			})
		},
	}
}

func newSelectionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "selection",
		Short: "Open everything currently selected in the file manager",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := loadEnv()
			if err != nil {
				return err
			}
			c := newController(cmd, cfg, st)
			c.Load(cmd.Context())

			sum, err := c.OpenSelection(cmd.Context())
			if err != nil {
				// Includes ErrNoSelection: expected, but still a non-zero
				// outcome the caller should see.
				return err
			}
			for _, e := range sum.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), e.Error())
			}
			return writeOut(cmd, app, map[string]int{
				"opened": sum.Opened,
				"failed": sum.Failed,
			})
		},
	}
}
