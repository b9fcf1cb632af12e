package cli

import (
	"devdirs-cli/internal/model"

	"github.com/spf13/cobra"
)

func newRecentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recents",
		Short: "Show the recent-folder list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv()
			if err != nil {
				return err
			}
			warn := func(msg string) {
				cmd.PrintErrln("warning: " + msg)
			}
			list, err := st.LoadRecents(cmd.Context(), warn)
			if err != nil {
				return err
			}
			if list == nil {
				list = []model.Folder{}
			}
			return writeOut(cmd, app, list)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Forget all recent folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv()
			if err != nil {
				return err
			}
			if err := st.ClearRecents(cmd.Context()); err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]bool{"cleared": true})
		},
	})

	return cmd
}
