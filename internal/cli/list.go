package cli

import (
	"devdirs-cli/internal/model"

	"github.com/spf13/cobra"
)

type listOutput struct {
	Recent []model.Folder `json:"recent"`
	All    []model.Folder `json:"all"`
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recent and discovered project folders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, st, err := loadEnv()
			if err != nil {
				return err
			}
			c := newController(cmd, cfg, st)
			c.Load(cmd.Context())

			recent, other := c.Sections()
			if recent == nil {
				recent = []model.Folder{}
			}
			return writeOut(cmd, app, listOutput{Recent: recent, All: other})
		},
	}
}
