package cli

import (
	"todo-notes/internal/config"
	"todo-notes/internal/format"

	"github.com/spf13/cobra"
)

func newListsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "lists",
		Short: "Show registered lists and which one is active here",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			// Resolution only; listing must not register or create anything.
			id, err := cfg.ActiveList(app.cwd(), app.Env, app.Target)
			if err != nil {
				return err
			}
			refs := cfg.ListRefs()
			return emit(cmd, app, id.Name, struct {
				Active config.ListIdentity `json:"active"`
				Lists  []config.ListRef    `json:"lists"`
			}{Active: id, Lists: refs}, format.Lists(refs, id.Name))
		},
	}
}
