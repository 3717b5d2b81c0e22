package cli

import (
	"path/filepath"

	"todo-notes/internal/format"
	"todo-notes/internal/journal"

	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	var (
		limit int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent changes to the active list (newest first)",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.loadConfig()
			if err != nil {
				return err
			}
			id, err := cfg.ActiveList(app.cwd(), app.Env, app.Target)
			if err != nil {
				return err
			}
			list := id.Name
			if all {
				list = ""
			}

			j, err := journal.Open(cmd.Context(), filepath.Join(cfg.Dir, journal.FileName))
			if err != nil {
				return err
			}
			defer j.Close()
			evs, err := j.Recent(cmd.Context(), list, limit)
			if err != nil {
				return err
			}
			return emit(cmd, app, id.Name, evs, format.Events(evs))
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Max events to show (0 = all)")
	cmd.Flags().BoolVar(&all, "all", false, "Include every list, not just the active one")
	return cmd
}
