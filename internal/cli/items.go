package cli

import (
	"strconv"
	"strings"

	"todo-notes/internal/format"
	"todo-notes/internal/journal"
	"todo-notes/internal/listfile"

	"github.com/spf13/cobra"
)

func newAddCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Append an item to the active list",
		Args:  minArgs(1, "item text is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app)
			if err != nil {
				return err
			}
			added, all, err := s.store.Add(strings.Join(args, " "))
			if err != nil {
				return err
			}
			s.record(cmd.Context(), app, journal.Event{Op: journal.OpAdd, Index: added.Index, Text: added.Text})

			return emit(cmd, app, s.id.Name, map[string]any{
				"added": added,
				"items": all,
			}, format.Added(added)+format.Entries(all, app.Width))
		},
	}
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the active list",
		Args:    noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, app)
		},
	}
}

func runList(cmd *cobra.Command, app *App) error {
	s, err := openSession(app)
	if err != nil {
		return err
	}
	entries, err := s.store.Load()
	if err != nil {
		return err
	}
	if entries == nil {
		entries = []listfile.Entry{}
	}
	return emit(cmd, app, s.id.Name, entries, format.Entries(entries, app.Width))
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <n> [n...]",
		Aliases: []string{"rm", "del"},
		Short:   "Delete items by number and renumber the rest",
		Long: strings.TrimSpace(`
Delete one or more items. Numbers refer to the list as it is before the delete;
duplicates count once. Arguments may hold several numbers ("2 4" or "2,4").
If any number is past the end of the list nothing is deleted.`),
		Args: minArgs(1, "at least one item number is required"),
		RunE: func(cmd *cobra.Command, args []string) error {
			indices, err := parseIndices(args)
			if err != nil {
				return err
			}
			s, err := openSession(app)
			if err != nil {
				return err
			}
			removed, remaining, err := s.store.Delete(indices)
			if err != nil {
				return err
			}
			evs := make([]journal.Event, len(removed))
			for i, e := range removed {
				evs[i] = journal.Event{Op: journal.OpDelete, Index: e.Index, Text: e.Text}
			}
			s.record(cmd.Context(), app, evs...)

			return emit(cmd, app, s.id.Name, map[string]any{
				"deleted": removed,
				"items":   remaining,
			}, format.Deleted(removed)+format.Entries(remaining, app.Width))
		},
	}
}

func newResetCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Remove every item from the active list",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(app)
			if err != nil {
				return err
			}
			if err := s.store.Reset(); err != nil {
				return err
			}
			s.record(cmd.Context(), app, journal.Event{Op: journal.OpReset})

			return emit(cmd, app, s.id.Name, map[string]any{
				"items": []listfile.Entry{},
			}, "List reset: "+s.id.Name+"\n")
		},
	}
}

// parseIndices accepts numbers as separate args or space/comma separated within one arg.
func parseIndices(args []string) ([]int, error) {
	var out []int
	for _, a := range args {
		fields := strings.FieldsFunc(a, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
		for _, f := range fields {
			n, err := strconv.Atoi(f)
			if err != nil {
				return nil, &listfile.InvalidArgumentError{Arg: f, Reason: "not an item number"}
			}
			if n < 1 {
				return nil, &listfile.InvalidArgumentError{Arg: f, Reason: "item numbers start at 1"}
			}
			out = append(out, n)
		}
	}
	if len(out) == 0 {
		return nil, &listfile.InvalidArgumentError{Reason: "no item numbers given"}
	}
	return out, nil
}

func minArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return usageErrorf("%s: %s", cmd.CommandPath(), msg)
		}
		return nil
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return usageErrorf("%s takes no arguments, got %q", cmd.CommandPath(), args[0])
	}
	return nil
}
