package cli

import (
	"errors"
	"fmt"

	"wishlist-console/internal/journal"

	"github.com/spf13/cobra"
)

func newJournalCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the operation journal",
	}
	cmd.AddCommand(newJournalListCmd(app))
	return cmd
}

func newJournalListCmd(app *App) *cobra.Command {
	var (
		session string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List journaled operations, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Journal == "" {
				return writeErr(cmd, errors.New("no journal configured (pass --journal or set WISHLIST_CONSOLE_JOURNAL)"))
			}
			if limit < 0 {
				return writeErr(cmd, fmt.Errorf("--limit must not be negative, got %d", limit))
			}
			j, err := journal.Open(cmd.Context(), app.Journal)
			if err != nil {
				return writeErr(cmd, err)
			}
			defer j.Close()

			entries, err := j.List(cmd.Context(), journal.ListOptions{SessionID: session, Limit: limit})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": entries})
		},
	}

	cmd.Flags().StringVar(&session, "session", "", "Only entries of this session id")
	cmd.Flags().IntVar(&limit, "limit", 0, "Keep only the newest N entries (0 = all)")

	return cmd
}
