package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/abhisek/replayz/internal/store"
	"github.com/spf13/cobra"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recorded sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		summaries, err := st.SessionRepo().List(cmd.Context())
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("No sessions. Import one with: replayz import <bundle.json>")
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SESSION\tLESSON\tSTARTED\tDURATION\tEVENTS\tSTATUS")
		for _, s := range summaries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%ds\t%d\t%s\n",
				s.SessionID, s.LessonID, s.StartedAt, s.DurationMs/1000, s.EventCount, s.Status)
		}
		return w.Flush()
	},
}
