package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/replayz/internal/export"
	"github.com/abhisek/replayz/internal/replay"
	"github.com/abhisek/replayz/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <bundle.json>",
	Short: "Import a session bundle exported by the tutoring platform",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read bundle: %w", err)
		}

		data, lesson, err := export.ParseBundle(raw)
		if err != nil {
			return fmt.Errorf("parse bundle: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		id, err := st.SessionRepo().ImportSession(ctx, data)
		if err != nil {
			return fmt.Errorf("import session: %w", err)
		}

		if lesson != nil {
			if err := st.LessonRepo().ImportLesson(ctx, lesson); err != nil {
				fmt.Fprintf(os.Stderr, "warning: lesson structure not imported: %v\n", err)
			}
		}

		fmt.Printf("Imported session %s (%d events)\n", id, eventTotal(data))
		return nil
	},
}

// eventTotal counts the point events in a session recording.
func eventTotal(data *replay.SessionData) int {
	return len(data.CodeSnapshots) +
		len(data.NavigationEvents) +
		len(data.Strokes) +
		len(data.TestResults) +
		len(data.CodeErrors) +
		len(data.TaskProgress) +
		len(data.PanelInteractions) +
		len(data.TutorHighlights) +
		len(data.UserHighlights) +
		len(data.Messages)
}
