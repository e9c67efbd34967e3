package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/replayz/internal/app"
	"github.com/abhisek/replayz/internal/audio"
	"github.com/abhisek/replayz/internal/lessons"
	"github.com/abhisek/replayz/internal/store"
	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play [session-id]",
	Short: "Replay a recorded session",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := ""
		if len(args) > 0 {
			sessionID = args[0]
		}
		return runApp(cmd, sessionID)
	},
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, sessionID string) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	opts := app.Options{
		SessionRepo:   st.SessionRepo(),
		LessonService: lessons.NewService(st.LessonRepo()),
		SessionID:     sessionID,
	}

	// Audio service is optional — replay works without it.
	client, err := audio.NewClientFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Audio service not configured:", err)
		fmt.Fprintln(os.Stderr, "Replay will run without audio.")
	} else {
		opts.AudioClient = client
	}

	return app.Run(opts)
}
