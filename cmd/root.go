package cmd

import (
	"github.com/abhisek/replayz/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "replayz",
	Short: "Session replay for AI tutoring recordings",
	Long:  "Replayz — terminal player that reconstructs recorded tutoring sessions: code, drawings, chat, and tutor audio on one timeline.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REPLAYZ_DB env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then REPLAYZ_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
