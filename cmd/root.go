package cmd

import (
	"os"

	"github.com/lingobee/lingobee/internal/curriculum"
	"github.com/lingobee/lingobee/internal/store"
	"github.com/spf13/cobra"
)

const defaultUser = "local"

var rootCmd = &cobra.Command{
	Use:   "lingobee",
	Short: "Language practice in your terminal",
	Long:  "Lingobee — a terminal app for bite-sized language practice: unlock nodes, build sentences from word banks, and keep your streak alive.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LINGOBEE_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Path to a curriculum JSON file (overrides LINGOBEE_CONTENT env var)")
	rootCmd.PersistentFlags().String("user", "", "User the progress belongs to (overrides LINGOBEE_USER env var)")

	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LINGOBEE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveCurriculum loads the curriculum from --content, LINGOBEE_CONTENT,
// or the embedded default, in that order.
func resolveCurriculum(cmd *cobra.Command) (*curriculum.Curriculum, error) {
	if p, _ := cmd.Flags().GetString("content"); p != "" {
		return curriculum.LoadFile(p)
	}
	if p := os.Getenv("LINGOBEE_CONTENT"); p != "" {
		return curriculum.LoadFile(p)
	}
	return curriculum.Default()
}

// resolveUser returns the user from --user, LINGOBEE_USER, or the default.
func resolveUser(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("user"); u != "" {
		return u
	}
	if u := os.Getenv("LINGOBEE_USER"); u != "" {
		return u
	}
	return defaultUser
}
