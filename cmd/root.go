package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quizdeck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Adaptive quizzes in your terminal",
	Long:  "QuizDeck — terminal quiz runner with adaptive difficulty, resumable attempts, and AI quiz generation.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZDECK_DB env var)")
	rootCmd.PersistentFlags().String("quiz-dir", "", "Directory holding quiz JSON files (overrides QUIZDECK_QUIZ_DIR env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(kbCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZDECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveQuizDir returns the quiz directory using --quiz-dir, then
// QUIZDECK_QUIZ_DIR, then ./quizzes.
func resolveQuizDir(cmd *cobra.Command) string {
	if d, _ := cmd.Flags().GetString("quiz-dir"); d != "" {
		return d
	}
	if d := os.Getenv("QUIZDECK_QUIZ_DIR"); d != "" {
		return d
	}
	return "quizzes"
}

// quizIndexPath is the index document listing available quizzes.
func quizIndexPath(dir string) string {
	return filepath.Join(dir, "index.json")
}
