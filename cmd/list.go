package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quizdeck/internal/question"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available quizzes",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := resolveQuizDir(cmd)
		entries := question.LoadIndex(quizIndexPath(dir))

		for _, e := range entries {
			marker := " "
			if _, err := os.Stat(filepath.Join(dir, e.File)); err != nil {
				marker = "!"
			}
			fmt.Printf("%s %-32s  %s\n", marker, e.Title, e.File)
		}
		fmt.Printf("\n%d quizzes in %s (! = file missing)\n", len(entries), dir)
		return nil
	},
}
