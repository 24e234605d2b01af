package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"quizdeck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show attempt history and category accuracy",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		summary, err := s.EventRepo().Stats(ctx)
		if err != nil {
			return fmt.Errorf("aggregate stats: %w", err)
		}

		if summary.Attempts == 0 {
			fmt.Println("No attempts recorded yet. Run `quizdeck play` to start one.")
			return nil
		}

		fmt.Printf("Attempts:   %d\n", summary.Attempts)
		fmt.Printf("Passed:     %d\n", summary.Passed)
		fmt.Printf("Average:    %.1f%%\n", summary.AvgPercentage)
		if summary.BestQuiz != "" {
			fmt.Printf("Best:       %s (%.1f%%)\n", summary.BestQuiz, summary.BestPct)
		}

		if len(summary.CategoryAcc) > 0 {
			fmt.Println()
			fmt.Println("Accuracy by Category")
			fmt.Println(strings.Repeat("─", 40))
			cats := make([]string, 0, len(summary.CategoryAcc))
			for c := range summary.CategoryAcc {
				cats = append(cats, c)
			}
			sort.Strings(cats)
			for _, c := range cats {
				fmt.Printf("%-28s  %6.1f%%\n", c, summary.CategoryAcc[c])
			}
		}

		attempts, err := s.EventRepo().QueryAttempts(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(attempts) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Recent Attempts")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-19s  %-24s  %9s  %6s  %8s  %s\n",
			"Date", "Quiz", "Score", "Pct", "Duration", "Result")
		fmt.Println(strings.Repeat("─", 78))
		for _, a := range attempts {
			verdict := "failed"
			if a.Passed {
				verdict = "passed"
			}
			quizName := a.Quiz
			if len(quizName) > 24 {
				quizName = quizName[:24]
			}
			dur := time.Duration(a.DurationSecs) * time.Second
			fmt.Printf("%-19s  %-24s  %4d/%-4d  %5.1f%%  %8s  %s\n",
				a.Timestamp.Local().Format("2006-01-02 15:04:05"),
				quizName,
				a.Score, a.Possible,
				a.Percentage,
				dur,
				verdict,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent attempts to show")
}
