package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"quizdeck/internal/app"
	"quizdeck/internal/question"
	"quizdeck/internal/quiz"
	"quizdeck/internal/screens/home"
	"quizdeck/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	quizDir := resolveQuizDir(cmd)
	entries := question.LoadIndex(quizIndexPath(quizDir))

	deps := home.Deps{
		QuizDir:   quizDir,
		Entries:   entries,
		Config:    quizConfig(cmd),
		Snapshots: st.SnapshotRepo(),
		Events:    st.EventRepo(),
		Saver:     st.SessionSaver(),
	}

	return app.Run(deps)
}

// quizConfig builds the attempt configuration from defaults and flags.
func quizConfig(cmd *cobra.Command) quiz.Config {
	cfg := quiz.DefaultConfig()

	if n, err := cmd.Flags().GetInt("count"); err == nil && cmd.Flags().Changed("count") {
		cfg.QuestionCount = n
	}
	if m, err := cmd.Flags().GetInt("minutes"); err == nil && cmd.Flags().Changed("minutes") {
		cfg.TimeLimit = time.Duration(m) * time.Minute
	}
	if p, err := cmd.Flags().GetFloat64("passing"); err == nil && cmd.Flags().Changed("passing") {
		cfg.PassingScore = p
	}
	if a, err := cmd.Flags().GetBool("adaptive"); err == nil && cmd.Flags().Changed("adaptive") {
		cfg.Adaptive = a
	}
	if c, err := cmd.Flags().GetBool("count-correct"); err == nil && cmd.Flags().Changed("count-correct") {
		cfg.CountByPoints = !c
	}
	return cfg
}

func init() {
	addQuizFlags(rootCmd)
}

// addQuizFlags registers the attempt configuration flags on a command.
func addQuizFlags(cmd *cobra.Command) {
	cmd.Flags().Int("count", 0, "Number of questions per attempt (0 = all)")
	cmd.Flags().Int("minutes", 0, "Time limit in minutes")
	cmd.Flags().Float64("passing", 0, "Passing score percentage")
	cmd.Flags().Bool("adaptive", false, "Pick question difficulty adaptively")
	cmd.Flags().Bool("count-correct", false, "Score by correct-answer count instead of points")
}
