package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"quizdeck/internal/llm"
	"quizdeck/internal/question"
	"quizdeck/internal/quizgen"
	"quizdeck/internal/store"
)

var genCmd = &cobra.Command{
	Use:   "gen <topic>",
	Short: "Generate a quiz with the configured LLM provider",
	Long: `Generate a quiz about a topic and save it into the quiz directory.

With --kb the questions are drawn from your knowledge base documents
instead of the model's general knowledge.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		kbNames, _ := cmd.Flags().GetStringSlice("kb")
		categories, _ := cmd.Flags().GetStringSlice("category")

		ctx := cmd.Context()
		topic := strings.Join(args, " ")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			return fmt.Errorf("configure LLM provider: %w", err)
		}

		var notes string
		if len(kbNames) > 0 {
			kbStore, err := openKB()
			if err != nil {
				return err
			}
			notes, err = kbStore.Content(kbNames)
			if err != nil {
				return fmt.Errorf("read knowledge base: %w", err)
			}
			if notes == "" {
				return fmt.Errorf("no content found for the given --kb hashes")
			}
		}

		fmt.Printf("Generating %d questions about %q...\n", count, topic)

		g := quizgen.New(provider, quizgen.DefaultConfig())
		out, err := g.Generate(ctx, quizgen.GenerateInput{
			Topic:      topic,
			Notes:      notes,
			Count:      count,
			Categories: categories,
		})
		if err != nil {
			return fmt.Errorf("generate quiz: %w", err)
		}

		quizDir := resolveQuizDir(cmd)
		path, err := saveQuiz(quizDir, out)
		if err != nil {
			return err
		}

		fmt.Printf("Saved %q (%d questions) to %s\n", out.Title, len(out.Questions), path)
		fmt.Println("Play it with `quizdeck play`.")
		return nil
	},
}

// saveQuiz writes the generated questions as a quiz file and registers it
// in the index document so the home screen can list it.
func saveQuiz(dir string, q *quizgen.GeneratedQuiz) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create quiz dir: %w", err)
	}

	file := slugify(q.Title) + ".json"
	path := filepath.Join(dir, file)

	doc := struct {
		Questions []question.Question `json:"questions"`
	}{Questions: q.Questions}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode quiz: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write quiz file: %w", err)
	}

	if err := appendToIndex(dir, question.IndexEntry{File: file, Title: q.Title}); err != nil {
		return "", err
	}
	return path, nil
}

// appendToIndex adds an entry to index.json, replacing an entry that points
// at the same file so regeneration doesn't duplicate rows.
func appendToIndex(dir string, entry question.IndexEntry) error {
	path := quizIndexPath(dir)

	var entries []question.IndexEntry
	if data, err := os.ReadFile(path); err == nil {
		_ = json.Unmarshal(data, &entries)
	}

	kept := entries[:0]
	for _, e := range entries {
		if e.File != entry.File {
			kept = append(kept, e)
		}
	}
	kept = append(kept, entry)

	data, err := json.MarshalIndent(kept, "", "  ")
	if err != nil {
		return fmt.Errorf("encode index: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write index: %w", err)
	}
	return nil
}

// slugify converts a title into a filesystem-safe lowercase file stem.
func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

func init() {
	genCmd.Flags().IntP("count", "c", 10, "Number of questions to generate")
	genCmd.Flags().StringSlice("kb", nil, "Knowledge base document hashes to source questions from")
	genCmd.Flags().StringSlice("category", nil, "Constrain question categories")
}
