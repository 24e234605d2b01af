package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quizdeck/internal/assistant"
	"quizdeck/internal/llm"
	"quizdeck/internal/store"
)

var chatCmd = &cobra.Command{
	Use:   "chat [question]",
	Short: "Ask the study assistant a question",
	Long: `Ask the study assistant a question over your knowledge base.

Modes:
  local      return matching document passages verbatim (no LLM call)
  smart      answer strictly from the selected documents
  smartplus  answer from the documents plus general knowledge, in persona

With a question argument the answer is printed once; without one an
interactive loop starts (type 'exit' to leave).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mode, _ := cmd.Flags().GetString("mode")
		kbNames, _ := cmd.Flags().GetStringSlice("kb")
		role, _ := cmd.Flags().GetString("role")
		mood, _ := cmd.Flags().GetString("mood")

		ctx := cmd.Context()

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

		// Embeddings are optional. Without them retrieval degrades to
		// whole-document context.
		var embedder llm.Embedder
		if e, err := llm.NewEmbedder(llm.ConfigFromEnv()); err == nil {
			embedder = e
		}

		kbStore, err := openKB()
		if err != nil {
			return err
		}

		a := assistant.New(provider, embedder, kbStore, assistant.DefaultConfig())

		ask := func(question string) error {
			answer, err := a.Ask(ctx, assistant.Query{
				Mode:           assistant.Mode(mode),
				Question:       question,
				KnowledgeBases: kbNames,
				Role:           role,
				Mood:           mood,
			})
			if errors.Is(err, assistant.ErrNoKnowledgeBase) {
				return fmt.Errorf("mode %q needs documents: pass --kb with a hash from `quizdeck kb list`", mode)
			}
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		}

		if len(args) > 0 {
			return ask(strings.Join(args, " "))
		}

		fmt.Printf("Chatting in %s mode. Type 'exit' to leave.\n", mode)
		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("> ")
			if !scanner.Scan() {
				return scanner.Err()
			}
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "exit" || line == "quit" {
				return nil
			}
			if err := ask(line); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
			fmt.Println()
		}
	},
}

func init() {
	chatCmd.Flags().StringP("mode", "m", string(assistant.ModeSmart), "Answer mode: local, smart, or smartplus")
	chatCmd.Flags().StringSlice("kb", nil, "Knowledge base document hashes to draw context from")
	chatCmd.Flags().String("role", "", "Assistant persona for smartplus mode, e.g. 'a history teacher'")
	chatCmd.Flags().String("mood", "", "Assistant mood for smartplus mode, e.g. 'cheerful'")
}
