package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quizdeck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved resume snapshot",
	Long: `Clear the saved resume snapshot so the next session starts fresh.

With --all the whole database is deleted, including attempt history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		force, _ := cmd.Flags().GetBool("force")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			fmt.Println("Nothing to reset.")
			return nil
		}

		if !all {
			s, err := store.Open(dbPath)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer s.Close()

			if err := s.SnapshotRepo().Clear(context.Background()); err != nil {
				return fmt.Errorf("clear snapshot: %w", err)
			}
			fmt.Println("Resume snapshot cleared.")
			return nil
		}

		if !force {
			fmt.Printf("This deletes %s and all attempt history. Type 'yes' to continue: ", dbPath)
			reader := bufio.NewReader(os.Stdin)
			line, _ := reader.ReadString('\n')
			if strings.TrimSpace(line) != "yes" {
				fmt.Println("Aborted.")
				return nil
			}
		}

		// Remove the WAL and shared-memory files alongside the database.
		for _, suffix := range []string{"", "-wal", "-shm"} {
			if err := os.Remove(dbPath + suffix); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("remove %s: %w", dbPath+suffix, err)
			}
		}

		fmt.Println("All data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Delete the whole database, not just the resume snapshot")
	resetCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}
