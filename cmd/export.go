package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quizdeck/internal/results"
	"quizdeck/internal/store"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export attempt history as CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")
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

		attempts, err := s.EventRepo().QueryAttempts(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts to export.")
			return nil
		}

		if err := results.ExportAttemptsCSV(out, attempts); err != nil {
			return err
		}
		fmt.Printf("Exported %d attempts to %s\n", len(attempts), out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "quizdeck-history.csv", "Output file path")
	exportCmd.Flags().IntP("limit", "n", 0, "Max attempts to export (0 = all)")
}
