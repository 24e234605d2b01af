package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"quizdeck/internal/kb"
)

var kbCmd = &cobra.Command{
	Use:   "kb",
	Short: "Manage the knowledge base",
}

var kbAddCmd = &cobra.Command{
	Use:   "add <file>...",
	Short: "Add documents to the knowledge base",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openKB()
		if err != nil {
			return err
		}
		for _, path := range args {
			entry, err := s.Add(path)
			if err != nil {
				return fmt.Errorf("add %s: %w", path, err)
			}
			fmt.Printf("Added %s as %s\n", entry.OriginalName, docHash(entry.HashName))
		}
		return nil
	},
}

var kbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List knowledge base documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openKB()
		if err != nil {
			return err
		}
		entries, err := s.List()
		if err != nil {
			return fmt.Errorf("list documents: %w", err)
		}
		if len(entries) == 0 {
			fmt.Println("Knowledge base is empty. Add documents with `quizdeck kb add <file>`.")
			return nil
		}

		fmt.Printf("%-64s  %-32s  %s\n", "Hash", "Name", "Uploaded")
		fmt.Println(strings.Repeat("─", 118))
		for _, e := range entries {
			fmt.Printf("%-64s  %-32s  %s\n", docHash(e.HashName), truncate(e.OriginalName, 32), e.UploadDate)
		}
		return nil
	},
}

var kbDeleteCmd = &cobra.Command{
	Use:   "delete <hash>",
	Short: "Delete a document by its hash name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openKB()
		if err != nil {
			return err
		}
		if err := s.Delete(args[0]); err != nil {
			return fmt.Errorf("delete %s: %w", args[0], err)
		}
		fmt.Println("Deleted.")
		return nil
	},
}

func openKB() (*kb.Store, error) {
	dir, err := kb.DefaultDir()
	if err != nil {
		return nil, fmt.Errorf("resolve kb dir: %w", err)
	}
	s, err := kb.Open(dir)
	if err != nil {
		return nil, fmt.Errorf("open kb: %w", err)
	}
	return s, nil
}

// docHash strips the storage suffix from a hash name. Delete and chat --kb
// need the full hash, so it is never abbreviated.
func docHash(h string) string {
	return strings.TrimSuffix(h, "-knowledge.json")
}

func init() {
	kbCmd.AddCommand(kbAddCmd)
	kbCmd.AddCommand(kbListCmd)
	kbCmd.AddCommand(kbDeleteCmd)
}
