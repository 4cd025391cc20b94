package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/padvault/pad"
	"github.com/padvault/pad/pkg/core"
)

// importCmd represents the import command.
var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import a directory of Markdown files as notepads",
	Long: `Create one notepad per .md file in the directory, named after the file.
All records are staged in a single transaction: either every file imports
or none do.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := args[0]
		entries, err := os.ReadDir(dir)
		if err != nil {
			fatal("Failed to read import directory", err)
		}

		svc := openService(pad.WithAutoInit(true))
		ctx := context.Background()

		count := 0
		err = svc.WithTransaction(ctx, func(tx core.Transaction) error {
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
					continue
				}
				data, err := os.ReadFile(filepath.Join(dir, e.Name()))
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", e.Name(), err)
				}

				name := core.NormalizeName(strings.TrimSuffix(e.Name(), ".md"))
				if err := core.ValidateName(name); err != nil {
					return fmt.Errorf("%s: %w", e.Name(), err)
				}
				if err := core.ValidateContent(string(data)); err != nil {
					return fmt.Errorf("%s: %w", e.Name(), err)
				}

				if err := tx.Save(ctx, core.Notepad{Name: name, Content: string(data)}); err != nil {
					return err
				}
				count++
			}
			return nil
		})
		if err != nil {
			fatal("Import failed, nothing was written", err)
		}

		fmt.Printf("Imported %d notepads from %s\n", count, dir)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
