package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export [dir]",
	Short: "Dump all notepads to plain Markdown files",
	Long:  `Write one plain .md file per notepad, named after the notepad, into the given directory (default: pad_export_<timestamp>).`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportDir := fmt.Sprintf("pad_export_%d", time.Now().Unix())
		if len(args) > 0 {
			exportDir = args[0]
		}
		if err := os.MkdirAll(exportDir, 0755); err != nil {
			fatal("Failed to create export directory", err)
		}

		svc := openService()
		pads, err := svc.List(context.Background())
		if err != nil {
			fatal("Failed to list notepads", err)
		}

		count := 0
		for _, n := range pads {
			filename := strings.ReplaceAll(n.Name, "/", "_") + ".md"
			path := filepath.Join(exportDir, filename)
			if err := os.WriteFile(path, []byte(n.Content), 0644); err != nil {
				fatal("Failed to write "+path, err)
			}
			count++
		}

		fmt.Printf("Exported %d notepads to %s/\n", count, exportDir)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
