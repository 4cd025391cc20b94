package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/padvault/pad/internal/editor"
)

// editCmd represents the edit command.
var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a notepad's content in $EDITOR",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("Invalid id", err)
		}

		svc := openService()
		ctx := context.Background()

		n, err := svc.Get(ctx, id)
		if err != nil {
			fatal("Failed to read notepad", err)
		}

		edited, err := editor.Open(n.Content)
		if err != nil {
			fatal("Editor failed", err)
		}
		if edited == n.Content {
			fmt.Println("No changes.")
			return
		}

		if _, err := svc.Update(ctx, id, n.Name, edited); err != nil {
			fatal("Failed to update notepad", err)
		}
		fmt.Printf("Updated notepad %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
}
