package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// showCmd represents the show command.
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one notepad",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			fatal("Invalid id", err)
		}

		svc := openService()
		n, err := svc.Get(context.Background(), id)
		if err != nil {
			fatal("Failed to read notepad", err)
		}

		fmt.Printf("# %s (id %d)\n", n.Name, n.ID)
		fmt.Printf("Created: %s  Updated: %s\n\n", n.CreatedAt.Format("2006-01-02 15:04"), n.UpdatedAt.Format("2006-01-02 15:04"))
		fmt.Println(n.Content)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
