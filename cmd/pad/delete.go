package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var deleteYes bool

// deleteCmd represents the delete command.
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a notepad",
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

		if !deleteYes {
			fmt.Printf("Delete notepad %d (%s)? [y/N] ", n.ID, n.Name)
			reader := bufio.NewReader(os.Stdin)
			answer, _ := reader.ReadString('\n')
			if !strings.EqualFold(strings.TrimSpace(answer), "y") {
				fmt.Println("Aborted.")
				return
			}
		}

		if err := svc.Delete(ctx, id); err != nil {
			fatal("Failed to delete notepad", err)
		}
		fmt.Printf("Deleted notepad %d\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
