package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listJSON bool

// listCmd represents the list command.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all notepads, most recently updated first",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService()
		pads, err := svc.ListByRecency(context.Background())
		if err != nil {
			fatal("Failed to list notepads", err)
		}

		if listJSON {
			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			if err := encoder.Encode(pads); err != nil {
				fatal("Failed to encode JSON", err)
			}
			return
		}

		for _, n := range pads {
			fmt.Printf("%d\t%s\t(updated %s)\n", n.ID, n.Name, n.UpdatedAt.Format("2006-01-02 15:04"))
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
}
