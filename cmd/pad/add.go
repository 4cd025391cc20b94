package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var (
	addName    string
	addContent string
)

// addCmd represents the add command.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a notepad",
	Long:  `Create a new notepad. Content comes from --content or, when omitted, from stdin.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		content := addContent
		if content == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal("Failed to read stdin", err)
			}
			content = string(data)
		}

		svc := openService()
		n, err := svc.Create(context.Background(), addName, content)
		if err != nil {
			fatal("Failed to create notepad", err)
		}
		fmt.Printf("Created notepad %d: %s\n", n.ID, n.Name)
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addName, "name", "n", "", "Notepad name (blank for default)")
	addCmd.Flags().StringVarP(&addContent, "content", "c", "", "Notepad content (omit to read stdin)")
}
