package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/padvault/pad"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of pad",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pad version %s\n", pad.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
