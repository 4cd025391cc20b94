package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/padvault/pad"
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a pad vault",
	Long:  `Create the vault directory layout (pads/ and .pad/) at the resolved vault path.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := vaultPath()
		if _, err := pad.Init(path, pad.WithAutoInit(true), pad.WithLogger(slog.Default())); err != nil {
			fatal("Failed to initialize vault", err)
		}
		fmt.Println("Initialized pad vault in", path)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
