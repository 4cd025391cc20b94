package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"

	"github.com/padvault/pad"
	"github.com/padvault/pad/pkg/core"
)

// statusCmd represents the status command.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a state snapshot of the vault",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		store, err := pad.Init(vaultPath(), pad.WithLogger(slog.Default()))
		if err != nil {
			fatal("Failed to open vault", err)
		}
		svc := core.NewService(store)

		pads, err := svc.List(context.Background())
		if err != nil {
			fatal("Failed to list notepads", err)
		}

		snapshot := map[string]any{
			"records": len(pads),
		}
		if intro, ok := store.(introspection.Introspectable); ok {
			snapshot["store"] = intro.State()
		}
		if comp, ok := store.(introspection.Component); ok {
			snapshot["adapter"] = comp.ComponentType()
		}
		snapshot["service"] = svc.State()

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(snapshot); err != nil {
			fatal("Failed to encode snapshot", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
