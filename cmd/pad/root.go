package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/padvault/pad"
	"github.com/padvault/pad/internal/tui"
	"github.com/padvault/pad/pkg/core"
)

var (
	vaultFlag string
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "pad",
	Short: "A local notepad vault with an interactive workspace",
	Long: `Pad keeps short notes as plain Markdown files in a vault directory.
Run without arguments to open the interactive workspace; use the
subcommands for scripted access.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
	Run: func(cmd *cobra.Command, args []string) {
		svc := openService(pad.WithAutoInit(true))
		if err := tui.Run(svc); err != nil {
			fatal("Workspace failed", err)
		}
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&vaultFlag, "vault", "", "Vault directory (default $PAD_VAULT, then ~/pads)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}

// vaultPath resolves the vault directory: the --vault flag, then $PAD_VAULT,
// then an enclosing vault root, then ~/pads.
func vaultPath() string {
	if vaultFlag != "" {
		return vaultFlag
	}
	if env := os.Getenv("PAD_VAULT"); env != "" {
		return env
	}
	if cwd, err := os.Getwd(); err == nil {
		if root, err := pad.FindVaultRoot(cwd); err == nil {
			return root
		}
	}
	return "~/pads"
}

// openService builds the service for the resolved vault.
func openService(opts ...pad.Option) *core.Service {
	opts = append([]pad.Option{pad.WithLogger(slog.Default())}, opts...)
	svc, err := pad.New(vaultPath(), opts...)
	if err != nil {
		fatal("Failed to open vault", err)
	}
	return svc
}
