// Package main provides the entry point for the orgflow CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	version          = "0.1.0-dev"
	globalConfigPath string
	globalVerbose    bool
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "orgflow",
		Short:   "A typed client for the circle-based org-structure service",
		Version: version,
	}

	rootCmd.PersistentFlags().StringVar(&globalConfigPath, "config", "", "Config file path (default: XDG config dir)")
	rootCmd.PersistentFlags().BoolVar(&globalVerbose, "verbose", false, "Enable debug logging")

	rootCmd.AddCommand(
		newInitCmd(),
		newCirclesCmd(),
		newRolesCmd(),
		newPeopleCmd(),
		newProjectsCmd(),
		newMetricsCmd(),
		newChecklistsCmd(),
		newActionsCmd(),
		newTriggersCmd(),
		newTreeCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
