package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/orgflow/internal/infrastructure/config"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Long: `Write a starter config file with the endpoint and cache settings.

The file lands in the XDG config directory unless --config is given.
Set the API key in the file or via the ORGFLOW_API_KEY env var.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(globalConfigPath); err != nil {
				return err
			}
			path := globalConfigPath
			if path == "" {
				path = config.DefaultPath()
			}
			fmt.Printf("Wrote config to %s\n", path)
			return nil
		},
	}
}
