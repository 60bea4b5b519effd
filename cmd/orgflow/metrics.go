package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMetricsCmd() *cobra.Command {
	var id int
	var circleID int
	var roleID int

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "List metrics",
		Long: `List metrics, optionally filtered by circle or role.

Examples:
  orgflow metrics
  orgflow metrics --circle 42
  orgflow metrics --role 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMetrics(cmd, id, circleID, roleID)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Fetch a single metric by id")
	cmd.Flags().IntVar(&circleID, "circle", 0, "Filter metrics by circle id")
	cmd.Flags().IntVar(&roleID, "role", 0, "Filter metrics by role id")

	return cmd
}

func runMetrics(cmd *cobra.Command, id, circleID, roleID int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		var options any
		switch {
		case id != 0:
			options = id
		case circleID != 0:
			options = map[string]any{"circle_id": circleID}
		case roleID != 0:
			options = map[string]any{"role_id": roleID}
		}

		metrics, err := d.Resources.Metrics(ctx, options)
		if err != nil {
			return fmt.Errorf("listing metrics: %w", err)
		}

		if len(metrics) == 0 {
			fmt.Println("No metrics found.")
			return nil
		}

		for _, m := range metrics {
			fmt.Printf("  %6d  %-10s %s\n", m.ID, m.Frequency, m.Description)
		}
		return nil
	})
}
