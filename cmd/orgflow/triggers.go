package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTriggersCmd() *cobra.Command {
	var circleID int
	var personID int

	cmd := &cobra.Command{
		Use:   "triggers",
		Short: "List triggers",
		Long: `List captured triggers, optionally filtered by circle or person.

Examples:
  orgflow triggers
  orgflow triggers --circle 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTriggers(cmd, circleID, personID)
		},
	}

	cmd.Flags().IntVar(&circleID, "circle", 0, "Filter triggers by circle id")
	cmd.Flags().IntVar(&personID, "person", 0, "Filter triggers by person id")

	return cmd
}

func runTriggers(cmd *cobra.Command, circleID, personID int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		var options any
		switch {
		case circleID != 0:
			options = map[string]any{"circle_id": circleID}
		case personID != 0:
			options = map[string]any{"person_id": personID}
		}

		triggers, err := d.Resources.Triggers(ctx, options)
		if err != nil {
			return fmt.Errorf("listing triggers: %w", err)
		}

		if len(triggers) == 0 {
			fmt.Println("No triggers found.")
			return nil
		}

		for _, t := range triggers {
			fmt.Printf("  %6d  %s\n", t.ID, t.Description)
		}
		return nil
	})
}
