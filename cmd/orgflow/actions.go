package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newActionsCmd() *cobra.Command {
	var circleID int
	var personID int

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List actions",
		Long: `List captured actions, optionally filtered by circle or person.

Examples:
  orgflow actions
  orgflow actions --person 9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActions(cmd, circleID, personID)
		},
	}

	cmd.Flags().IntVar(&circleID, "circle", 0, "Filter actions by circle id")
	cmd.Flags().IntVar(&personID, "person", 0, "Filter actions by person id")

	return cmd
}

func runActions(cmd *cobra.Command, circleID, personID int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		var options any
		switch {
		case circleID != 0:
			options = map[string]any{"circle_id": circleID}
		case personID != 0:
			options = map[string]any{"person_id": personID}
		}

		actions, err := d.Resources.Actions(ctx, options)
		if err != nil {
			return fmt.Errorf("listing actions: %w", err)
		}

		if len(actions) == 0 {
			fmt.Println("No actions found.")
			return nil
		}

		for _, a := range actions {
			fmt.Printf("  %6d  %s\n", a.ID, a.Description)
		}
		return nil
	})
}
