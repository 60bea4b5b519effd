package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newChecklistsCmd() *cobra.Command {
	var id int
	var circleID int
	var roleID int

	cmd := &cobra.Command{
		Use:   "checklists",
		Short: "List checklist items",
		Long: `List checklist items, optionally filtered by circle or role.

Examples:
  orgflow checklists
  orgflow checklists --circle 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChecklists(cmd, id, circleID, roleID)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Fetch a single checklist item by id")
	cmd.Flags().IntVar(&circleID, "circle", 0, "Filter checklist items by circle id")
	cmd.Flags().IntVar(&roleID, "role", 0, "Filter checklist items by role id")

	return cmd
}

func runChecklists(cmd *cobra.Command, id, circleID, roleID int) error {
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

		items, err := d.Resources.ChecklistItems(ctx, options)
		if err != nil {
			return fmt.Errorf("listing checklist items: %w", err)
		}

		if len(items) == 0 {
			fmt.Println("No checklist items found.")
			return nil
		}

		for _, item := range items {
			fmt.Printf("  %6d  %-10s %s\n", item.ID, item.Frequency, item.Description)
		}
		return nil
	})
}
