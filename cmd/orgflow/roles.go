package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRolesCmd() *cobra.Command {
	var id int
	var circleID int

	cmd := &cobra.Command{
		Use:   "roles",
		Short: "List roles",
		Long: `List roles, optionally filtered to one circle.

Examples:
  orgflow roles
  orgflow roles --circle 42
  orgflow roles --id 7`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoles(cmd, id, circleID)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Fetch a single role by id")
	cmd.Flags().IntVar(&circleID, "circle", 0, "Filter roles by circle id")

	return cmd
}

func runRoles(cmd *cobra.Command, id, circleID int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		var options any
		switch {
		case id != 0:
			options = id
		case circleID != 0:
			options = map[string]any{"circle_id": circleID}
		}

		roles, err := d.Resources.Roles(ctx, options)
		if err != nil {
			return fmt.Errorf("listing roles: %w", err)
		}

		if len(roles) == 0 {
			fmt.Println("No roles found.")
			return nil
		}

		for _, r := range roles {
			marker := " "
			if r.IsAnchor() {
				marker = "*"
			}
			fmt.Printf("  %6d %s %-30s %s\n", r.ID, marker, r.Name, r.Purpose)
		}
		return nil
	})
}
