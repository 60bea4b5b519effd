package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/orgflow/internal/domain/resource"
)

func newPeopleCmd() *cobra.Command {
	var id int
	var circleID int
	var roleName string

	cmd := &cobra.Command{
		Use:   "people",
		Short: "List people",
		Long: `List people, optionally filtered by circle or by role name.

Examples:
  orgflow people
  orgflow people --circle 42
  orgflow people --role "Lead Link"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeople(cmd, id, circleID, roleName)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Fetch a single person by id")
	cmd.Flags().IntVar(&circleID, "circle", 0, "Filter people by circle id")
	cmd.Flags().StringVar(&roleName, "role", "", "Filter people by role name")

	return cmd
}

func runPeople(cmd *cobra.Command, id, circleID int, roleName string) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		var options any
		switch {
		case id != 0:
			options = id
		case circleID != 0:
			options = map[string]any{"circle_id": circleID}
		case roleName != "":
			options = map[string]any{"role": resource.Slugify(roleName)}
		}

		people, err := d.Resources.People(ctx, options)
		if err != nil {
			return fmt.Errorf("listing people: %w", err)
		}

		if len(people) == 0 {
			fmt.Println("No people found.")
			return nil
		}

		for _, p := range people {
			fmt.Printf("  %6d  %-30s %s\n", p.ID, p.Name, p.Email)
		}
		return nil
	})
}
