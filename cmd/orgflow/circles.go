package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCirclesCmd() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "circles",
		Short: "List circles",
		Long: `List circles, or fetch a single circle by id.

Examples:
  orgflow circles
  orgflow circles --id 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCircles(cmd, id)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Fetch a single circle by id")

	return cmd
}

func runCircles(cmd *cobra.Command, id int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		var options any
		if id != 0 {
			options = id
		}

		circles, err := d.Resources.Circles(ctx, options)
		if err != nil {
			return fmt.Errorf("listing circles: %w", err)
		}

		if len(circles) == 0 {
			fmt.Println("No circles found.")
			return nil
		}

		for _, c := range circles {
			fmt.Printf("  %6d  %-30s %s\n", c.ID, c.Name, c.ShortName)
		}
		return nil
	})
}
