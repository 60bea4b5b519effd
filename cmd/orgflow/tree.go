package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/orgflow/internal/domain/services"
)

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the circle hierarchy",
		Long: `Fetch all circles and roles and render the reconstructed circle tree.

The nesting is rebuilt from anchor roles; circles reachable from no anchor
role are not shown.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(func(d *Deps) error {
				root, err := d.Hierarchy.Build(ctx, nil, nil)
				if err != nil {
					return fmt.Errorf("building hierarchy: %w", err)
				}
				printNode(root, "")
				return nil
			})
		},
	}
}

func printNode(node *services.CircleNode, prefix string) {
	fmt.Printf("%s%s (%d)\n", prefix, node.Circle.Name, node.Circle.ID)
	for _, child := range node.Children {
		printNode(child, prefix+"  ")
	}
}
