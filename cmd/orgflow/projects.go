package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/orgflow/internal/domain/entities"
)

func newProjectsCmd() *cobra.Command {
	var id int
	var circleID int
	var personID int

	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List and manage projects",
		Long: `List projects, optionally filtered by circle or person.

Examples:
  orgflow projects
  orgflow projects --circle 42
  orgflow projects create --description "Ship onboarding flow"
  orgflow projects update 17 --status Done
  orgflow projects delete 17`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsList(cmd, id, circleID, personID)
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "Fetch a single project by id")
	cmd.Flags().IntVar(&circleID, "circle", 0, "Filter projects by circle id")
	cmd.Flags().IntVar(&personID, "person", 0, "Filter projects by person id")

	cmd.AddCommand(
		newProjectsCreateCmd(),
		newProjectsUpdateCmd(),
		newProjectsDeleteCmd(),
	)

	return cmd
}

func runProjectsList(cmd *cobra.Command, id, circleID, personID int) error {
	ctx := cmd.Context()

	return withDeps(func(d *Deps) error {
		var options any
		switch {
		case id != 0:
			options = id
		case circleID != 0:
			options = map[string]any{"circle_id": circleID}
		case personID != 0:
			options = map[string]any{"person_id": personID}
		}

		projects, err := d.Resources.Projects(ctx, options)
		if err != nil {
			return fmt.Errorf("listing projects: %w", err)
		}

		if len(projects) == 0 {
			fmt.Println("No projects found.")
			return nil
		}

		for _, p := range projects {
			fmt.Printf("  %6d  %-10s %s\n", p.ID, p.Status, p.Description)
		}
		return nil
	})
}

func newProjectsCreateCmd() *cobra.Command {
	var description string
	var status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(func(d *Deps) error {
				options := map[string]any{"description": description}
				if status != "" {
					options["status"] = status
				}
				created, err := d.Resources.Create(ctx, entities.KindProject, options)
				if err != nil {
					return fmt.Errorf("creating project: %w", err)
				}
				fmt.Printf("Created project %d\n", created.Identifier())
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Project description (required)")
	cmd.Flags().StringVar(&status, "status", "", "Initial status")
	cobra.CheckErr(cmd.MarkFlagRequired("description"))

	return cmd
}

func newProjectsUpdateCmd() *cobra.Command {
	var description string
	var status string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(func(d *Deps) error {
				options := map[string]any{"id": args[0]}
				if description != "" {
					options["description"] = description
				}
				if status != "" {
					options["status"] = status
				}
				ok, err := d.Resources.Update(ctx, entities.KindProject, 0, options)
				if err != nil {
					return fmt.Errorf("updating project: %w", err)
				}
				if ok {
					fmt.Println("Updated.")
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "New description")
	cmd.Flags().StringVar(&status, "status", "", "New status")

	return cmd
}

func newProjectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(func(d *Deps) error {
				ok, err := d.Resources.Delete(ctx, entities.KindProject, args[0])
				if err != nil {
					return fmt.Errorf("deleting project: %w", err)
				}
				if ok {
					fmt.Println("Deleted.")
				}
				return nil
			})
		},
	}
}
