package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
	Long:  `Create, list, and manage projects for organizing tasks.`,
}

var projectNewCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Create a new project",
	Long: `Create a new project for organizing tasks.

Examples:
  assistant project new "Work"
  assistant project new "Personal" --color "#FF6B6B"`,
	Args: cobra.ExactArgs(1),
	RunE: runProjectNew,
}

var projectListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all projects",
	RunE:    runProjectList,
}

var projectDeleteCmd = &cobra.Command{
	Use:     "delete [project-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a project",
	Args:    cobra.ExactArgs(1),
	RunE:    runProjectDelete,
}

var projectColor string

func init() {
	projectNewCmd.Flags().StringVarP(&projectColor, "color", "c", "#4ECDC4", "Project color (hex)")

	projectCmd.AddCommand(projectNewCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}

func runProjectNew(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	now := time.Now()
	project := model.Project{
		ID:        uuid.New().String(),
		Name:      args[0],
		Color:     projectColor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := dbConn.CreateProject(context.Background(), project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	fmt.Printf("✓ Created project \"%s\"\n", project.Name)
	return nil
}

func runProjectList(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	projects, err := dbConn.ListProjects(context.Background())
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	fmt.Printf("\nProjects (%d)\n", len(projects))
	fmt.Println(strings.Repeat("─", 48))
	for _, p := range projects {
		shortID := p.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		fmt.Printf("  %-8s  %-24s  %s\n", shortID, p.Name, p.Color)
	}
	fmt.Println()
	return nil
}

func runProjectDelete(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	if err := dbConn.DeleteProject(context.Background(), args[0]); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	fmt.Printf("🗑️  Deleted project %s\n", args[0])
	return nil
}
