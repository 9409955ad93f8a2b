package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/timeutil"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Add a new task",
	Long: `Add a new task to a project.

Examples:
  assistant add "Buy groceries"
  assistant add "Quarterly report" -p high -d 2026-09-01 -m 90
  assistant add "Feature work" --project work -p medium`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addProject  string
	addPriority string
	addDue      string
	addDuration int
)

func init() {
	addCmd.Flags().StringVarP(&addProject, "project", "P", "inbox", "Project to add task to")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "low", "Priority (high, medium, low)")
	addCmd.Flags().StringVarP(&addDue, "due", "d", "", "Due date (e.g., '2026-09-01')")
	addCmd.Flags().IntVarP(&addDuration, "duration", "m", 0, "Estimated duration in minutes")
}

func runAdd(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	name := strings.Join(args, " ")

	task := model.NewTask(uuid.New().String(), addProject, name)

	priority := model.Priority(addPriority)
	if priority.Valid() {
		task.Priority = priority
	}

	if addDue != "" {
		due, err := timeutil.NormalizeDate(addDue)
		if err != nil {
			return fmt.Errorf("invalid due date: %w", err)
		}
		day := timeutil.StartOfDay(due)
		task.DueDate = &day
	}

	if addDuration > 0 {
		task.Duration = &addDuration
	}

	ctx := context.Background()
	if err := dbConn.CreateTask(ctx, task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	// Get project name for display
	projectName := addProject
	if project, err := dbConn.GetProject(ctx, addProject); err == nil && project.Name != "" {
		projectName = project.Name
	}

	fmt.Printf("✓ Added to [%s]: \"%s\" (%s)\n", projectName, name, task.Priority)
	return nil
}
