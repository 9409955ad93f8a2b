package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long: `List tasks, optionally filtered by project.

Examples:
  assistant list
  assistant list --project work
  assistant list --done`,
	RunE: runList,
}

var (
	listProject     string
	listIncludeDone bool
)

func init() {
	listCmd.Flags().StringVarP(&listProject, "project", "P", "", "Filter by project")
	listCmd.Flags().BoolVar(&listIncludeDone, "done", false, "Include completed tasks")
}

func runList(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = dbConn.Close()
	}()

	ctx := context.Background()
	tasks, err := dbConn.ListTasks(ctx, listProject, listIncludeDone)
	if err != nil {
		return fmt.Errorf("failed to list tasks: %w", err)
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found. Add one with: assistant add \"Your task\"")
		return nil
	}

	if listProject == "" {
		printTasksByProject(ctx, dbConn, tasks)
	} else {
		name := listProject
		if project, err := dbConn.GetProject(ctx, listProject); err == nil && project.Name != "" {
			name = project.Name
		}
		printTasks(name, tasks)
	}

	return nil
}

func printTasks(projectName string, tasks []model.Task) {
	pending := 0
	for _, t := range tasks {
		if !t.IsDone() {
			pending++
		}
	}

	fmt.Printf("\n📁 %s (%d pending)\n", projectName, pending)
	fmt.Println(strings.Repeat("─", 72))

	for _, t := range tasks {
		printTask(t)
	}
	fmt.Println()
}

func printTasksByProject(ctx context.Context, dbConn *db.DB, tasks []model.Task) {
	byProject := make(map[string][]model.Task)
	for _, t := range tasks {
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}

	for projectID, projectTasks := range byProject {
		name := projectID
		if project, err := dbConn.GetProject(ctx, projectID); err == nil && project.Name != "" {
			name = project.Name
		}
		printTasks(name, projectTasks)
	}
}

func printTask(t model.Task) {
	icon := "[ ]"
	switch t.Status {
	case model.StatusDone:
		icon = "[x]"
	case model.StatusDoing:
		icon = "[>]"
	}

	priority := "  " + string(t.Priority)
	if t.Priority == model.PriorityHigh {
		priority = "▲ high"
	}

	due := ""
	if t.DueDate != nil {
		due = t.DueDate.Format("Jan 2")
	}

	planned := ""
	if t.PlannedTime != nil {
		planned = t.PlannedTime.Format("15:04")
	}

	name := t.Name
	if len(name) > 40 {
		name = name[:37] + "..."
	}

	shortID := t.ID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}

	fmt.Printf("  %s  %-8s  %-40s  %-7s  %-6s  %s\n", icon, shortID, name, due, planned, priority)
}
