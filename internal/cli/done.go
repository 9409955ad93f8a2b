package cli

import (
	"context"
	"fmt"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done [task-id]",
	Short: "Mark a task as done",
	Long: `Mark a task as completed.

Examples:
  assistant done abc123
  assistant done abc123 --undo`,
	Args: cobra.ExactArgs(1),
	RunE: runDone,
}

var doneUndo bool

func init() {
	doneCmd.Flags().BoolVar(&doneUndo, "undo", false, "Move task back to planning")
}

func runDone(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	ctx := context.Background()
	task, err := findTask(ctx, dbConn, args[0])
	if err != nil {
		return err
	}

	status := model.StatusDone
	if doneUndo {
		status = model.StatusPlanning
	}

	if err := dbConn.SetTaskStatus(ctx, task.ID, status); err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}

	if status == model.StatusDone {
		fmt.Printf("✓ Completed: \"%s\"\n", task.Name)
	} else {
		fmt.Printf("○ Reopened: \"%s\"\n", task.Name)
	}

	return nil
}

// findTask resolves a full or prefix task ID
func findTask(ctx context.Context, dbConn *db.DB, taskID string) (model.Task, error) {
	var task model.Task
	var err error
	if len(taskID) < 36 {
		task, err = dbConn.GetTaskPartial(ctx, taskID)
	} else {
		task, err = dbConn.GetTask(ctx, taskID)
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("task not found: %s", taskID)
	}
	return task, nil
}
