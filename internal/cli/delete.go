package cli

import (
	"context"
	"fmt"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [task-id]",
	Aliases: []string{"rm"},
	Short:   "Delete a task",
	Long: `Delete a task by its ID. Any reminders attached to the task are
deleted with it.

Examples:
  assistant delete abc123
  assistant rm abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if !deleteYes {
		fmt.Printf("About to delete: \"%s\" (ID: %s)\n", task.Name, task.ID)
		fmt.Print("Are you sure? [y/N]: ")
		var confirm string
		fmt.Scanln(&confirm)
		if confirm != "y" && confirm != "Y" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := dbConn.DeleteTask(ctx, task.ID); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("🗑️  Deleted: \"%s\"\n", task.Name)
	return nil
}
