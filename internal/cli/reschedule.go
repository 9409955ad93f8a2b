package cli

import (
	"context"
	"fmt"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/planner"
	"github.com/spf13/cobra"
)

var rescheduleCmd = &cobra.Command{
	Use:   "reschedule",
	Short: "Move overdue tasks to today",
	Long: `Move every unfinished task with a past due date to today and clear
its planned time, so the next 'assistant plan' run picks it up.`,
	RunE: runReschedule,
}

func runReschedule(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	if !planner.New(dbConn).RescheduleOverdueToToday(context.Background()) {
		return fmt.Errorf("failed to reschedule overdue tasks")
	}

	fmt.Println("✓ Overdue tasks moved to today.")
	return nil
}
