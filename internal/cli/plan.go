package cli

import (
	"context"
	"fmt"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/config"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/db"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/planner"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan today's tasks into the working day",
	Long: `Assign start times to every task due today, inside the configured
working hours. Tasks that do not fit stay unplanned.

Examples:
  assistant plan
  assistant plan --start 10:00 --end 17:00 --buffer 10`,
	RunE: runPlan,
}

var (
	planStart  string
	planEnd    string
	planBuffer int
)

func init() {
	planCmd.Flags().StringVar(&planStart, "start", "", "Working day start (HH:MM)")
	planCmd.Flags().StringVar(&planEnd, "end", "", "Working day end (HH:MM)")
	planCmd.Flags().IntVar(&planBuffer, "buffer", -1, "Buffer minutes between tasks")
}

func runPlan(cmd *cobra.Command, args []string) error {
	dbConn, err := db.OpenDefault()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer dbConn.Close()

	cfg, err := config.Load()
	if err != nil {
		cfg = config.DefaultConfig()
	}

	hours := planner.WorkingHours{
		StartTime:     cfg.WorkStart,
		EndTime:       cfg.WorkEnd,
		BufferMinutes: cfg.BufferMinutes,
	}
	if planStart != "" {
		hours.StartTime = planStart
	}
	if planEnd != "" {
		hours.EndTime = planEnd
	}
	if planBuffer >= 0 {
		hours.BufferMinutes = planBuffer
	}

	result := planner.New(dbConn).PlanMyDay(context.Background(), hours)

	fmt.Println(result.Message)
	for _, t := range result.Scheduled {
		fmt.Printf("  %s  %-40s  (%d min)\n",
			t.PlannedTime.Format("15:04"), t.Name, t.DurationMinutes())
	}
	for _, t := range result.Unscheduled {
		fmt.Printf("  --:--  %-40s  (%d min, did not fit)\n", t.Name, t.DurationMinutes())
	}

	return nil
}
