package planner

import (
	"context"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/logger"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/timeutil"
)

// RescheduleOverdueToToday moves every non-done task with a past due date
// to today and clears its planned time so the next planning run will
// reconsider it. Individual persistence failures are logged and skipped.
// The return value is false only when the initial fetch fails.
func (p *Planner) RescheduleOverdueToToday(ctx context.Context) bool {
	overdue, err := p.tasks.GetOverdueTasks(ctx)
	if err != nil {
		logger.Error("Failed to fetch overdue tasks", logger.F("error", err))
		return false
	}

	if len(overdue) == 0 {
		logger.Debug("No overdue tasks to reschedule")
		return true
	}

	today := timeutil.StartOfDay(p.now())
	moved := 0

	for _, task := range overdue {
		due := today
		task.DueDate = &due
		task.PlannedTime = nil
		task.UpdatedAt = time.Now()

		if err := p.tasks.UpdateTask(ctx, task); err != nil {
			logger.Warn("Failed to reschedule overdue task",
				logger.F("task", task.ID), logger.F("error", err))
			continue
		}
		moved++
	}

	logger.Info("Rescheduled overdue tasks to today",
		logger.F("moved", moved), logger.F("total", len(overdue)))

	return true
}
