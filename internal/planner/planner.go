// Package planner assigns wall-clock time slots to due-today tasks inside
// a bounded working-day window.
package planner

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/logger"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/timeutil"
)

// TaskGateway is the task-store surface the planner consumes.
type TaskGateway interface {
	GetTasksDueToday(ctx context.Context) ([]model.Task, error)
	GetOverdueTasks(ctx context.Context) ([]model.Task, error)
	UpdateTask(ctx context.Context, t model.Task) error
}

// WorkingHours configures the planning window for a single day.
type WorkingHours struct {
	StartTime     string `json:"startTime"` // "HH:MM", 24-hour
	EndTime       string `json:"endTime"`   // "HH:MM", 24-hour
	BufferMinutes int    `json:"bufferMinutes,omitempty"`
}

// PlanResult is the outcome of a planning run. Scheduled tasks carry a
// freshly assigned PlannedTime; unscheduled tasks did not fit in the
// remaining window.
type PlanResult struct {
	Scheduled   []model.Task `json:"scheduled"`
	Unscheduled []model.Task `json:"unscheduled"`
	Message     string       `json:"message"`
}

// MsgNoTasks is returned when there is nothing to plan.
const MsgNoTasks = "No tasks to plan for today."

// Planner computes day plans against a task gateway.
type Planner struct {
	tasks TaskGateway
	now   func() time.Time
}

// New creates a planner backed by the given task gateway.
func New(tasks TaskGateway) *Planner {
	return &Planner{tasks: tasks, now: time.Now}
}

// NewWithClock creates a planner with an injected clock.
func NewWithClock(tasks TaskGateway, now func() time.Time) *Planner {
	return &Planner{tasks: tasks, now: now}
}

// interval is an occupied slice of the planning window.
type interval struct {
	start time.Time
	end   time.Time
}

// PlanMyDay fetches all non-done tasks due today and greedily assigns them
// start times inside the configured working window, honoring priority
// order, durations and the buffer gap. Tasks whose PlannedTime is still in
// the future keep their slot; those slots are reserved and skipped by the
// cursor walk. Tasks whose PlannedTime has already elapsed are replanned.
//
// PlanMyDay never returns an error: config and gateway failures degrade to
// an empty result with an explanatory message.
func (p *Planner) PlanMyDay(ctx context.Context, cfg WorkingHours) PlanResult {
	now := p.now()

	windowStart, windowEnd, err := p.window(now, cfg)
	if err != nil {
		logger.Warn("Invalid working-hours config", logger.F("error", err))
		return PlanResult{Scheduled: []model.Task{}, Unscheduled: []model.Task{}, Message: err.Error()}
	}

	tasks, err := p.tasks.GetTasksDueToday(ctx)
	if err != nil {
		logger.Error("Failed to fetch tasks due today", logger.F("error", err))
		return PlanResult{
			Scheduled:   []model.Task{},
			Unscheduled: []model.Task{},
			Message:     fmt.Sprintf("Could not load today's tasks: %v.", err),
		}
	}

	pool, reserved := partition(tasks, now)
	if len(pool) == 0 {
		return PlanResult{Scheduled: []model.Task{}, Unscheduled: []model.Task{}, Message: MsgNoTasks}
	}

	sortSchedulable(pool)

	// Never schedule in the past: the cursor starts at the later of the
	// window start and the next whole minute.
	cursor := windowStart
	if nowNext := timeutil.NextMinute(now); nowNext.After(cursor) {
		cursor = nowNext
	}

	buffer := time.Duration(cfg.BufferMinutes) * time.Minute
	scheduled := make([]model.Task, 0, len(pool))
	unscheduled := make([]model.Task, 0)

	for _, task := range pool {
		duration := time.Duration(task.DurationMinutes()) * time.Minute

		// Skip past reserved slots held by still-future planned tasks.
		candidate := advancePastReserved(cursor, duration, reserved, buffer)

		if candidate.Add(duration).After(windowEnd) {
			// Does not fit. Keep scanning: a shorter task later in the
			// order may still fit at the same cursor.
			unscheduled = append(unscheduled, task)
			continue
		}

		start := candidate
		task.PlannedTime = &start
		scheduled = append(scheduled, task)
		cursor = candidate.Add(duration).Add(buffer)
	}

	// Best-effort persistence: a failed update is logged but the task
	// stays in the returned schedule, which reflects intended assignment.
	for _, task := range scheduled {
		if err := p.tasks.UpdateTask(ctx, task); err != nil {
			logger.Error("Failed to persist planned time",
				logger.F("task", task.ID), logger.F("error", err))
		}
	}

	message := fmt.Sprintf("Scheduled %d of %d tasks for today.", len(scheduled), len(pool))
	if len(unscheduled) > 0 {
		message += fmt.Sprintf(" %d did not fit in the remaining window.", len(unscheduled))
	}

	logger.Info("Day plan computed",
		logger.F("scheduled", len(scheduled)),
		logger.F("unscheduled", len(unscheduled)),
		logger.F("reserved", len(reserved)))

	return PlanResult{Scheduled: scheduled, Unscheduled: unscheduled, Message: message}
}

// window resolves the working-hours config into today's planning window.
func (p *Planner) window(now time.Time, cfg WorkingHours) (time.Time, time.Time, error) {
	start, err := timeutil.ClockOn(now, cfg.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time: %w", err)
	}
	end, err := timeutil.ClockOn(now, cfg.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time: %w", err)
	}
	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"working hours start %s must be before end %s", cfg.StartTime, cfg.EndTime)
	}
	if cfg.BufferMinutes < 0 {
		return time.Time{}, time.Time{}, fmt.Errorf(
			"buffer minutes must not be negative, got %d", cfg.BufferMinutes)
	}
	return start, end, nil
}

// partition splits due-today tasks into the schedulable pool and the
// reserved intervals of tasks whose planned slot is still ahead. A planned
// time that has already elapsed counts for nothing; the task rejoins the
// pool.
func partition(tasks []model.Task, now time.Time) ([]model.Task, []interval) {
	pool := make([]model.Task, 0, len(tasks))
	reserved := make([]interval, 0)

	for _, t := range tasks {
		if t.IsDone() {
			continue
		}
		if t.PlannedTime != nil && t.PlannedTime.After(now) {
			duration := time.Duration(t.DurationMinutes()) * time.Minute
			reserved = append(reserved, interval{
				start: *t.PlannedTime,
				end:   t.PlannedTime.Add(duration),
			})
			continue
		}
		pool = append(pool, t)
	}

	sort.Slice(reserved, func(i, j int) bool {
		return reserved[i].start.Before(reserved[j].start)
	})

	return pool, reserved
}

// sortSchedulable orders the pool by priority weight, then tasks with an
// explicit due date before tasks without, then due date ascending. The
// sort is stable so creation order breaks remaining ties and repeated
// runs produce identical plans.
func sortSchedulable(pool []model.Task) {
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := pool[i], pool[j]
		if wa, wb := a.Priority.Weight(), b.Priority.Weight(); wa != wb {
			return wa < wb
		}
		switch {
		case a.DueDate != nil && b.DueDate == nil:
			return true
		case a.DueDate == nil && b.DueDate != nil:
			return false
		case a.DueDate != nil && b.DueDate != nil && !a.DueDate.Equal(*b.DueDate):
			return a.DueDate.Before(*b.DueDate)
		}
		return false
	})
}

// advancePastReserved moves the candidate start forward until a task of
// the given duration no longer collides with any reserved interval.
// Reserved intervals are sorted, so one forward pass suffices.
func advancePastReserved(candidate time.Time, duration time.Duration, reserved []interval, buffer time.Duration) time.Time {
	for _, r := range reserved {
		if candidate.Before(r.end) && candidate.Add(duration).After(r.start) {
			candidate = r.end.Add(buffer)
		}
	}
	return candidate
}
