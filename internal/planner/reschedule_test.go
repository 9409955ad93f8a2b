package planner

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRescheduleOverdue_MovesTasksToToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	yesterday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	stalePlan := time.Date(2026, 8, 31, 14, 0, 0, 0, time.Local)

	task := model.Task{ID: "t1", Name: "late", DueDate: &yesterday, PlannedTime: &stalePlan,
		Priority: model.PriorityMedium, Status: model.StatusPlanning}

	gw := &mockGateway{overdue: []model.Task{task}}
	p := NewWithClock(gw, fixedClock(now))

	ok := p.RescheduleOverdueToToday(context.Background())

	assert.True(t, ok)
	require.Len(t, gw.updated, 1)

	moved := gw.updated[0]
	require.NotNil(t, moved.DueDate)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local), *moved.DueDate)
	assert.Nil(t, moved.PlannedTime, "planned time must be cleared for replanning")
}

func TestRescheduleOverdue_NothingOverdue(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	gw := &mockGateway{}
	p := NewWithClock(gw, fixedClock(now))

	assert.True(t, p.RescheduleOverdueToToday(context.Background()))
	assert.Empty(t, gw.updated)
}

func TestRescheduleOverdue_FetchFailure(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	gw := &mockGateway{overdueErr: errors.New("db locked")}
	p := NewWithClock(gw, fixedClock(now))

	assert.False(t, p.RescheduleOverdueToToday(context.Background()))
}

func TestRescheduleOverdue_UpdateFailuresAreNotFatal(t *testing.T) {
	now := time.Date(2026, 9, 1, 9, 0, 0, 0, time.Local)
	yesterday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	gw := &mockGateway{
		overdue: []model.Task{
			{ID: "t1", DueDate: &yesterday, Status: model.StatusPlanning},
			{ID: "t2", DueDate: &yesterday, Status: model.StatusPlanning},
		},
		updateErr: errors.New("write failed"),
	}
	p := NewWithClock(gw, fixedClock(now))

	// Individual persistence failures are logged and skipped.
	assert.True(t, p.RescheduleOverdueToToday(context.Background()))
}
