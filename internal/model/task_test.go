package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPriorityWeightOrdering(t *testing.T) {
	assert.Less(t, PriorityHigh.Weight(), PriorityMedium.Weight())
	assert.Less(t, PriorityMedium.Weight(), PriorityLow.Weight())
	assert.Greater(t, Priority("bogus").Weight(), PriorityLow.Weight())
}

func TestDurationMinutesDefault(t *testing.T) {
	task := NewTask("id", "inbox", "t")
	assert.Equal(t, DefaultDurationMinutes, task.DurationMinutes())

	d := 90
	task.Duration = &d
	assert.Equal(t, 90, task.DurationMinutes())

	zero := 0
	task.Duration = &zero
	assert.Equal(t, DefaultDurationMinutes, task.DurationMinutes())
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.Local)
	yesterday := time.Date(2026, 8, 31, 0, 0, 0, 0, time.Local)
	today := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)

	task := NewTask("id", "inbox", "t")
	assert.False(t, task.IsOverdue(now), "no due date is never overdue")

	task.DueDate = &yesterday
	assert.True(t, task.IsOverdue(now))

	task.DueDate = &today
	assert.False(t, task.IsOverdue(now), "due today is not overdue")

	task.DueDate = &yesterday
	task.Status = StatusDone
	assert.False(t, task.IsOverdue(now), "done tasks are never overdue")
}

func TestIsDueOn(t *testing.T) {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	task := NewTask("id", "inbox", "t")
	assert.False(t, task.IsDueOn(day))

	task.DueDate = &day
	assert.True(t, task.IsDueOn(time.Date(2026, 9, 1, 18, 30, 0, 0, time.Local)))
	assert.False(t, task.IsDueOn(day.AddDate(0, 0, 1)))
}
