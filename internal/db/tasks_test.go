package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/timeutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "tasks.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestTaskRoundTrip(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	due := timeutil.StartOfDay(time.Now())
	planned := time.Date(2026, 9, 1, 10, 30, 0, 0, time.Local)
	duration := 45

	task := model.NewTask("task-1", "inbox", "Write report")
	task.Description = "quarterly numbers"
	task.DueDate = &due
	task.PlannedTime = &planned
	task.Duration = &duration
	task.Priority = model.PriorityHigh
	task.Status = model.StatusDoing

	require.NoError(t, database.CreateTask(ctx, task))

	got, err := database.GetTask(ctx, "task-1")
	require.NoError(t, err)

	assert.Equal(t, task.Name, got.Name)
	assert.Equal(t, task.Description, got.Description)
	assert.Equal(t, model.PriorityHigh, got.Priority)
	assert.Equal(t, model.StatusDoing, got.Status)
	require.NotNil(t, got.DueDate)
	assert.True(t, timeutil.SameDay(due, *got.DueDate))
	require.NotNil(t, got.PlannedTime)
	assert.True(t, planned.Equal(*got.PlannedTime))
	require.NotNil(t, got.Duration)
	assert.Equal(t, duration, *got.Duration)
}

func TestGetTaskPartial(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.CreateTask(ctx, model.NewTask("abcdef12-3456", "inbox", "one")))

	got, err := database.GetTaskPartial(ctx, "abcdef12")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Name)

	_, err = database.GetTaskPartial(ctx, "zzz")
	assert.Error(t, err)
}

func TestGetTasksDueToday(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	today := timeutil.StartOfDay(time.Now())
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	dueToday := model.NewTask("today", "inbox", "due today")
	dueToday.DueDate = &today

	doneToday := model.NewTask("done", "inbox", "finished already")
	doneToday.DueDate = &today
	doneToday.Status = model.StatusDone

	dueTomorrow := model.NewTask("tomorrow", "inbox", "due tomorrow")
	dueTomorrow.DueDate = &tomorrow

	overdue := model.NewTask("late", "inbox", "overdue")
	overdue.DueDate = &yesterday

	noDate := model.NewTask("undated", "inbox", "no due date")

	for _, task := range []model.Task{dueToday, doneToday, dueTomorrow, overdue, noDate} {
		require.NoError(t, database.CreateTask(ctx, task))
	}

	got, err := database.GetTasksDueToday(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "today", got[0].ID)

	late, err := database.GetOverdueTasks(ctx)
	require.NoError(t, err)
	require.Len(t, late, 1)
	assert.Equal(t, "late", late[0].ID)
}

func TestUpdateTask(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	task := model.NewTask("task-1", "inbox", "before")
	require.NoError(t, database.CreateTask(ctx, task))

	planned := time.Date(2026, 9, 1, 11, 0, 0, 0, time.Local)
	task.Name = "after"
	task.PlannedTime = &planned
	require.NoError(t, database.UpdateTask(ctx, task))

	got, err := database.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	require.NotNil(t, got.PlannedTime)
	assert.True(t, planned.Equal(*got.PlannedTime))

	// Clearing the planned time persists as NULL.
	task.PlannedTime = nil
	require.NoError(t, database.UpdateTask(ctx, task))
	got, err = database.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Nil(t, got.PlannedTime)

	missing := model.NewTask("ghost", "inbox", "nope")
	assert.Error(t, database.UpdateTask(ctx, missing))
}

func TestDeleteTaskCascadesNotifications(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.CreateTask(ctx, model.NewTask("task-1", "inbox", "with reminder")))
	n := model.NewNotification("n-1", "task-1", time.Now().Add(time.Hour))
	require.NoError(t, database.CreateNotification(ctx, n))

	require.NoError(t, database.DeleteTask(ctx, "task-1"))

	remaining, err := database.GetNotificationsByTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Empty(t, remaining)
}

func TestNotificationQueries(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, database.CreateTask(ctx, model.NewTask("task-1", "inbox", "t")))

	past := model.NewNotification("past", "task-1", time.Now().Add(-time.Hour))
	soon := model.NewNotification("soon", "task-1", time.Now().Add(time.Hour))
	later := model.NewNotification("later", "task-1", time.Now().Add(2*time.Hour))

	for _, n := range []model.Notification{past, soon, later} {
		require.NoError(t, database.CreateNotification(ctx, n))
	}

	upcoming, err := database.GetUpcomingNotifications(ctx)
	require.NoError(t, err)
	require.Len(t, upcoming, 2)
	assert.Equal(t, "soon", upcoming[0].ID)
	assert.Equal(t, "later", upcoming[1].ID)

	byTask, err := database.GetNotificationsByTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Len(t, byTask, 3)

	soon.Time = time.Now().Add(3 * time.Hour)
	soon.Message = "moved"
	require.NoError(t, database.UpdateNotification(ctx, soon))

	got, err := database.GetNotification(ctx, "soon")
	require.NoError(t, err)
	assert.Equal(t, "moved", got.Message)

	require.NoError(t, database.DeleteNotification(ctx, "past"))
	byTask, err = database.GetNotificationsByTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Len(t, byTask, 2)
}

func TestProjects(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	// The inbox project is seeded by migrations.
	inbox, err := database.GetProject(ctx, "inbox")
	require.NoError(t, err)
	assert.Equal(t, "Inbox", inbox.Name)

	now := time.Now()
	work := model.Project{ID: "work", Name: "Work", Color: "#FF6B6B", CreatedAt: now, UpdatedAt: now}
	require.NoError(t, database.CreateProject(ctx, work))

	projects, err := database.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 2)

	assert.Error(t, database.DeleteProject(ctx, "inbox"))
	require.NoError(t, database.DeleteProject(ctx, "work"))
}
