package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/timeutil"
)

const taskColumns = `id, project_id, name, description, due_date, planned_time, duration, priority, status, created_at, updated_at`

// CreateTask inserts a new task
func (db *DB) CreateTask(ctx context.Context, t model.Task) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.ProjectID, t.Name, t.Description,
		dateToNull(t.DueDate), timeToNull(t.PlannedTime), intToNull(t.Duration),
		string(t.Priority), string(t.Status),
		t.CreatedAt.Format(time.RFC3339), t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// GetTask fetches a task by exact ID
func (db *DB) GetTask(ctx context.Context, id string) (model.Task, error) {
	row := db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return scanTask(row)
}

// GetTaskPartial fetches a task whose ID starts with the given prefix
func (db *DB) GetTaskPartial(ctx context.Context, prefix string) (model.Task, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id LIKE ? LIMIT 1`, prefix+"%")
	return scanTask(row)
}

// ListTasks returns tasks, optionally filtered by project and completion
func (db *DB) ListTasks(ctx context.Context, projectID string, includeDone bool) ([]model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE 1=1`
	args := []interface{}{}

	if projectID != "" {
		query += ` AND project_id = ?`
		args = append(args, projectID)
	}
	if !includeDone {
		query += ` AND status != 'done'`
	}
	query += ` ORDER BY created_at`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// GetTasksDueToday returns non-done tasks due on today's calendar date
func (db *DB) GetTasksDueToday(ctx context.Context) ([]model.Task, error) {
	today := timeutil.FormatDate(time.Now())
	rows, err := db.QueryContext(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE due_date = ? AND status != 'done'
		ORDER BY created_at`, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch tasks due today: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// GetOverdueTasks returns non-done tasks whose due date is before today
func (db *DB) GetOverdueTasks(ctx context.Context) ([]model.Task, error) {
	today := timeutil.FormatDate(time.Now())
	rows, err := db.QueryContext(ctx, `
		SELECT `+taskColumns+` FROM tasks
		WHERE due_date IS NOT NULL AND due_date < ? AND status != 'done'
		ORDER BY due_date, created_at`, today)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch overdue tasks: %w", err)
	}
	defer rows.Close()

	return collectTasks(rows)
}

// UpdateTask persists all mutable fields of a task
func (db *DB) UpdateTask(ctx context.Context, t model.Task) error {
	res, err := db.ExecContext(ctx, `
		UPDATE tasks
		SET project_id = ?, name = ?, description = ?, due_date = ?,
		    planned_time = ?, duration = ?, priority = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		t.ProjectID, t.Name, t.Description,
		dateToNull(t.DueDate), timeToNull(t.PlannedTime), intToNull(t.Duration),
		string(t.Priority), string(t.Status),
		time.Now().Format(time.RFC3339), t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("task not found: %s", t.ID)
	}
	return nil
}

// SetTaskStatus updates only the status of a task
func (db *DB) SetTaskStatus(ctx context.Context, id string, status model.Status) error {
	_, err := db.ExecContext(ctx, `
		UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), time.Now().Format(time.RFC3339), id)
	if err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}

// DeleteTask removes a task and, via cascade, its notifications
func (db *DB) DeleteTask(ctx context.Context, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}

func collectTasks(rows *sql.Rows) ([]model.Task, error) {
	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var t model.Task
	var dueDate, plannedTime sql.NullString
	var duration sql.NullInt64
	var priority, status, createdAt, updatedAt string

	err := row.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description,
		&dueDate, &plannedTime, &duration, &priority, &status, &createdAt, &updatedAt)
	if err != nil {
		return model.Task{}, err
	}

	t.Priority = model.Priority(priority)
	t.Status = model.Status(status)
	t.DueDate = nullToDate(dueDate)
	t.PlannedTime = nullToTime(plannedTime)
	if duration.Valid {
		d := int(duration.Int64)
		t.Duration = &d
	}
	t.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	t.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	return t, nil
}

func dateToNull(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: timeutil.FormatDate(*t), Valid: true}
}

func timeToNull(t *time.Time) sql.NullString {
	if t == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: t.Format(time.RFC3339), Valid: true}
}

func intToNull(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

func nullToDate(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.ParseInLocation("2006-01-02", s.String, time.Local)
	if err != nil {
		return nil
	}
	return &t
}

func nullToTime(s sql.NullString) *time.Time {
	if !s.Valid || s.String == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s.String)
	if err != nil {
		return nil
	}
	return &t
}
