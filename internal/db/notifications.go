package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
)

const notificationColumns = `id, task_id, time, message, created_at`

// CreateNotification inserts a new notification
func (db *DB) CreateNotification(ctx context.Context, n model.Notification) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO notifications (`+notificationColumns+`)
		VALUES (?, ?, ?, ?, ?)`,
		n.ID, n.TaskID, n.Time.Format(time.RFC3339), n.Message,
		n.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}
	return nil
}

// GetNotification fetches a notification by ID
func (db *DB) GetNotification(ctx context.Context, id string) (model.Notification, error) {
	row := db.QueryRowContext(ctx,
		`SELECT `+notificationColumns+` FROM notifications WHERE id = ?`, id)
	return scanNotification(row)
}

// GetUpcomingNotifications returns all notifications with a future fire time
func (db *DB) GetUpcomingNotifications(ctx context.Context) ([]model.Notification, error) {
	now := time.Now().Format(time.RFC3339)
	rows, err := db.QueryContext(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE time > ? ORDER BY time`, now)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming notifications: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// GetNotificationsByTask returns all notifications attached to a task
func (db *DB) GetNotificationsByTask(ctx context.Context, taskID string) ([]model.Notification, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT `+notificationColumns+` FROM notifications
		WHERE task_id = ? ORDER BY time`, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications for task: %w", err)
	}
	defer rows.Close()

	return collectNotifications(rows)
}

// UpdateNotification persists the fire time and message of a notification
func (db *DB) UpdateNotification(ctx context.Context, n model.Notification) error {
	res, err := db.ExecContext(ctx, `
		UPDATE notifications SET time = ?, message = ? WHERE id = ?`,
		n.Time.Format(time.RFC3339), n.Message, n.ID)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}
	if count, err := res.RowsAffected(); err == nil && count == 0 {
		return fmt.Errorf("notification not found: %s", n.ID)
	}
	return nil
}

// DeleteNotification removes a notification
func (db *DB) DeleteNotification(ctx context.Context, id string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM notifications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete notification: %w", err)
	}
	return nil
}

func collectNotifications(rows *sql.Rows) ([]model.Notification, error) {
	var notifications []model.Notification
	for rows.Next() {
		n, err := scanNotification(rows)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func scanNotification(row rowScanner) (model.Notification, error) {
	var n model.Notification
	var fireTime, createdAt string

	if err := row.Scan(&n.ID, &n.TaskID, &fireTime, &n.Message, &createdAt); err != nil {
		return model.Notification{}, err
	}

	var err error
	n.Time, err = time.Parse(time.RFC3339, fireTime)
	if err != nil {
		return model.Notification{}, fmt.Errorf("invalid notification time %q: %w", fireTime, err)
	}
	n.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	return n, nil
}
