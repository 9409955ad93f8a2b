package model

import "time"

// Notification is a reminder attached to a task, fired at an absolute time
type Notification struct {
	ID        string    `json:"id"`
	TaskID    string    `json:"task_id"`
	Time      time.Time `json:"time"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewNotification creates a notification with defaults
func NewNotification(id, taskID string, at time.Time) Notification {
	return Notification{
		ID:        id,
		TaskID:    taskID,
		Time:      at,
		CreatedAt: time.Now(),
	}
}

// IsUpcoming returns true if the notification still has to fire
func (n *Notification) IsUpcoming(now time.Time) bool {
	return n.Time.After(now)
}
