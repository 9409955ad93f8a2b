package model

import "time"

// Priority levels for tasks; lower weight is scheduled first
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Weight returns the scheduling weight of the priority.
// Unknown values sort after low.
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	case PriorityLow:
		return 2
	default:
		return 3
	}
}

// Valid reports whether p is one of the known priority levels
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Status values for tasks
type Status string

const (
	StatusPlanning Status = "planning"
	StatusDoing    Status = "doing"
	StatusDone     Status = "done"
)

// Valid reports whether s is one of the known statuses
func (s Status) Valid() bool {
	return s == StatusPlanning || s == StatusDoing || s == StatusDone
}

// DefaultDurationMinutes is assumed by the planner when a task has no duration
const DefaultDurationMinutes = 30

// Task represents a single todo item
type Task struct {
	ID          string     `json:"id"`
	ProjectID   string     `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`     // date-only, midnight local
	PlannedTime *time.Time `json:"planned_time,omitempty"` // absolute start timestamp
	Duration    *int       `json:"duration,omitempty"`     // minutes
	Priority    Priority   `json:"priority"`
	Status      Status     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewTask creates a new task with defaults
func NewTask(id, projectID, name string) Task {
	now := time.Now()
	return Task{
		ID:        id,
		ProjectID: projectID,
		Name:      name,
		Priority:  PriorityLow,
		Status:    StatusPlanning,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DurationMinutes returns the task duration, falling back to the default
func (t *Task) DurationMinutes() int {
	if t.Duration == nil || *t.Duration <= 0 {
		return DefaultDurationMinutes
	}
	return *t.Duration
}

// IsDone returns true if the task is completed
func (t *Task) IsDone() bool {
	return t.Status == StatusDone
}

// IsDueOn returns true if the task is due on the given calendar day
func (t *Task) IsDueOn(day time.Time) bool {
	if t.DueDate == nil {
		return false
	}
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsOverdue returns true if the task is past its due date and not done
func (t *Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.IsDone() {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return t.DueDate.Before(today)
}
