// Package notify keeps an in-memory table of armed one-shot timers, one
// per pending notification, reconciled from the persisted store at startup.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/logger"
	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
)

// TaskLookup resolves the task a notification belongs to.
type TaskLookup interface {
	GetTask(ctx context.Context, id string) (model.Task, error)
}

// NotificationGateway is the notification-store surface the scheduler consumes.
type NotificationGateway interface {
	GetUpcomingNotifications(ctx context.Context) ([]model.Notification, error)
}

// Scheduler owns the mapping from notification ID to its armed timer.
// At most one timer is armed per ID; firing is at-most-once per process
// lifetime. Timers do not survive restart; LoadScheduled re-derives them
// from persisted state.
type Scheduler struct {
	tasks     TaskLookup
	presenter Presenter
	now       func() time.Time

	mu     sync.Mutex
	timers map[string]*time.Timer
	closed bool
}

// NewScheduler creates a scheduler with no armed timers.
func NewScheduler(tasks TaskLookup, presenter Presenter) *Scheduler {
	return &Scheduler{
		tasks:     tasks,
		presenter: presenter,
		now:       time.Now,
		timers:    make(map[string]*time.Timer),
	}
}

// Schedule arms a one-shot timer for the notification, replacing any
// timer already armed for the same ID. Notifications whose time is not in
// the future are dropped; they never fire retroactively.
func (s *Scheduler) Schedule(n model.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	if existing, ok := s.timers[n.ID]; ok {
		existing.Stop()
		delete(s.timers, n.ID)
	}

	delay := n.Time.Sub(s.now())
	if delay <= 0 {
		logger.Info("Skipping notification already in the past",
			logger.F("notification", n.ID), logger.F("time", n.Time))
		return
	}

	s.timers[n.ID] = time.AfterFunc(delay, func() {
		s.fire(n)
	})

	logger.Debug("Notification armed",
		logger.F("notification", n.ID), logger.F("delay", delay))
}

// Cancel stops and removes the timer for the given notification ID.
// Cancelling an unknown ID is a no-op.
func (s *Scheduler) Cancel(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[id]; ok {
		timer.Stop()
		delete(s.timers, id)
		logger.Debug("Notification cancelled", logger.F("notification", id))
	}
}

// LoadScheduled arms a timer for every persisted notification that still
// has to fire. Called once at startup to reconcile in-memory timers with
// the store.
func (s *Scheduler) LoadScheduled(ctx context.Context, store NotificationGateway) error {
	upcoming, err := store.GetUpcomingNotifications(ctx)
	if err != nil {
		logger.Error("Failed to load upcoming notifications", logger.F("error", err))
		return err
	}

	for _, n := range upcoming {
		s.Schedule(n)
	}

	logger.Info("Loaded scheduled notifications", logger.F("count", len(upcoming)))
	return nil
}

// Pending reports whether a timer is currently armed for the given ID.
func (s *Scheduler) Pending(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}

// PendingCount returns the number of armed timers.
func (s *Scheduler) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.timers)
}

// Close cancels every armed timer. The scheduler accepts no new work
// afterwards.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.closed = true
}

// fire delivers a notification and removes its table entry.
func (s *Scheduler) fire(n model.Notification) {
	s.mu.Lock()
	delete(s.timers, n.ID)
	closed := s.closed
	s.mu.Unlock()

	if closed {
		return
	}

	title := "Task reminder"
	if s.tasks != nil {
		task, err := s.tasks.GetTask(context.Background(), n.TaskID)
		if err != nil {
			logger.Warn("Could not resolve task for notification",
				logger.F("notification", n.ID), logger.F("task", n.TaskID),
				logger.F("error", err))
		} else {
			title = task.Name
		}
	}

	body := n.Message
	if body == "" {
		body = "This task is waiting for you."
	}

	if err := s.presenter.Show(title, body); err != nil {
		logger.Warn("Failed to present notification",
			logger.F("notification", n.ID), logger.F("error", err))
	}

	logger.Info("Notification fired", logger.F("notification", n.ID))
}
