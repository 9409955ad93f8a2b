package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Troyanovsky/ai-task-assistant-sub000/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPresenter captures fired notifications.
type recordingPresenter struct {
	mu    sync.Mutex
	shown []string
	fired chan struct{}
}

func newRecordingPresenter() *recordingPresenter {
	return &recordingPresenter{fired: make(chan struct{}, 16)}
}

func (p *recordingPresenter) Show(title, body string) error {
	p.mu.Lock()
	p.shown = append(p.shown, title)
	p.mu.Unlock()
	p.fired <- struct{}{}
	return nil
}

func (p *recordingPresenter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.shown)
}

// fakeTasks resolves every ID to a task named after it.
type fakeTasks struct {
	err error
}

func (f *fakeTasks) GetTask(ctx context.Context, id string) (model.Task, error) {
	if f.err != nil {
		return model.Task{}, f.err
	}
	return model.Task{ID: id, Name: "task " + id}, nil
}

// fakeStore returns a canned set of upcoming notifications.
type fakeStore struct {
	upcoming []model.Notification
	err      error
}

func (f *fakeStore) GetUpcomingNotifications(ctx context.Context) ([]model.Notification, error) {
	return f.upcoming, f.err
}

func futureNotification(id string, in time.Duration) model.Notification {
	return model.NewNotification(id, "task-"+id, time.Now().Add(in))
}

func TestSchedule_ArmsOneTimer(t *testing.T) {
	s := NewScheduler(&fakeTasks{}, newRecordingPresenter())
	defer s.Close()

	s.Schedule(futureNotification("n1", time.Hour))

	assert.True(t, s.Pending("n1"))
	assert.Equal(t, 1, s.PendingCount())
}

func TestSchedule_PastTimeIsDropped(t *testing.T) {
	s := NewScheduler(&fakeTasks{}, newRecordingPresenter())
	defer s.Close()

	s.Schedule(futureNotification("n1", -time.Minute))

	assert.False(t, s.Pending("n1"))
	assert.Equal(t, 0, s.PendingCount())
}

func TestSchedule_ReplacesExistingTimer(t *testing.T) {
	s := NewScheduler(&fakeTasks{}, newRecordingPresenter())
	defer s.Close()

	s.Schedule(futureNotification("n1", time.Hour))
	s.Schedule(futureNotification("n1", 2*time.Hour))

	// At most one armed timer per notification ID.
	assert.Equal(t, 1, s.PendingCount())
}

func TestCancel_RemovesTimerBeforeFiring(t *testing.T) {
	presenter := newRecordingPresenter()
	s := NewScheduler(&fakeTasks{}, presenter)
	defer s.Close()

	s.Schedule(futureNotification("n1", 30*time.Millisecond))
	s.Cancel("n1")

	assert.False(t, s.Pending("n1"))

	select {
	case <-presenter.fired:
		t.Fatal("cancelled notification fired")
	case <-time.After(120 * time.Millisecond):
	}
	assert.Equal(t, 0, presenter.count())
}

func TestCancel_UnknownIDIsNoop(t *testing.T) {
	s := NewScheduler(&fakeTasks{}, newRecordingPresenter())
	defer s.Close()

	s.Cancel("missing")
	assert.Equal(t, 0, s.PendingCount())
}

func TestFire_DeliversOnceAndRemovesEntry(t *testing.T) {
	presenter := newRecordingPresenter()
	s := NewScheduler(&fakeTasks{}, presenter)
	defer s.Close()

	n := futureNotification("n1", 20*time.Millisecond)
	s.Schedule(n)

	select {
	case <-presenter.fired:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("notification did not fire")
	}

	assert.False(t, s.Pending("n1"), "fired notification must remove its entry")
	assert.Equal(t, 1, presenter.count())

	presenter.mu.Lock()
	title := presenter.shown[0]
	presenter.mu.Unlock()
	assert.Equal(t, "task task-n1", title)
}

func TestFire_TaskLookupFailureStillPresents(t *testing.T) {
	presenter := newRecordingPresenter()
	s := NewScheduler(&fakeTasks{err: errors.New("gone")}, presenter)
	defer s.Close()

	s.Schedule(futureNotification("n1", 20*time.Millisecond))

	select {
	case <-presenter.fired:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("notification did not fire")
	}

	presenter.mu.Lock()
	title := presenter.shown[0]
	presenter.mu.Unlock()
	assert.Equal(t, "Task reminder", title)
}

func TestLoadScheduled_ArmsUpcomingOnly(t *testing.T) {
	s := NewScheduler(&fakeTasks{}, newRecordingPresenter())
	defer s.Close()

	store := &fakeStore{upcoming: []model.Notification{
		futureNotification("n1", time.Hour),
		futureNotification("n2", 2*time.Hour),
	}}

	require.NoError(t, s.LoadScheduled(context.Background(), store))
	assert.Equal(t, 2, s.PendingCount())
}

func TestLoadScheduled_StoreFailure(t *testing.T) {
	s := NewScheduler(&fakeTasks{}, newRecordingPresenter())
	defer s.Close()

	store := &fakeStore{err: errors.New("no store")}
	assert.Error(t, s.LoadScheduled(context.Background(), store))
	assert.Equal(t, 0, s.PendingCount())
}

func TestClose_CancelsEverything(t *testing.T) {
	presenter := newRecordingPresenter()
	s := NewScheduler(&fakeTasks{}, presenter)

	s.Schedule(futureNotification("n1", 30*time.Millisecond))
	s.Schedule(futureNotification("n2", time.Hour))
	s.Close()

	assert.Equal(t, 0, s.PendingCount())

	select {
	case <-presenter.fired:
		t.Fatal("notification fired after Close")
	case <-time.After(120 * time.Millisecond):
	}

	// A closed scheduler accepts no new work.
	s.Schedule(futureNotification("n3", time.Hour))
	assert.Equal(t, 0, s.PendingCount())
}
