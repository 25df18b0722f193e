package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

type stubTaskSource struct {
	tasks []model.Task
	err   error
}

func (s *stubTaskSource) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.tasks, s.err
}

func reminderTask(id uint, due time.Time) model.Task {
	return model.Task{ID: id, Title: "task", DueDate: &due, Reminder: true, Priority: model.PriorityMedium}
}

func TestScanEmitsForDueSoonTask(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	source := &stubTaskSource{tasks: []model.Task{reminderTask(1, now.Add(20 * time.Minute))}}
	svc := NewReminderService(source, 1, zap.NewNop())

	require.NoError(t, svc.Scan(context.Background(), now))

	active := svc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, model.NotificationReminder, active[0].Type)
	assert.Equal(t, `Your task "task" is due in 20 minutes.`, active[0].Message)
	require.NotNil(t, active[0].SourceTaskID)
	assert.Equal(t, uint(1), *active[0].SourceTaskID)
	assert.True(t, active[0].Visible)
}

func TestScanDeduplicatesWithinWindow(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	due := now.Add(20 * time.Minute)
	svc := NewReminderService(&stubTaskSource{tasks: []model.Task{reminderTask(1, due)}}, 1, zap.NewNop())

	require.NoError(t, svc.Scan(context.Background(), now))
	require.NoError(t, svc.Scan(context.Background(), now.Add(5*time.Minute)))
	assert.Len(t, svc.Active(), 1, "second scan inside the window is suppressed")

	// Move the due date so the task is due soon again after the window.
	laterDue := now.Add(40 * time.Minute)
	svc.tasks = &stubTaskSource{tasks: []model.Task{reminderTask(1, laterDue)}}
	require.NoError(t, svc.Scan(context.Background(), now.Add(20*time.Minute)))
	assert.Len(t, svc.Active(), 2, "window expired, a fresh notification is emitted")
}

func TestScanEligibility(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	completed := reminderTask(1, now.Add(10*time.Minute))
	completed.Completed = true
	noReminder := reminderTask(2, now.Add(10*time.Minute))
	noReminder.Reminder = false
	undated := model.Task{ID: 3, Title: "task", Reminder: true}
	overdue := reminderTask(4, now.Add(-time.Minute))
	tooFar := reminderTask(5, now.Add(31*time.Minute))

	source := &stubTaskSource{tasks: []model.Task{completed, noReminder, undated, overdue, tooFar}}
	svc := NewReminderService(source, 1, zap.NewNop())

	require.NoError(t, svc.Scan(context.Background(), now))
	assert.Empty(t, svc.Active(), "ineligible tasks are silently skipped")
}

func TestScanIndependentNotificationsPerTask(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	due := now.Add(15 * time.Minute)
	source := &stubTaskSource{tasks: []model.Task{reminderTask(1, due), reminderTask(2, due)}}
	svc := NewReminderService(source, 1, zap.NewNop())

	require.NoError(t, svc.Scan(context.Background(), now))

	active := svc.Active()
	require.Len(t, active, 2, "dedup is per task id, not per time bucket")
	assert.NotEqual(t, active[0].ID, active[1].ID)
}

func TestScanPropagatesSourceError(t *testing.T) {
	svc := NewReminderService(&stubTaskSource{err: errors.New("boom")}, 1, zap.NewNop())
	err := svc.Scan(context.Background(), time.Now())
	assert.Error(t, err)
}

func TestDismissHidesAndPurges(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	source := &stubTaskSource{tasks: []model.Task{reminderTask(1, now.Add(10 * time.Minute))}}
	svc := NewReminderService(source, 1, zap.NewNop())

	require.NoError(t, svc.Scan(context.Background(), now))
	active := svc.Active()
	require.Len(t, active, 1)

	svc.Dismiss(active[0].ID)
	assert.Empty(t, svc.Active(), "dismissed notifications are hidden immediately")

	// Dismissing again, or an unknown id, is a no-op.
	svc.Dismiss(active[0].ID)
	svc.Dismiss("unknown")

	// The next scan purges the record, so the same task can alert again
	// even inside the dedup window of the dismissed notification.
	source.tasks = []model.Task{}
	require.NoError(t, svc.Scan(context.Background(), now.Add(time.Minute)))
	assert.Empty(t, svc.Active())
}

func TestAddCustomNotification(t *testing.T) {
	svc := NewReminderService(&stubTaskSource{}, 1, zap.NewNop())

	n := svc.Add("Saved", "Task created successfully", model.NotificationSuccess)
	assert.NotEmpty(t, n.ID)
	assert.Nil(t, n.SourceTaskID)

	active := svc.Active()
	require.Len(t, active, 1)
	assert.Equal(t, model.NotificationSuccess, active[0].Type)
}

func TestToastChannelReceivesEmissions(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	source := &stubTaskSource{tasks: []model.Task{reminderTask(1, now.Add(10 * time.Minute))}}
	svc := NewReminderService(source, 1, zap.NewNop())

	require.NoError(t, svc.Scan(context.Background(), now))

	select {
	case toast := <-svc.Toasts():
		assert.Equal(t, model.NotificationReminder, toast.Type)
	default:
		t.Fatal("expected a toast on the channel")
	}
}

func TestRelativeDue(t *testing.T) {
	assert.Equal(t, "in less than a minute", relativeDue(30*time.Second))
	assert.Equal(t, "in 1 minute", relativeDue(90*time.Second))
	assert.Equal(t, "in 29 minutes", relativeDue(29*time.Minute+59*time.Second))
}
