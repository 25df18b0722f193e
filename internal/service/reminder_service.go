package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"taskboard/internal/model"
)

const (
	// reminderLookahead selects tasks due within this window.
	reminderLookahead = 30 * time.Minute
	// dedupWindow suppresses repeat alerts for the same task.
	dedupWindow = 15 * time.Minute
	// toastBuffer bounds the fire-and-forget toast channel.
	toastBuffer = 16
)

// TaskSource supplies the task collection the scanner inspects.
type TaskSource interface {
	ListByUser(ctx context.Context, userID uint) ([]model.Task, error)
}

// ReminderService scans for tasks due soon and keeps the list of active
// notifications. Scans run on the scheduler goroutine while HTTP handlers
// read, so all state is mutex-guarded.
type ReminderService struct {
	tasks  TaskSource
	userID uint
	logger *zap.Logger

	mu            sync.Mutex
	notifications []model.Notification
	toasts        chan model.Notification
}

func NewReminderService(tasks TaskSource, userID uint, logger *zap.Logger) *ReminderService {
	return &ReminderService{
		tasks:  tasks,
		userID: userID,
		logger: logger,
		toasts: make(chan model.Notification, toastBuffer),
	}
}

// Scan performs one pass: purge dismissed notifications, then emit a
// reminder for every eligible task that has not been alerted recently.
// A task missing its due date or otherwise ineligible is skipped, never
// an error.
func (s *ReminderService) Scan(ctx context.Context, now time.Time) error {
	tasks, err := s.tasks.ListByUser(ctx, s.userID)
	if err != nil {
		return fmt.Errorf("list tasks: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeDismissed()

	for _, task := range tasks {
		if task.DueDate == nil || !task.Reminder || task.Completed {
			continue
		}
		untilDue := task.DueDate.Sub(now)
		if untilDue <= 0 || untilDue > reminderLookahead {
			continue
		}
		if s.recentlyNotified(task.ID, now) {
			continue
		}
		s.emit(s.reminderFor(task, untilDue, now))
	}

	return nil
}

// recentlyNotified reports whether a still-tracked notification for the
// task was created inside the dedup window.
func (s *ReminderService) recentlyNotified(taskID uint, now time.Time) bool {
	for _, n := range s.notifications {
		if n.SourceTaskID != nil && *n.SourceTaskID == taskID && now.Sub(n.CreatedAt) < dedupWindow {
			return true
		}
	}
	return false
}

func (s *ReminderService) reminderFor(task model.Task, untilDue time.Duration, now time.Time) model.Notification {
	taskID := task.ID
	return model.Notification{
		ID:           uuid.NewString(),
		Title:        "Task Reminder",
		Message:      fmt.Sprintf("Your task %q is due %s.", task.Title, relativeDue(untilDue)),
		Type:         model.NotificationReminder,
		Visible:      true,
		SourceTaskID: &taskID,
		CreatedAt:    now,
	}
}

// emit appends to the tracked list and fires the toast channel without
// blocking; a full channel drops the toast.
func (s *ReminderService) emit(n model.Notification) {
	s.notifications = append(s.notifications, n)
	select {
	case s.toasts <- n:
	default:
		s.logger.Debug("toast channel full, dropping", zap.String("id", n.ID))
	}
	s.logger.Info("notification emitted",
		zap.String("id", n.ID),
		zap.String("type", string(n.Type)),
	)
}

// purgeDismissed drops invisible notifications. Callers hold s.mu.
func (s *ReminderService) purgeDismissed() {
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.Visible {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

// Active returns the visible notifications in emission order.
func (s *ReminderService) Active() []model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	active := make([]model.Notification, 0, len(s.notifications))
	for _, n := range s.notifications {
		if n.Visible {
			active = append(active, n)
		}
	}
	return active
}

// Dismiss hides a notification immediately. Unknown or already dismissed
// ids are a no-op; the record itself is purged on the next scan pass.
func (s *ReminderService) Dismiss(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].Visible = false
			return
		}
	}
}

// Add publishes a custom notification on behalf of the presentation layer.
func (s *ReminderService) Add(title, message string, typ model.NotificationType) model.Notification {
	n := model.Notification{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      typ,
		Visible:   true,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.emit(n)
	return n
}

// Toasts exposes the ephemeral toast channel to consumers.
func (s *ReminderService) Toasts() <-chan model.Notification {
	return s.toasts
}

// relativeDue renders a human-readable distance to the due time.
func relativeDue(d time.Duration) string {
	minutes := int(d.Minutes())
	switch {
	case minutes < 1:
		return "in less than a minute"
	case minutes == 1:
		return "in 1 minute"
	default:
		return fmt.Sprintf("in %d minutes", minutes)
	}
}
