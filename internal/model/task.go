package model

import (
	"fmt"
	"strings"
	"time"
)

// Priority is the urgency level of a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// ParsePriority normalizes user input to one of the three priority values.
func ParsePriority(raw string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(raw))) {
	case PriorityLow:
		return PriorityLow, nil
	case PriorityMedium:
		return PriorityMedium, nil
	case PriorityHigh:
		return PriorityHigh, nil
	default:
		return "", fmt.Errorf("invalid priority %q", raw)
	}
}

// Rank orders priorities for display: high before medium before low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

// Task represents a single unit of work owned by a user.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index" json:"userId"`
	CategoryID  *uint      `gorm:"index" json:"categoryId"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	Priority    Priority   `gorm:"default:medium" json:"priority"`
	Reminder    bool       `gorm:"default:false" json:"reminder"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TaskFilter names a view of the task list. Unrecognized values behave
// like FilterAll.
type TaskFilter string

const (
	FilterAll       TaskFilter = "all"
	FilterToday     TaskFilter = "today"
	FilterUpcoming  TaskFilter = "upcoming"
	FilterPriority  TaskFilter = "priority"
	FilterCompleted TaskFilter = "completed"
)

// TaskStats summarizes a visible task subset. InProgress is retained for
// API compatibility; with the current two-state completion model it is
// always zero.
type TaskStats struct {
	Total             int     `json:"total"`
	Completed         int     `json:"completed"`
	Pending           int     `json:"pending"`
	InProgress        int     `json:"inProgress"`
	PendingPercent    float64 `json:"pendingPercent"`
	InProgressPercent float64 `json:"inProgressPercent"`
	CompletedPercent  float64 `json:"completedPercent"`
}
