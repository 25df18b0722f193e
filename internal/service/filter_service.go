package service

import (
	"sort"
	"time"

	"taskboard/internal/model"
)

// CategoryAll selects tasks from every category.
const CategoryAll uint = 0

// VisibleTasks computes the task subset shown for a category selector and
// named filter, in display order. It never mutates its input and is
// deterministic for a fixed now.
func VisibleTasks(tasks []model.Task, categoryID uint, filter model.TaskFilter, now time.Time) []model.Task {
	visible := make([]model.Task, 0, len(tasks))

	for _, task := range tasks {
		if categoryID != CategoryAll {
			if task.CategoryID == nil || *task.CategoryID != categoryID {
				continue
			}
		}
		if matchesFilter(task, filter, now) {
			visible = append(visible, task)
		}
	}

	sortForDisplay(visible)
	return visible
}

func matchesFilter(task model.Task, filter model.TaskFilter, now time.Time) bool {
	switch filter {
	case model.FilterToday:
		return task.DueDate != nil && sameDay(*task.DueDate, now)
	case model.FilterUpcoming:
		return task.DueDate != nil && startOfDay(*task.DueDate).After(startOfDay(now))
	case model.FilterPriority:
		return task.Priority == model.PriorityHigh
	case model.FilterCompleted:
		return task.Completed
	default:
		return true
	}
}

// sortForDisplay puts incomplete tasks first, ordered by priority rank;
// completed tasks keep their relative order at the end.
func sortForDisplay(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if tasks[i].Completed != tasks[j].Completed {
			return !tasks[i].Completed
		}
		if !tasks[i].Completed {
			return tasks[i].Priority.Rank() < tasks[j].Priority.Rank()
		}
		return false
	})
}

// ComputeStats derives summary counts and percentages for a visible subset.
func ComputeStats(tasks []model.Task) model.TaskStats {
	stats := model.TaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
	}
	stats.InProgress = stats.Total - stats.Completed - stats.Pending
	if stats.InProgress < 0 {
		stats.InProgress = 0
	}
	if stats.Total > 0 {
		stats.PendingPercent = float64(stats.Pending) / float64(stats.Total) * 100
		stats.InProgressPercent = float64(stats.InProgress) / float64(stats.Total) * 100
		stats.CompletedPercent = float64(stats.Completed) / float64(stats.Total) * 100
	}
	return stats
}

// CategoryCounts tallies tasks per category for the sidebar.
func CategoryCounts(tasks []model.Task) map[uint]int {
	counts := make(map[uint]int)
	for _, task := range tasks {
		if task.CategoryID != nil {
			counts[*task.CategoryID]++
		}
	}
	return counts
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
