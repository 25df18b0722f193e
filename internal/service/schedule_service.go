package service

import (
	"sort"
	"time"

	"taskboard/internal/model"
)

// laterBucketCap limits the "later" bucket to the earliest few tasks.
const laterBucketCap = 3

// Schedule buckets incomplete, dated tasks for the upcoming calendar view.
// NextWeek matches only the single date seven days out, not the whole week.
type Schedule struct {
	Tomorrow []model.Task `json:"tomorrow"`
	NextWeek []model.Task `json:"nextWeek"`
	Later    []model.Task `json:"later"`
}

// UpcomingSchedule partitions tasks into tomorrow / next-week / later
// buckets relative to now. Completed tasks and tasks without a due date
// are excluded; each bucket is sorted ascending by due time.
func UpcomingSchedule(tasks []model.Task, now time.Time) Schedule {
	tomorrow := startOfDay(now).AddDate(0, 0, 1)
	nextWeek := startOfDay(now).AddDate(0, 0, 7)

	var schedule Schedule
	for _, task := range tasks {
		if task.DueDate == nil || task.Completed {
			continue
		}
		due := startOfDay(*task.DueDate)
		switch {
		case due.Equal(tomorrow):
			schedule.Tomorrow = append(schedule.Tomorrow, task)
		case due.Equal(nextWeek):
			schedule.NextWeek = append(schedule.NextWeek, task)
		case due.After(nextWeek):
			schedule.Later = append(schedule.Later, task)
		}
	}

	sortByDueDate(schedule.Tomorrow)
	sortByDueDate(schedule.NextWeek)
	sortByDueDate(schedule.Later)
	if len(schedule.Later) > laterBucketCap {
		schedule.Later = schedule.Later[:laterBucketCap]
	}
	return schedule
}

func sortByDueDate(tasks []model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(*tasks[j].DueDate)
	})
}
