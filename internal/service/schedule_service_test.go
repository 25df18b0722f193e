package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/model"
)

func TestUpcomingScheduleExactDateBuckets(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	day := func(offset, hour int) time.Time {
		return time.Date(2026, 3, 10+offset, hour, 0, 0, 0, time.UTC)
	}

	tasks := []model.Task{
		taskWithDue(1, day(1, 9)),
		taskWithDue(2, day(6, 9)),
		taskWithDue(3, day(7, 9)),
		taskWithDue(4, day(8, 9)),
	}

	schedule := UpcomingSchedule(tasks, now)

	require.Len(t, schedule.Tomorrow, 1)
	assert.Equal(t, uint(1), schedule.Tomorrow[0].ID)

	require.Len(t, schedule.NextWeek, 1, "only the date exactly 7 days out matches")
	assert.Equal(t, uint(3), schedule.NextWeek[0].ID)

	require.Len(t, schedule.Later, 1)
	assert.Equal(t, uint(4), schedule.Later[0].ID)
}

func TestUpcomingScheduleLaterCap(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		taskWithDue(1, time.Date(2026, 3, 22, 9, 0, 0, 0, time.UTC)),
		taskWithDue(2, time.Date(2026, 3, 19, 9, 0, 0, 0, time.UTC)),
		taskWithDue(3, time.Date(2026, 3, 25, 9, 0, 0, 0, time.UTC)),
		taskWithDue(4, time.Date(2026, 3, 18, 9, 0, 0, 0, time.UTC)),
		taskWithDue(5, time.Date(2026, 3, 30, 9, 0, 0, 0, time.UTC)),
	}

	schedule := UpcomingSchedule(tasks, now)

	require.Len(t, schedule.Later, 3, "later bucket is capped")
	assert.Equal(t, uint(4), schedule.Later[0].ID)
	assert.Equal(t, uint(2), schedule.Later[1].ID)
	assert.Equal(t, uint(1), schedule.Later[2].ID)
}

func TestUpcomingScheduleSortsWithinBucket(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	tasks := []model.Task{
		taskWithDue(1, time.Date(2026, 3, 11, 16, 0, 0, 0, time.UTC)),
		taskWithDue(2, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)),
		taskWithDue(3, time.Date(2026, 3, 11, 12, 30, 0, 0, time.UTC)),
	}

	schedule := UpcomingSchedule(tasks, now)

	require.Len(t, schedule.Tomorrow, 3)
	assert.Equal(t, uint(2), schedule.Tomorrow[0].ID)
	assert.Equal(t, uint(3), schedule.Tomorrow[1].ID)
	assert.Equal(t, uint(1), schedule.Tomorrow[2].ID)
}

func TestUpcomingScheduleExclusions(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	done := taskWithDue(1, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC))
	done.Completed = true
	undated := model.Task{ID: 2, Priority: model.PriorityMedium}

	schedule := UpcomingSchedule([]model.Task{done, undated}, now)

	assert.Empty(t, schedule.Tomorrow)
	assert.Empty(t, schedule.NextWeek)
	assert.Empty(t, schedule.Later)
}
