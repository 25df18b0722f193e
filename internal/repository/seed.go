package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"taskboard/internal/model"
)

// DemoUserID is the single account every request is scoped to.
const DemoUserID uint = 1

// Seed populates a fresh store with the demo user, default categories and
// a handful of sample tasks. It is a no-op when the demo user already
// exists, so file-backed databases are not re-seeded on restart.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", "demo").Count(&count).Error; err != nil {
		return fmt.Errorf("check seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	user := model.User{Username: "demo", Password: "password"}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("seed user: %w", err)
	}

	categories := []model.Category{
		{UserID: user.ID, Name: "Work", Icon: "briefcase-line"},
		{UserID: user.ID, Name: "Personal", Icon: "home-line"},
		{UserID: user.ID, Name: "Learning", Icon: "book-line"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}

	now := time.Now()
	workID := categories[0].ID
	tasks := []model.Task{
		{
			UserID:      user.ID,
			CategoryID:  &workID,
			Title:       "Finalize project proposal",
			Description: "Review all project requirements and submit final proposal to the client",
			DueDate:     at(now, 0, 16, 0),
			Priority:    model.PriorityHigh,
			Reminder:    true,
		},
		{
			UserID:      user.ID,
			CategoryID:  &workID,
			Title:       "Schedule team meeting",
			Description: "Coordinate with the team for sprint planning session",
			DueDate:     at(now, 0, 14, 30),
			Priority:    model.PriorityMedium,
		},
		{
			UserID:      user.ID,
			CategoryID:  &workID,
			Title:       "Review code pull requests",
			Description: "Review and provide feedback on open pull requests from the team",
			DueDate:     at(now, 1, 10, 0),
			Priority:    model.PriorityLow,
		},
		{
			UserID:      user.ID,
			CategoryID:  &workID,
			Title:       "Send weekly report",
			Description: "Compile and email weekly status report to stakeholders",
			DueDate:     at(now, 0, 12, 0),
			Completed:   true,
			Priority:    model.PriorityMedium,
		},
		{
			UserID:      user.ID,
			CategoryID:  &workID,
			Title:       "Team retrospective",
			Description: "Conduct team retrospective for the completed sprint",
			DueDate:     at(now, 1, 14, 0),
			Priority:    model.PriorityMedium,
		},
		{
			UserID:      user.ID,
			CategoryID:  &workID,
			Title:       "Sprint planning",
			Description: "Plan tasks for the next sprint",
			DueDate:     at(now, 7, 9, 30),
			Priority:    model.PriorityHigh,
			Reminder:    true,
		},
		{
			UserID:      user.ID,
			CategoryID:  &workID,
			Title:       "Client presentation",
			Description: "Present project progress to client",
			DueDate:     at(now, 7, 15, 0),
			Priority:    model.PriorityHigh,
			Reminder:    true,
		},
	}
	if err := db.Create(&tasks).Error; err != nil {
		return fmt.Errorf("seed tasks: %w", err)
	}

	return nil
}

// at returns now shifted by days with the clock set to hour:minute.
func at(now time.Time, days, hour, minute int) *time.Time {
	t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()).AddDate(0, 0, days)
	return &t
}
