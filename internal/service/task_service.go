package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// ErrInvalidInput marks validation failures; the HTTP layer maps it to 400.
var ErrInvalidInput = errors.New("invalid input")

const maxTitleLength = 100

// TaskInput represents data required to create a task.
type TaskInput struct {
	Title       string
	Description string
	DueDate     *time.Time
	Completed   bool
	Priority    string
	CategoryID  *uint
	Reminder    bool
}

// TaskUpdate carries a partial update; nil fields are left unchanged.
type TaskUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	Completed   *bool
	Priority    *string
	CategoryID  *uint
	Reminder    *bool
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo *repository.TaskRepository
}

func NewTaskService(taskRepo *repository.TaskRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(ctx context.Context, userID uint, input TaskInput) (*model.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return nil, err
	}

	priority := model.PriorityMedium
	if input.Priority != "" {
		priority, err = model.ParsePriority(input.Priority)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	task := model.Task{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		DueDate:     input.DueDate,
		Completed:   input.Completed,
		Priority:    priority,
		Reminder:    input.Reminder,
	}

	if err := s.taskRepo.Create(ctx, &task); err != nil {
		return nil, err
	}

	return &task, nil
}

func (s *TaskService) ListTasks(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, userID)
}

func (s *TaskService) GetTask(ctx context.Context, userID, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, userID, taskID)
}

// UpdateTask applies a partial update to an existing task. The update is
// a single atomic save; not-found surfaces as gorm.ErrRecordNotFound.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID uint, update TaskUpdate) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title, err := validateTitle(*update.Title)
		if err != nil {
			return nil, err
		}
		task.Title = title
	}
	if update.Description != nil {
		task.Description = strings.TrimSpace(*update.Description)
	}
	if update.DueDate != nil {
		task.DueDate = update.DueDate
	}
	if update.Completed != nil {
		task.Completed = *update.Completed
	}
	if update.Priority != nil {
		priority, err := model.ParsePriority(*update.Priority)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		task.Priority = priority
	}
	if update.CategoryID != nil {
		task.CategoryID = update.CategoryID
	}
	if update.Reminder != nil {
		task.Reminder = *update.Reminder
	}

	if err := s.taskRepo.Save(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

// DeleteTask removes a task. It reports whether the task existed.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID uint) (bool, error) {
	return s.taskRepo.Delete(ctx, userID, taskID)
}

func validateTitle(raw string) (string, error) {
	title := strings.TrimSpace(raw)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if len(title) > maxTitleLength {
		return "", fmt.Errorf("%w: title too long (max %d chars)", ErrInvalidInput, maxTitleLength)
	}
	return title, nil
}
