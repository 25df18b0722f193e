package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard/internal/model"
	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// taskRequest is the request body for task create and update. All fields
// are optional on update; nil means "leave unchanged".
type taskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	DueDate     *time.Time `json:"dueDate"`
	Completed   *bool      `json:"completed"`
	Priority    *string    `json:"priority"`
	CategoryID  *uint      `json:"categoryId"`
	Reminder    *bool      `json:"reminder"`
}

// FilteredTasksResponse is the response body for GET /api/tasks/filtered.
type FilteredTasksResponse struct {
	Tasks          []model.Task    `json:"tasks"`
	Stats          model.TaskStats `json:"stats"`
	CategoryCounts map[uint]int    `json:"categoryCounts"`
}

func (s *Server) handleListTasks(c echo.Context) error {
	tasks, err := s.tasks.ListTasks(c.Request().Context(), repository.DemoUserID)
	if err != nil {
		s.logger.Error("list tasks", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list tasks")
	}
	return c.JSON(http.StatusOK, tasks)
}

// handleFilteredTasks serves the derived list view: category selector plus
// named filter, with summary stats and sidebar counts.
func (s *Server) handleFilteredTasks(c echo.Context) error {
	categoryID := service.CategoryAll
	if raw := c.QueryParam("category"); raw != "" && raw != "all" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "category must be an id or \"all\"")
		}
		categoryID = uint(id)
	}
	filter := model.TaskFilter(c.QueryParam("filter"))

	tasks, err := s.tasks.ListTasks(c.Request().Context(), repository.DemoUserID)
	if err != nil {
		s.logger.Error("list tasks", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list tasks")
	}

	visible := service.VisibleTasks(tasks, categoryID, filter, time.Now())
	return c.JSON(http.StatusOK, FilteredTasksResponse{
		Tasks:          visible,
		Stats:          service.ComputeStats(visible),
		CategoryCounts: service.CategoryCounts(tasks),
	})
}

// handleSchedule serves the tomorrow / next-week / later calendar buckets.
func (s *Server) handleSchedule(c echo.Context) error {
	tasks, err := s.tasks.ListTasks(c.Request().Context(), repository.DemoUserID)
	if err != nil {
		s.logger.Error("list tasks", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list tasks")
	}
	return c.JSON(http.StatusOK, service.UpcomingSchedule(tasks, time.Now()))
}

func (s *Server) handleGetTask(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	task, err := s.tasks.GetTask(c.Request().Context(), repository.DemoUserID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		}
		s.logger.Error("get task", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get task")
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleCreateTask(c echo.Context) error {
	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task data")
	}

	input := service.TaskInput{
		DueDate:    req.DueDate,
		CategoryID: req.CategoryID,
	}
	if req.Title != nil {
		input.Title = *req.Title
	}
	if req.Description != nil {
		input.Description = *req.Description
	}
	if req.Completed != nil {
		input.Completed = *req.Completed
	}
	if req.Priority != nil {
		input.Priority = *req.Priority
	}
	if req.Reminder != nil {
		input.Reminder = *req.Reminder
	}

	task, err := s.tasks.CreateTask(c.Request().Context(), repository.DemoUserID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		s.logger.Error("create task", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create task")
	}
	return c.JSON(http.StatusCreated, task)
}

func (s *Server) handleUpdateTask(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req taskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid task data")
	}

	update := service.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
		Reminder:    req.Reminder,
	}

	task, err := s.tasks.UpdateTask(c.Request().Context(), repository.DemoUserID, id, update)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Task not found")
		case errors.Is(err, service.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			s.logger.Error("update task", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update task")
		}
	}
	return c.JSON(http.StatusOK, task)
}

func (s *Server) handleDeleteTask(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	deleted, err := s.tasks.DeleteTask(c.Request().Context(), repository.DemoUserID, id)
	if err != nil {
		s.logger.Error("delete task", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete task")
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "Task not found")
	}
	return c.NoContent(http.StatusNoContent)
}
