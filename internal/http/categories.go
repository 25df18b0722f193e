package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard/internal/repository"
	"taskboard/internal/service"
)

// categoryRequest is the request body for category create and update.
type categoryRequest struct {
	Name *string `json:"name"`
	Icon *string `json:"icon"`
}

func (s *Server) handleListCategories(c echo.Context) error {
	categories, err := s.categories.ListCategories(c.Request().Context(), repository.DemoUserID)
	if err != nil {
		s.logger.Error("list categories", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list categories")
	}
	return c.JSON(http.StatusOK, categories)
}

func (s *Server) handleCreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category data")
	}

	var input service.CategoryInput
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Icon != nil {
		input.Icon = *req.Icon
	}

	category, err := s.categories.CreateCategory(c.Request().Context(), repository.DemoUserID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		s.logger.Error("create category", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create category")
	}
	return c.JSON(http.StatusCreated, category)
}

func (s *Server) handleUpdateCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid category data")
	}

	category, err := s.categories.UpdateCategory(c.Request().Context(), repository.DemoUserID, id, service.CategoryUpdate{
		Name: req.Name,
		Icon: req.Icon,
	})
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Category not found")
		case errors.Is(err, service.ErrInvalidInput):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			s.logger.Error("update category", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update category")
		}
	}
	return c.JSON(http.StatusOK, category)
}

func (s *Server) handleDeleteCategory(c echo.Context) error {
	id, err := idParam(c)
	if err != nil {
		return err
	}

	deleted, err := s.categories.DeleteCategory(c.Request().Context(), repository.DemoUserID, id)
	if err != nil {
		s.logger.Error("delete category", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete category")
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	return c.NoContent(http.StatusNoContent)
}
