package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"taskboard/internal/model"
)

// notificationRequest is the request body for POST /api/notifications.
type notificationRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (s *Server) handleListNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, s.reminders.Active())
}

// handleAddNotification lets the presentation layer publish a custom
// notification alongside the scanner's reminders.
func (s *Server) handleAddNotification(c echo.Context) error {
	var req notificationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid notification data")
	}

	if strings.TrimSpace(req.Title) == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}

	typ := model.NotificationInfo
	if req.Type != "" {
		parsed, ok := model.ParseNotificationType(req.Type)
		if !ok {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid notification type")
		}
		typ = parsed
	}

	n := s.reminders.Add(req.Title, req.Message, typ)
	return c.JSON(http.StatusCreated, n)
}

func (s *Server) handleDismissNotification(c echo.Context) error {
	s.reminders.Dismiss(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
