package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"taskboard/internal/repository"
)

// handleCurrentUser returns the demo user. The password field carries a
// json:"-" tag and is never serialized.
func (s *Server) handleCurrentUser(c echo.Context) error {
	user, err := s.users.FindByID(c.Request().Context(), repository.DemoUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "User not found")
		}
		s.logger.Error("get user", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get user")
	}
	return c.JSON(http.StatusOK, user)
}
