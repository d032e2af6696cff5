package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/pkg/core/schedule"
)

// memberIDHeader carries the authenticated member's id, set by the auth proxy
// in front of this service.
const memberIDHeader = "X-Member-ID"

const memberIDContextKey = "memberID"

// requireMember rejects requests that lack the member id header and stores
// the id on the request context for handlers.
func (s *Server) requireMember(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		memberID := ctx.Request().Header.Get(memberIDHeader)
		if memberID == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing member identity")
		}
		ctx.Set(memberIDContextKey, memberID)
		return next(ctx)
	}
}

// contextMemberID returns the member id stored by requireMember
func contextMemberID(ctx echo.Context) string {
	memberID, _ := ctx.Get(memberIDContextKey).(string)
	return memberID
}

// errorHandler maps service errors onto HTTP statuses: caller input errors
// become 400s, everything unexpected a logged 500.
func (s *Server) errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		ctx.JSON(httpErr.Code, map[string]interface{}{"error": httpErr.Message})
		return
	}

	if errors.Is(err, schedule.ErrInvalidInput) {
		ctx.JSON(http.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}

	s.opts.Logger.Error("Request failed",
		zap.String("path", ctx.Request().URL.Path),
		zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, map[string]interface{}{"error": "internal server error"})
}
