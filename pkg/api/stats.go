package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dulbrich/wardclean/pkg/core/services"
	"github.com/dulbrich/wardclean/pkg/core/stats"
)

type statsAPI struct {
	opts *Options
}

func registerStatsAPI(g *echo.Group, opts *Options) {
	api := statsAPI{opts: opts}

	sg := g.Group("/stats")
	sg.GET("/hours", api.hours)
	g.GET("/leaderboard", api.leaderboard)
}

func (api *statsAPI) hours(ctx echo.Context) error {
	rangeName := ctx.QueryParam("range")
	if rangeName == "" {
		rangeName = "week"
	}

	now := api.opts.Now()
	if _, _, err := stats.ResolveRange(rangeName, now); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := services.ViewStats(
		ctx.Request().Context(),
		api.opts.Store,
		api.opts.Logger,
		contextMemberID(ctx),
		rangeName,
		now,
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}

func (api *statsAPI) leaderboard(ctx echo.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "limit must be a non-negative number")
		}
		limit = parsed
	}

	rows, err := services.Leaderboard(ctx.Request().Context(), api.opts.Store, api.opts.Logger, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, rows)
}
