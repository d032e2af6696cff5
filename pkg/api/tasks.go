package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dulbrich/wardclean/pkg/core/services"
)

type taskAPI struct {
	opts *Options
}

func registerTaskAPI(g *echo.Group, opts *Options) {
	api := taskAPI{opts: opts}

	tg := g.Group("/tasks")
	tg.POST("/:id/complete", api.complete)
}

func (api *taskAPI) complete(ctx echo.Context) error {
	result, err := services.CompleteTask(
		ctx.Request().Context(),
		api.opts.Store,
		api.opts.Logger,
		ctx.Param("id"),
		contextMemberID(ctx),
		api.opts.Cfg.StrictCompletion,
		api.opts.Now(),
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, result)
}
