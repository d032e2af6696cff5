package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dulbrich/wardclean/pkg/core/services"
)

type scheduleAPI struct {
	opts *Options
}

func registerScheduleAPI(g *echo.Group, opts *Options) {
	api := scheduleAPI{opts: opts}

	sg := g.Group("/schedules")
	sg.POST("/generate", api.generate)
}

// GenerateScheduleRequest is the payload for recurring schedule generation
type GenerateScheduleRequest struct {
	Months      []string `json:"months" validate:"required,min=1,dive,required"`
	DefaultTime string   `json:"default_time,omitempty"`
}

func (api *scheduleAPI) generate(ctx echo.Context) error {
	data := new(GenerateScheduleRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	defaultTime := data.DefaultTime
	if defaultTime == "" {
		defaultTime = api.opts.Cfg.DefaultCleaningTime
	}

	result, err := services.GenerateSchedule(
		ctx.Request().Context(),
		api.opts.Store,
		api.opts.Logger,
		api.opts.Cfg.LocationID,
		data.Months,
		defaultTime,
		api.opts.Cfg.ScheduleRule,
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, result)
}
