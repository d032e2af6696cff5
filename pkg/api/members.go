package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dulbrich/wardclean/pkg/core/services"
)

type memberAPI struct {
	opts *Options
}

func registerMemberAPI(g *echo.Group, opts *Options) {
	api := memberAPI{opts: opts}

	mg := g.Group("/members")
	mg.POST("/register", api.register)
}

// RegisterMemberRequest is the payload captured at registration
type RegisterMemberRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber   string `json:"phone_number,omitempty"`
	AssignedGroup string `json:"assigned_group,omitempty" validate:"omitempty,oneof=A B C D All"`
}

func (api *memberAPI) register(ctx echo.Context) error {
	data := new(RegisterMemberRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := ctx.Validate(data); err != nil {
		return err
	}

	result, err := services.RegisterMember(
		ctx.Request().Context(),
		api.opts.Store,
		api.opts.Logger,
		services.RegisterMemberInput{
			MemberID:      contextMemberID(ctx),
			FirstName:     data.FirstName,
			LastName:      data.LastName,
			Email:         data.Email,
			PhoneNumber:   data.PhoneNumber,
			AssignedGroup: data.AssignedGroup,
		},
	)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, result)
}
