// Package api exposes the ward cleaning operations over HTTP. Authentication
// is handled by a fronting proxy; this layer only requires the member id
// header the proxy sets and treats it as opaque.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/dulbrich/wardclean/internal/config"
	"github.com/dulbrich/wardclean/pkg/db"
)

// Options holds the server dependencies
type Options struct {
	Cfg    *config.Config
	Store  db.Store
	Logger *zap.Logger

	// Now is the clock used by handlers; defaults to time.Now
	Now func() time.Time
}

// Server wraps the echo application
type Server struct {
	opts *Options
	app  *echo.Echo
}

// NewServer creates the HTTP server and registers all routes
func NewServer(opts *Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	s.app.HideBanner = true
	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.Recover())
	s.app.Validator = &requestValidator{validate: validator.New()}
	s.app.HTTPErrorHandler = s.errorHandler

	s.app.GET("/healthz", func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "ok")
	})

	v1 := s.app.Group("/v1", s.requireMember)
	registerScheduleAPI(v1, s.opts)
	registerStatsAPI(v1, s.opts)
	registerMemberAPI(v1, s.opts)
	registerTaskAPI(v1, s.opts)
}

// Start begins serving and blocks until shutdown
func (s *Server) Start() error {
	return s.app.Start(s.opts.Cfg.ListenAddr)
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

// ServeHTTP makes the server usable with httptest
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
