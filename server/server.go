package server

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"github.com/katalvlaran/hydronet/config"
	"github.com/katalvlaran/hydronet/planner"
)

type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Planner *planner.Planner
}

// Server is the HTTP front of the planner.
type Server struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewEcho builds the echo instance with middleware and routes.
func NewEcho(p *planner.Planner, logger *slog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New(validator.WithRequiredStructEnabled())}
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger).Handle)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	NewHandler(p, logger).RegisterRoutes(e)

	return e
}

// New builds the Server and registers its shutdown with the fx lifecycle.
func New(params Params) *Server {
	e := NewEcho(params.Planner, params.Logger)
	t := params.Config.HTTP.Timeouts
	e.Server.ReadTimeout = t.ReadTimeout
	e.Server.ReadHeaderTimeout = t.ReadHeaderTimeout
	e.Server.WriteTimeout = t.WriteTimeout
	e.Server.IdleTimeout = t.IdleTimeout

	s := &Server{
		cfg:    params.Config,
		logger: params.Logger,
		server: e,
	}
	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// Serve blocks until the server stops. A graceful shutdown returns nil.
func (s *Server) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve http")
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, s.cfg.HTTP.Timeouts.ShutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
