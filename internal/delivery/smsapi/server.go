// Package smsapi serves the send-sms function used by the monitor's SMS gateway.
package smsapi

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"vplmon/config"
	"vplmon/internal/delivery"
	"vplmon/internal/delivery/middleware"
	"vplmon/internal/delivery/smsapi/handler"
	"vplmon/internal/domain/lifecycle"
	"vplmon/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
)

type smsServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the send-sms server
type ServerParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	SendSMSHandler *handler.SendSMSHandler
}

// NewServer creates the send-sms HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &smsServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: newEcho(params),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(params.Logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(params.Logger, params.Cfg)
	e.Use(loggerMiddleware.Handle)

	// The dashboard calls this from the browser
	e.Use(echomiddleware.CORS())
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	e.Any("/send-sms", params.SendSMSHandler.Handle)

	return e
}

// Serve starts the send-sms HTTP server
func (s *smsServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.SMSGateway.Port))
	s.logger.Info("Starting send-sms HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *smsServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down send-sms HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
