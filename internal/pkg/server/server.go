package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/guinchoja/backend/internal/pkg/logger"
)

// GracefulServer runs an Echo server until SIGINT/SIGTERM and then drains
// in-flight requests before returning.
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	port            int
	shutdownTimeout time.Duration
	cleanups        []func(context.Context) error
}

// New creates a server with graceful shutdown.
func New(e *echo.Echo, log *logger.ZapLogger, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		logger:          log,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// OnShutdown registers a cleanup to run after the HTTP listener drains,
// in registration order.
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.cleanups = append(s.cleanups, fn)
}

// Start serves until a shutdown signal arrives, then drains and runs the
// registered cleanups.
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		s.logger.Info("starting HTTP server", logger.String("address", addr))

		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	// SIGINT from a terminal, SIGTERM from the orchestrator.
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		s.logger.Info("received shutdown signal", logger.String("signal", sig.String()))
	}

	return s.Shutdown()
}

// Shutdown drains the listener and runs cleanups under the configured
// timeout. Cleanup failures are logged but do not stop later cleanups.
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("server forced to shutdown", logger.Err(err))
		return err
	}

	for _, fn := range s.cleanups {
		if err := fn(ctx); err != nil {
			s.logger.Error("component shutdown failed", logger.Err(err))
		}
	}

	s.logger.Info("server shutdown completed")
	return nil
}
