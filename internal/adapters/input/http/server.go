// Package http serves the Hue bridge REST API.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"emulated-hue/internal/ports"
)

const (
	maxRequestBodySize = 64 << 10
	shutdownTimeout    = 5 * time.Second
)

type Server struct {
	bridge ports.BridgePort
}

func NewServer(bridge ports.BridgePort) *Server {
	return &Server{bridge: bridge}
}

// Handler returns the routed handler, including middleware.
func (s *Server) Handler() http.Handler {
	return s.buildRouter()
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", addr).Msg("Hue API listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
