// Package server wires the goal handlers, the static responder and the
// middleware stack into an HTTP server.
//
// Routes:
//   - GET /       index page with the current goal as title
//   - POST /goal  replace the goal, redirect to /
//   - GET /health liveness probe
//   - anything else is looked up in the public directory
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"goal-server/internal/config"
	"goal-server/internal/goals"
)

type Server struct {
	cfg    config.ServerConfig
	store  *goals.Store
	logger *zerolog.Logger
	http   *http.Server
}

func New(cfg *config.Config, store *goals.Store, logger *zerolog.Logger) *Server {
	s := &Server{
		cfg:    cfg.Server,
		store:  store,
		logger: logger,
	}
	s.http = &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: s.handler(cfg.CORS),
	}
	return s
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handler(corsCfg config.CORSConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", goals.IndexHandler(s.store, s.logger))
	mux.HandleFunc("POST /goal", goals.UpdateGoalHandler(s.store, s.logger))

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	mux.Handle("/", StaticHandler(s.cfg.PublicDir))

	c := cors.New(cors.Options{
		AllowedOrigins: corsCfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	var h http.Handler = c.Handler(mux)
	h = accessLog(h)
	h = requestID(h)
	h = hlog.NewHandler(*s.logger)(h)
	return h
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully within the configured shutdown timeout.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info().Str("addr", ln.Addr().String()).Msg("server running")
	s.logger.Info().Msg(browseURL(ln.Addr()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	s.logger.Info().Msg("shutting down")
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func browseURL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String()
	}
	if ip := net.ParseIP(host); host == "" || (ip != nil && ip.IsUnspecified()) {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port)
}
