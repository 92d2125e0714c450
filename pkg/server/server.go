// Package server provides the loopback diagnostics HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/mchmarny/jellmachine/pkg/logger"
	"github.com/mchmarny/jellmachine/pkg/metric"
)

const (
	// DefaultHost binds diagnostics to loopback only.
	DefaultHost = "127.0.0.1"

	// DefaultPort is the default diagnostics port.
	DefaultPort = 9876

	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 10 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request
	// when keep-alives are enabled.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultShutdownTimeout bounds graceful shutdown once the app quits.
	DefaultShutdownTimeout = 2 * time.Second

	// DefaultMaxHeaderBytes limits request header size.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)

// Server serves diagnostics endpoints for the running shell.
type Server interface {
	// Serve starts the HTTP server and blocks until the context is canceled.
	// Returns nil on graceful shutdown.
	Serve(ctx context.Context) error

	// IsRunning returns true while the socket is bound and accepting connections.
	IsRunning() bool

	// Addr returns the bound address, or "" when not running.
	Addr() string
}

type server struct {
	mux             *http.ServeMux
	host            string
	port            int
	readTimeout     time.Duration
	writeTimeout    time.Duration
	idleTimeout     time.Duration
	shutdownTimeout time.Duration
	maxHeaderBytes  int
	errLog          *log.Logger
	mu              sync.RWMutex // protects running and addr
	running         bool
	addr            string
}

// Option is a functional option for configuring the Server.
type Option func(*server)

// WithHost sets the interface to bind. Defaults to loopback.
func WithHost(host string) Option {
	return func(s *server) { s.host = host }
}

// WithPort sets the port number. Port 0 picks a free port.
func WithPort(port int) Option {
	return func(s *server) { s.port = port }
}

// WithReadTimeout sets the maximum duration for reading the entire request.
func WithReadTimeout(d time.Duration) Option {
	return func(s *server) { s.readTimeout = d }
}

// WithWriteTimeout sets the maximum duration before timing out writes of the response.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *server) { s.writeTimeout = d }
}

// WithIdleTimeout sets the keep-alive idle timeout.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *server) { s.idleTimeout = d }
}

// WithShutdownTimeout sets the grace period for in-flight requests on shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *server) { s.shutdownTimeout = d }
}

// WithMaxHeaderBytes sets the maximum number of bytes to read from request headers.
func WithMaxHeaderBytes(n int) Option {
	return func(s *server) { s.maxHeaderBytes = n }
}

// WithHandler registers a handler for the specified pattern.
// Multiple handlers can be registered by calling this option multiple times.
func WithHandler(pattern string, handler http.Handler) Option {
	return func(s *server) {
		s.mux.Handle(pattern, handler)
	}
}

// WithSimpleHealth adds /healthz, which always returns 200 "ok" while the
// process is up.
func WithSimpleHealth() Option {
	return func(s *server) {
		s.mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ok"))
		})
	}
}

// WithMetrics exposes the gatherer's metrics at /metrics.
func WithMetrics(reg prometheus.Gatherer) Option {
	return func(s *server) {
		s.mux.Handle("/metrics", metric.GetHandlerForRegistry(reg))
	}
}

// New creates a diagnostics server with the provided options.
//
// Example:
//
//	srv := server.New(
//	    server.WithPort(9876),
//	    server.WithMetrics(reg),
//	    server.WithSimpleHealth(),
//	)
func New(opts ...Option) Server {
	s := &server{
		host:            DefaultHost,
		port:            DefaultPort,
		readTimeout:     DefaultReadTimeout,
		writeTimeout:    DefaultWriteTimeout,
		idleTimeout:     DefaultIdleTimeout,
		shutdownTimeout: DefaultShutdownTimeout,
		maxHeaderBytes:  DefaultMaxHeaderBytes,
		mux:             http.NewServeMux(),
		errLog:          logger.NewLogLogger(slog.LevelError),
	}

	for _, opt := range opts {
		opt(s)
	}

	slog.Debug("diagnostics server initialized",
		"host", s.host,
		"port", s.port)

	return s
}

// IsRunning returns true if the server is accepting connections.
func (s *server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.running
}

// Addr returns the bound listener address.
func (s *server) Addr() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.addr
}

// Serve binds the socket and serves until ctx is canceled, then shuts down
// within the shutdown timeout. http.ErrServerClosed is not an error.
func (s *server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:           net.JoinHostPort(s.host, strconv.Itoa(s.port)),
		Handler:        s.mux,
		ReadTimeout:    s.readTimeout,
		WriteTimeout:   s.writeTimeout,
		IdleTimeout:    s.idleTimeout,
		MaxHeaderBytes: s.maxHeaderBytes,
		ErrorLog:       s.errLog,
	}

	// bind first so running only flips once the socket exists
	listener, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}

	slog.Info("starting diagnostics server", "addr", listener.Addr().String())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.mu.Lock()
		s.running = true
		s.addr = listener.Addr().String()
		s.mu.Unlock()

		defer func() {
			s.mu.Lock()
			s.running = false
			s.addr = ""
			s.mu.Unlock()
		}()

		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		shutdownStart := time.Now()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("diagnostics server shutdown error", "error", err)
		}

		slog.Info("diagnostics server shutdown complete", "duration", time.Since(shutdownStart))

		return nil
	})

	return g.Wait()
}
