// Package http exposes the session services as a JSON API under /api,
// delivering refresh tokens in an HTTP-only cookie.
package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/logging"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// Settings tune the router. RefreshTTL sets the refresh cookie lifetime.
type Settings struct {
	ServiceName        string
	CORSAllowedOrigins []string
	CookieSecure       bool
	RefreshTTL         time.Duration
	RequestsPerMinute  int
}

type HTTPServer struct {
	address string
	engine  *gin.Engine
	logger  logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, sessions SessionService, resets ResetService, s Settings) *HTTPServer {
	logger := l.With("module", "http_server")
	return &HTTPServer{
		address: a,
		engine:  NewRouter(logger, sessions, resets, s),
		logger:  logger,
	}
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(l logging.Logger, sessions SessionService, resets ResetService, s Settings) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	if s.ServiceName == "" {
		s.ServiceName = "sessionkeeper"
	}

	router.Use(
		gin.Recovery(),
		otelgin.Middleware(s.ServiceName),
		RequestLogger(l),
		CORS(s.CORSAllowedOrigins),
		NewRateLimiter(s.RequestsPerMinute).Handler(),
	)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	h := &Handler{sessions: sessions, resets: resets, cookieSecure: s.CookieSecure, refreshTTL: s.RefreshTTL}
	h.Register(router.Group("/api"))

	return router
}

func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves on the configured address until ctx is done.
func (s *HTTPServer) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, lis)
}

// Serve serves on lis and shuts down gracefully when ctx is done.
func (s *HTTPServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info(ctx, "Starting HTTP server", "address", lis.Addr().String())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
