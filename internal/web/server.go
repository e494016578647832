// ABOUTME: Browser viewer for headlines served with gin
// ABOUTME: Renders the nav bar, search form, status box, and cards for each request

package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/feed"
)

//go:embed templates/*.html
var templateFS embed.FS

// Options configures a Server.
type Options struct {
	Searcher  feed.Searcher
	Renderer  *card.Renderer
	Nav       []feed.NavItem
	SeedTopic string
	Logger    *log.Logger
}

// Server serves the viewer page and its JSON API.
type Server struct {
	opts    Options
	engine  *gin.Engine
	page    *template.Template
	metrics *metrics
}

// New builds the gin engine and its routes.
func New(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = card.NewRenderer(nil, nil)
	}

	s := &Server{
		opts:    opts,
		page:    template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")),
		metrics: newMetrics(),
	}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))

	r.GET("/", s.handleIndex)
	r.GET("/api/search", s.handleSearch)
	r.GET("/api/topics", s.handleTopics)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	s.engine = r
	return s
}

// Handler returns the routed engine.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("serving", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve %s: %w", addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}
}

func (s *Server) session(requestID string) (*feed.Controller, *feed.Board) {
	return feed.NewSession(feed.Options{
		Searcher:  s.opts.Searcher,
		Renderer:  s.opts.Renderer,
		SeedTopic: s.opts.SeedTopic,
		Logger:    s.opts.Logger.With("http_request", requestID),
	}, s.opts.Nav)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set("request_id", id)
		start := time.Now()

		c.Next()

		s.opts.Logger.Debug("http",
			"request", id,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
		)
	}
}
