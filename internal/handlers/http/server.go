// Package http exposes the live feed and the explorer views over HTTP with
// gin. Errors are answered as {"title": ..., "description": ...}, the same
// shape as feed notifications.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gabapcia/chainscope/internal/explorer"
	"github.com/gabapcia/chainscope/internal/feed"

	"github.com/gin-gonic/gin"
)

type (
	FeedService interface {
		Snapshot() feed.Window
		OnUpdate(fn func(feed.Window)) (unregister func())
		Notice() (feed.Notification, bool)
		DismissNotice()
	}

	ExplorerService interface {
		Transaction(ctx context.Context, hash string) (explorer.TxDetail, error)
		Account(ctx context.Context, address string) (explorer.AccountDetail, error)
		Block(ctx context.Context, height int64) (explorer.BlockDetail, error)
		Proposals(ctx context.Context, page, perPage int) (explorer.ProposalsPage, error)
		LatestBlocks(ctx context.Context) (explorer.LatestBlocks, error)
	}
)

type config struct {
	shutdownTimeout   time.Duration
	readHeaderTimeout time.Duration
	defaultPerPage    int
}

type Option func(*config)

// WithShutdownTimeout bounds how long Run waits for in-flight requests
// once its context is done.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.shutdownTimeout = d
		}
	}
}

type Server struct {
	engine *gin.Engine
	feed   FeedService
	views  ExplorerService

	shutdownTimeout   time.Duration
	readHeaderTimeout time.Duration
	defaultPerPage    int
}

func NewServer(feedService FeedService, views ExplorerService, opts ...Option) *Server {
	cfg := config{
		shutdownTimeout:   10 * time.Second,
		readHeaderTimeout: 10 * time.Second,
		defaultPerPage:    10,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Server{
		engine:            gin.New(),
		feed:              feedService,
		views:             views,
		shutdownTimeout:   cfg.shutdownTimeout,
		readHeaderTimeout: cfg.readHeaderTimeout,
		defaultPerPage:    cfg.defaultPerPage,
	}
	s.engine.Use(gin.Recovery(), requestLogger(), errorResponder())
	s.routes()

	return s
}

func (s *Server) routes() {
	s.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := s.engine.Group("/api/v1")
	v1.GET("/txs", s.getWindow)
	v1.GET("/txs/stream", s.streamWindow)
	v1.GET("/txs/:hash", s.getTransaction)
	v1.DELETE("/notices", s.dismissNotice)
	v1.GET("/accounts/:address", s.getAccount)
	v1.GET("/blocks", s.getLatestBlocks)
	v1.GET("/blocks/:height", s.getBlock)
	v1.GET("/proposals", s.getProposals)
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves on addr until ctx is done, then shuts down gracefully.
// Request contexts derive from ctx, so open streams end with it.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: s.readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.shutdownTimeout)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	}
}
