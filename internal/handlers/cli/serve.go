package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/x/chflow"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v3"
)

// feedRefreshInterval re-renders the terminal feed so relative times stay
// current between updates.
const feedRefreshInterval = time.Second

// serveCommand runs the feed session and the HTTP API until SIGINT or
// SIGTERM.
//
//	chainscope serve --address :8080
func serveCommand(feedService FeedService, server HTTPServer, defaultAddr string) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Runs the live transaction feed and serves it with the explorer views over HTTP.",
		Usage:       "Starts the feed and the HTTP API. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "address",
				Usage: "HTTP listen address",
				Value: defaultAddr,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := feedService.Start(ctx); err != nil {
				return err
			}
			defer feedService.Close()

			addr := c.String("address")
			logger.Info(ctx, "http server listening", "http.address", addr)

			return server.Run(ctx, addr)
		},
	}
}

// feedCommand renders the live window in place until interrupted.
//
//	chainscope feed
func feedCommand(feedService FeedService) *cli.Command {
	return &cli.Command{
		Name:        "feed",
		Description: "Renders the live transaction feed in the terminal.",
		Usage:       "Shows the most recent transactions as they are committed. Stop with Ctrl+C.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			updates := make(chan feed.Window, 1)
			unregister := feedService.OnUpdate(func(w feed.Window) {
				chflow.Offer(updates, w)
			})
			defer unregister()

			if err := feedService.Start(ctx); err != nil {
				return err
			}
			defer feedService.Close()

			render := func(w feed.Window) string {
				var notice *feed.Notification
				if n, ok := feedService.Notice(); ok {
					notice = &n
				}
				return renderWindow(w, notice, time.Now())
			}

			area, err := pterm.DefaultArea.Start(render(feedService.Snapshot()))
			if err != nil {
				return err
			}
			defer func() { _ = area.Stop() }()

			ticker := time.NewTicker(feedRefreshInterval)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return nil
				case w := <-updates:
					area.Update(render(w))
				case <-ticker.C:
					area.Update(render(feedService.Snapshot()))
				}
			}
		},
	}
}
