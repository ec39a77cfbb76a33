package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gabapcia/chainscope/internal/config"
	"github.com/gabapcia/chainscope/internal/explorer"
	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/handlers/cli"
	httpserver "github.com/gabapcia/chainscope/internal/handlers/http"
	"github.com/gabapcia/chainscope/internal/infra/chain/lcd"
	"github.com/gabapcia/chainscope/internal/infra/chain/tendermint"
	"github.com/gabapcia/chainscope/internal/infra/feedsource"
	"github.com/gabapcia/chainscope/internal/infra/indexer"
	"github.com/gabapcia/chainscope/internal/infra/storage/memory"
	"github.com/gabapcia/chainscope/internal/infra/storage/redis"
	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainscope/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/chainscope/internal/pkg/transport/http"
	"github.com/gabapcia/chainscope/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/chainscope/internal/txdecode"
)

const telemetryShutdownTimeout = 5 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, cfg.ServiceName)
		if err != nil {
			return fmt.Errorf("failed to init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.RequestTimeout),
		transporthttp.WithRetryMax(cfg.RequestRetries),
		transporthttp.WithUserAgent(cfg.ServiceName),
	)
	chain := tendermint.NewClient(jsonrpc.NewClient(httpClient, cfg.RPCAddress))
	rest := lcd.NewClient(httpClient, cfg.RestAddress)

	onRetry := func(op string) retry.OnRetryFunc {
		return func(n uint, err error) {
			logger.Warn(ctx, "retrying", "retry.operation", op, "retry.attempt", n+1, "error", err)
		}
	}

	subscriber := tendermint.NewSubscriber(cfg.WebsocketAddress,
		tendermint.WithDialRetry(retry.New(retry.WithOnRetry(onRetry("subscribe.dial")))),
	)
	source := feedsource.New(indexer.NewClient(httpClient, cfg.IndexerAddress), chain, subscriber)

	decoder := txdecode.NewDecoder(txdecode.WithDenom(cfg.Denom))

	feedService := feed.New(source, decoder,
		feed.WithMaxRows(cfg.FeedMaxRows),
		feed.WithBacklogLimit(cfg.FeedBacklogLimit),
		feed.WithRetry(retry.New(retry.WithOnRetry(onRetry("feed.backlog")))),
		feed.WithReconnect(retry.New(
			retry.WithAttempts(0),
			retry.WithMaxDelay(30*time.Second),
			retry.WithOnRetry(onRetry("feed.reconnect")),
		)),
	)

	cache, err := newBlockTimeCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = cache.Close() }()

	views := explorer.New(chain, rest, decoder, explorer.WithBlockTimeCache(cache))

	return cli.Run(ctx, cli.Dependencies{
		Feed:        feedService,
		Explorer:    views,
		Server:      httpserver.NewServer(feedService, views),
		HTTPAddress: cfg.HTTPAddress,
	})
}

type blockTimeCache interface {
	explorer.BlockTimeCache
	io.Closer
}

func newBlockTimeCache(ctx context.Context, cfg config.Config) (blockTimeCache, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendRedis:
		c, err := redis.NewClient(ctx, cfg.Redis.Address, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithChainID(cfg.ChainID),
			redis.WithTTL(cfg.CacheTTL),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return c, nil
	default:
		c, err := memory.NewBlockTimeCache(ctx, memory.WithTTL(cfg.CacheTTL))
		if err != nil {
			return nil, fmt.Errorf("failed to create block time cache: %w", err)
		}
		return c, nil
	}
}
