// Package config loads chainscope's settings from CHAINSCOPE_* environment
// variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/chainscope/internal/pkg/format"
	"github.com/gabapcia/chainscope/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

const Prefix = "CHAINSCOPE"

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Redis struct {
	Address  string `envconfig:"ADDRESS" default:"localhost:6379" validate:"required"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
}

type Config struct {
	RPCAddress       string `envconfig:"RPC_ADDRESS" default:"https://alphatestnet.surge.dev" validate:"required,url"`
	WebsocketAddress string `envconfig:"WEBSOCKET_ADDRESS" validate:"omitempty,url"`
	RestAddress      string `envconfig:"REST_ADDRESS" default:"https://api-alphatestnet.surge.dev" validate:"required,url"`
	IndexerAddress   string `envconfig:"INDEXER_ADDRESS" default:"https://index.devnet.surge.dev" validate:"required,url"`
	HTTPAddress      string `envconfig:"HTTP_ADDRESS" default:":8080" validate:"required"`

	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"10s" validate:"gt=0"`
	RequestRetries int           `envconfig:"REQUEST_RETRIES" default:"2" validate:"gte=0"`

	LogLevel         string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	ServiceName      string `envconfig:"SERVICE_NAME" default:"chainscope" validate:"required"`

	FeedMaxRows      int    `envconfig:"FEED_MAX_ROWS" default:"100" validate:"gt=0"`
	FeedBacklogLimit int    `envconfig:"FEED_BACKLOG_LIMIT" default:"100" validate:"gt=0"`
	Denom            string `envconfig:"DENOM" default:"surg" validate:"required"`
	ChainID          string `envconfig:"CHAIN_ID" default:"surge-alphatestnet" validate:"required"`

	CacheBackend string        `envconfig:"CACHE_BACKEND" default:"memory" validate:"oneof=memory redis"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"24h" validate:"gte=0"`
	Redis        Redis         `envconfig:"REDIS"`
}

// Load reads the environment, fills derived values and validates the result.
// Endpoints without a scheme get https://, and a missing websocket address
// is derived from the RPC address.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.RPCAddress = normalizeEndpoint(cfg.RPCAddress)
	cfg.RestAddress = normalizeEndpoint(cfg.RestAddress)
	cfg.IndexerAddress = normalizeEndpoint(cfg.IndexerAddress)
	if cfg.WebsocketAddress == "" {
		cfg.WebsocketAddress = format.ReplaceHTTPToWebsocket(cfg.RPCAddress) + "/websocket"
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func normalizeEndpoint(s string) string {
	if s == "" {
		return ""
	}
	return format.RemoveTrailingSlash(format.NormalizeURL(s))
}
