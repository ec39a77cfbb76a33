// Package explorer builds the read-only explorer views (transaction,
// account, block, proposals and latest blocks) from the Tendermint RPC and
// the Cosmos REST gateway.
//
// Collaborator failures are returned unchanged, which for the bundled
// clients means *transport.NetworkError. Invalid input is rejected before
// any call with ErrInvalidAddress, ErrInvalidHash, ErrInvalidHeight or
// ErrInvalidPage.
package explorer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/chainscope/internal/infra/chain/lcd"
	"github.com/gabapcia/chainscope/internal/infra/chain/tendermint"
	"github.com/gabapcia/chainscope/internal/pkg/types"
	"github.com/gabapcia/chainscope/internal/txdecode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrInvalidAddress = errors.New("invalid address")
	ErrInvalidHash    = errors.New("invalid transaction hash")
	ErrInvalidHeight  = errors.New("invalid block height")
	ErrInvalidPage    = errors.New("invalid page")
)

const tracerName = "github.com/gabapcia/chainscope/internal/explorer"

type (
	ChainClient interface {
		Tx(ctx context.Context, hash types.HexBytes) (tendermint.TxResponse, error)
		Block(ctx context.Context, height int64) (tendermint.BlockResponse, error)
		TxSearch(ctx context.Context, p tendermint.SearchParams) (tendermint.TxSearchResponse, error)
		Blockchain(ctx context.Context, minHeight, maxHeight int64) (tendermint.BlockchainResponse, error)
	}

	RestClient interface {
		Account(ctx context.Context, address string) (lcd.Account, error)
		Balances(ctx context.Context, address string) ([]types.Coin, error)
		Delegations(ctx context.Context, address string) ([]lcd.DelegationResponse, error)
		Proposals(ctx context.Context, offset, limit int) (lcd.ProposalsPage, error)
	}

	// BlockTimeCache remembers block timestamps, which never change once a
	// block is committed.
	BlockTimeCache interface {
		Get(ctx context.Context, height int64) (time.Time, bool, error)
		Set(ctx context.Context, height int64, t time.Time) error
	}
)

type Service interface {
	Transaction(ctx context.Context, hash string) (TxDetail, error)
	Account(ctx context.Context, address string) (AccountDetail, error)
	Block(ctx context.Context, height int64) (BlockDetail, error)
	Proposals(ctx context.Context, page, perPage int) (ProposalsPage, error)
	LatestBlocks(ctx context.Context) (LatestBlocks, error)
}

type config struct {
	cache      BlockTimeCache
	accountTxs int
	maxPerPage int
	tracer     trace.Tracer
}

type Option func(*config)

// WithBlockTimeCache caches block timestamps. Without it every transaction
// view fetches its block.
func WithBlockTimeCache(cache BlockTimeCache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

// WithAccountTxs sets how many transactions the account view lists.
func WithAccountTxs(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.accountTxs = n
		}
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(c *config) {
		if tracer != nil {
			c.tracer = tracer
		}
	}
}

type service struct {
	chain   ChainClient
	rest    RestClient
	decoder *txdecode.Decoder

	cache      BlockTimeCache
	accountTxs int
	maxPerPage int
	tracer     trace.Tracer

	chainIDMu sync.RWMutex
	chainID   string
}

var _ Service = (*service)(nil)

func New(chain ChainClient, rest RestClient, decoder *txdecode.Decoder, opts ...Option) *service {
	cfg := config{
		accountTxs: 30,
		maxPerPage: 100,
		tracer:     otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		chain:      chain,
		rest:       rest,
		decoder:    decoder,
		cache:      cfg.cache,
		accountTxs: cfg.accountTxs,
		maxPerPage: cfg.maxPerPage,
		tracer:     cfg.tracer,
	}
}
