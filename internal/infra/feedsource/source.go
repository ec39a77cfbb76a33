// Package feedsource assembles the live feed's data source from the chain
// indexer (backlog rows), the Tendermint RPC (chain-wide count) and the
// websocket subscription (live stream).
package feedsource

import (
	"context"
	"slices"
	"time"

	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/infra/chain/tendermint"
	"github.com/gabapcia/chainscope/internal/infra/indexer"
	"github.com/gabapcia/chainscope/internal/pkg/format"

	"golang.org/x/sync/errgroup"
)

// CountQuery matches every committed transaction.
const CountQuery = "tx.height>0"

type (
	TxIndex interface {
		LatestTransactions(ctx context.Context, order string, limit int) ([]indexer.Transaction, error)
	}

	TxSearcher interface {
		TxSearch(ctx context.Context, p tendermint.SearchParams) (tendermint.TxSearchResponse, error)
	}

	Subscriber interface {
		Subscribe(ctx context.Context) (<-chan feed.RawTxEvent, error)
	}
)

type source struct {
	index      TxIndex
	searcher   TxSearcher
	subscriber Subscriber
}

var _ feed.Source = (*source)(nil)

func New(index TxIndex, searcher TxSearcher, subscriber Subscriber) *source {
	return &source{
		index:      index,
		searcher:   searcher,
		subscriber: subscriber,
	}
}

// FetchBacklog loads the indexer page and the chain-wide count concurrently.
// Either failure fails the whole backlog.
func (s *source) FetchBacklog(ctx context.Context, params feed.BacklogParams) (feed.Backlog, error) {
	var (
		txs   []indexer.Transaction
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		txs, err = s.index.LatestTransactions(gctx, string(params.Order), params.Limit)
		return err
	})
	g.Go(func() error {
		res, err := s.searcher.TxSearch(gctx, tendermint.SearchParams{
			Query:   CountQuery,
			Page:    1,
			PerPage: 10,
			OrderBy: tendermint.OrderDesc,
		})
		if err != nil {
			return err
		}
		total = int64(res.TotalCount)
		return nil
	})
	if err := g.Wait(); err != nil {
		return feed.Backlog{}, err
	}

	items := make([]feed.DecodedTx, 0, len(txs))
	for _, tx := range txs {
		items = append(items, toDecodedTx(tx))
	}
	sortNewestFirst(items)

	return feed.Backlog{Items: items, TotalCount: total}, nil
}

func (s *source) Subscribe(ctx context.Context) (<-chan feed.RawTxEvent, error) {
	return s.subscriber.Subscribe(ctx)
}

func toDecodedTx(tx indexer.Transaction) feed.DecodedTx {
	return feed.DecodedTx{
		Hash:             tx.Hash,
		Height:           tx.BlockHeight(),
		Timestamp:        format.NormalizeTimestamp(tx.Timestamp),
		SenderAddress:    tx.Sender,
		RecipientAddress: tx.Receiver,
		ResultCode:       tx.Code,
		MessageSummary:   tx.MethodName,
	}
}

// sortNewestFirst orders by timestamp, then height, both descending. Rows
// with unparseable timestamps keep their relative order at the end.
func sortNewestFirst(items []feed.DecodedTx) {
	parsed := make(map[string]time.Time, len(items))
	for _, it := range items {
		if t, err := time.Parse(time.RFC3339Nano, it.Timestamp); err == nil {
			parsed[it.Timestamp] = t
		}
	}

	slices.SortStableFunc(items, func(a, b feed.DecodedTx) int {
		ta, okA := parsed[a.Timestamp]
		tb, okB := parsed[b.Timestamp]

		switch {
		case okA && !okB:
			return -1
		case !okA && okB:
			return 1
		case okA && okB && !ta.Equal(tb):
			return tb.Compare(ta)
		}

		switch {
		case a.Height > b.Height:
			return -1
		case a.Height < b.Height:
			return 1
		}
		return 0
	})
}
