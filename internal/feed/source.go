package feed

import (
	"context"
	"errors"
)

// ErrSubscriptionClosed is reported when a live subscription ends while its
// session is still running.
var ErrSubscriptionClosed = errors.New("subscription closed")

// Order is the sort order requested from the backlog.
type Order string

// NewestFirst orders by timestamp, descending.
const NewestFirst Order = "timestamp.desc"

// BacklogParams selects the backlog page.
type BacklogParams struct {
	Order Order
	Limit int
}

// Backlog is the one-shot page of recent transactions plus the chain-wide
// transaction count.
type Backlog struct {
	Items      []DecodedTx
	TotalCount int64
}

// Attribute is one key/value pair of an ABCI event.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Event is an ABCI event emitted while executing a transaction.
type Event struct {
	Type       string      `json:"type"`
	Attributes []Attribute `json:"attributes"`
}

// TxResult is the execution result carried by a Tx event.
type TxResult struct {
	Code   uint32  `json:"code"`
	Log    string  `json:"log"`
	Events []Event `json:"events"`
}

// RawTxEvent is a transaction as delivered by the live subscription, before
// decoding. Tx holds the protobuf-encoded transaction.
type RawTxEvent struct {
	Height int64
	Hash   []byte
	Tx     []byte
	Result TxResult
}

// Source provides the backlog and the live stream of a chain.
type Source interface {
	// FetchBacklog returns the most recent transactions, ordered as
	// requested, and the total transaction count.
	FetchBacklog(ctx context.Context, params BacklogParams) (Backlog, error)

	// Subscribe opens a live stream of committed transactions. The channel
	// is closed when ctx is canceled or the connection is lost.
	Subscribe(ctx context.Context) (<-chan RawTxEvent, error)
}

// Decoder turns a raw event into a feed row. It must never fail.
type Decoder interface {
	Decode(ev RawTxEvent) DecodedTx
}
