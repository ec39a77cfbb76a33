// Package txdecode decodes protobuf-encoded Cosmos SDK transactions without
// generated code, reading the wire format with protowire. It turns raw
// subscription events into feed rows and offers the pieces (messages, fee,
// memo, transfer) the explorer views are built from.
package txdecode

import (
	"context"
	"crypto/sha256"
	"time"

	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/types"
)

type config struct {
	denom string
	now   func() time.Time
}

// Option configures a Decoder.
type Option func(*config)

// WithDenom sets the denom of the zero amount. Defaults to DefaultDenom.
func WithDenom(denom string) Option {
	return func(c *config) {
		c.denom = denom
	}
}

// WithClock replaces time.Now as the source of observation timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// Decoder decodes transactions. It is safe for concurrent use.
type Decoder struct {
	messages *MessageDecoder
	denom    string
	now      func() time.Time
}

var _ feed.Decoder = (*Decoder)(nil)

// NewDecoder returns a Decoder backed by NewMessageDecoder.
func NewDecoder(opts ...Option) *Decoder {
	cfg := config{
		denom: DefaultDenom,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Decoder{
		messages: NewMessageDecoder(),
		denom:    cfg.denom,
		now:      cfg.now,
	}
}

// Denom returns the denom used for zero amounts.
func (d *Decoder) Denom() string {
	return d.denom
}

// DecodeTx parses b and decodes each of its messages.
func (d *Decoder) DecodeTx(b []byte) (Tx, error) {
	raw, err := ParseTx(b)
	if err != nil {
		return Tx{}, err
	}

	tx := Tx{
		Messages: make([]Message, 0, len(raw.Messages)),
		Memo:     raw.Memo,
		Fee:      raw.Fee,
		GasLimit: raw.GasLimit,
	}
	for _, m := range raw.Messages {
		tx.Messages = append(tx.Messages, d.messages.Decode(m.TypeURL, m.Value))
	}

	return tx, nil
}

// Decode turns a live event into a feed row. It never fails: when the
// transaction bytes are malformed the row keeps only its identity, height,
// result code and timestamp. A missing hash is computed as the SHA-256 of
// the transaction bytes, which is how Tendermint hashes transactions.
func (d *Decoder) Decode(ev feed.RawTxEvent) feed.DecodedTx {
	hash := types.HexBytes(ev.Hash)
	if hash.IsEmpty() && len(ev.Tx) > 0 {
		sum := sha256.Sum256(ev.Tx)
		hash = sum[:]
	}

	out := feed.DecodedTx{
		Hash:       hash,
		Height:     ev.Height,
		Timestamp:  d.now().UTC().Format(time.RFC3339Nano),
		ResultCode: ev.Result.Code,
	}

	tx, err := d.DecodeTx(ev.Tx)
	if err != nil {
		logger.Debug(context.Background(), "transaction not decoded",
			"tx.hash", hash,
			"tx.height", ev.Height,
			"error", err,
		)
		return out
	}

	transfer := ExtractTransfer(ev.Result.Events, d.denom)
	out.SenderAddress = transfer.Sender
	out.RecipientAddress = transfer.Recipient
	out.Amount = transfer.Amount
	out.MessageSummary = tx.Summary()
	out.Memo = SanitizeMemo(tx.Memo)

	return out
}
