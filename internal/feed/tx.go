package feed

import (
	"fmt"

	"github.com/gabapcia/chainscope/internal/pkg/types"
)

// DecodedTx is one row of the live transaction feed.
type DecodedTx struct {
	Hash             types.HexBytes `json:"hash"`
	Height           int64          `json:"height"`
	Timestamp        string         `json:"timestamp"` // RFC 3339, UTC
	SenderAddress    string         `json:"sender_address"`
	RecipientAddress string         `json:"recipient_address"`
	Amount           string         `json:"amount"`
	ResultCode       uint32         `json:"result_code"`
	MessageSummary   string         `json:"message_summary"`
	Memo             string         `json:"memo"`
}

// State is the lifecycle stage of a feed window.
type State uint8

const (
	// StateEmpty means neither the backlog nor any live event has arrived.
	StateEmpty State = iota
	// StateSeeded means the backlog was applied and no live event was accepted yet.
	StateSeeded
	// StateLive means at least one live event was accepted.
	StateLive
)

func (s State) String() string {
	switch s {
	case StateSeeded:
		return "seeded"
	case StateLive:
		return "live"
	default:
		return "empty"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "empty":
		*s = StateEmpty
	case "seeded":
		*s = StateSeeded
	case "live":
		*s = StateLive
	default:
		return fmt.Errorf("unknown feed state %q", text)
	}
	return nil
}

// Window is an immutable copy of the feed: newest first, unique by hash and
// bounded by the reconciler's row limit.
type Window struct {
	Items      []DecodedTx `json:"items"`
	TotalCount int64       `json:"total_count"`
	State      State       `json:"state"`
}

// Loading reports whether nothing has been received yet.
func (w Window) Loading() bool {
	return w.State == StateEmpty
}

// Head returns the newest item, if any.
func (w Window) Head() (DecodedTx, bool) {
	if len(w.Items) == 0 {
		return DecodedTx{}, false
	}

	return w.Items[0], true
}
