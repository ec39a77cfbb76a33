package tendermint

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/resilience/retry"
	"github.com/gabapcia/chainscope/internal/pkg/transport"
	"github.com/gabapcia/chainscope/internal/pkg/types"
	"github.com/gabapcia/chainscope/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// TxQuery selects every committed transaction.
const TxQuery = "tm.event='Tx'"

const (
	defaultEventBufferSize  = 100
	defaultHandshakeTimeout = 10 * time.Second
	unsubscribeWriteTimeout = time.Second
)

var ErrSubscribeRejected = errors.New("subscription rejected")

type (
	wsRequest struct {
		JsonRPC string         `json:"jsonrpc"`
		ID      string         `json:"id"`
		Method  string         `json:"method"`
		Params  map[string]any `json:"params"`
	}

	wsError struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Data    string `json:"data"`
	}

	wsResponse struct {
		ID     string          `json:"id"`
		Result json.RawMessage `json:"result"`
		Error  *wsError        `json:"error"`
	}

	// eventResult is the result of an event message. Events indexes the
	// attributes of the transaction's events by "type.key".
	eventResult struct {
		Query string `json:"query"`
		Data  struct {
			Type  string `json:"type"`
			Value struct {
				TxResult struct {
					Height Int64  `json:"height"`
					Index  uint32 `json:"index"`
					Tx     []byte `json:"tx"`
					Result struct {
						Code   uint32       `json:"code"`
						Log    string       `json:"log"`
						Events []feed.Event `json:"events"`
					} `json:"result"`
				} `json:"TxResult"`
			} `json:"value"`
		} `json:"data"`
		Events map[string][]string `json:"events"`
	}
)

type subscriberConfig struct {
	query            string
	bufferSize       int
	handshakeTimeout time.Duration
	dialRetry        retry.Retry
}

// SubscriberOption configures NewSubscriber.
type SubscriberOption func(*subscriberConfig)

// WithQuery replaces TxQuery.
func WithQuery(q string) SubscriberOption {
	return func(c *subscriberConfig) {
		c.query = q
	}
}

// WithEventBufferSize sets the capacity of the returned channel.
func WithEventBufferSize(n int) SubscriberOption {
	return func(c *subscriberConfig) {
		c.bufferSize = n
	}
}

// WithHandshakeTimeout bounds the websocket upgrade and the wait for the
// subscribe acknowledgement. Defaults to 10 seconds.
func WithHandshakeTimeout(d time.Duration) SubscriberOption {
	return func(c *subscriberConfig) {
		c.handshakeTimeout = d
	}
}

// WithDialRetry retries the dial and subscribe handshake.
func WithDialRetry(r retry.Retry) SubscriberOption {
	return func(c *subscriberConfig) {
		c.dialRetry = r
	}
}

// Subscriber streams committed transactions from a node's /websocket
// endpoint.
type Subscriber struct {
	endpoint         string
	query            string
	bufferSize       int
	handshakeTimeout time.Duration
	dialer           *websocket.Dialer
	dialRetry        retry.Retry
}

// NewSubscriber returns a Subscriber for endpoint, e.g.
// "wss://rpc.example.com/websocket".
func NewSubscriber(endpoint string, opts ...SubscriberOption) *Subscriber {
	cfg := subscriberConfig{
		query:            TxQuery,
		bufferSize:       defaultEventBufferSize,
		handshakeTimeout: defaultHandshakeTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Subscriber{
		endpoint:         endpoint,
		query:            cfg.query,
		bufferSize:       cfg.bufferSize,
		handshakeTimeout: cfg.handshakeTimeout,
		dialer: &websocket.Dialer{
			HandshakeTimeout: cfg.handshakeTimeout,
		},
		dialRetry: cfg.dialRetry,
	}
}

// Subscribe dials the node and subscribes to the configured query. The
// returned channel closes when ctx is canceled or the connection is lost;
// on the way out the subscriber sends unsubscribe_all and closes the
// connection.
func (s *Subscriber) Subscribe(ctx context.Context) (<-chan feed.RawTxEvent, error) {
	var conn *websocket.Conn

	op := func() error {
		c, err := s.open(ctx)
		if err != nil {
			return err
		}
		conn = c
		return nil
	}

	var err error
	if s.dialRetry != nil {
		err = s.dialRetry.Execute(ctx, op)
	} else {
		err = op()
	}
	if err != nil {
		return nil, err
	}

	events := make(chan feed.RawTxEvent, s.bufferSize)
	done := make(chan struct{})

	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}

		deadline := time.Now().Add(unsubscribeWriteTimeout)
		_ = conn.SetWriteDeadline(deadline)
		_ = conn.WriteJSON(wsRequest{JsonRPC: "2.0", ID: uuid.NewString(), Method: "unsubscribe_all", Params: map[string]any{}})
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	}()

	go func() {
		defer close(events)
		defer close(done)

		s.readLoop(ctx, conn, events)
	}()

	return events, nil
}

// open dials and waits for the subscribe acknowledgement. The wait is
// bounded by the handshake timeout, and cancelling ctx closes the
// connection so a silent node cannot hold it.
func (s *Subscriber) open(ctx context.Context) (*websocket.Conn, error) {
	conn, resp, err := s.dialer.DialContext(ctx, s.endpoint, nil)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		status := 0
		if resp != nil {
			status = resp.StatusCode
		}
		return nil, transport.NewNetworkError("subscribe", s.endpoint, status, err)
	}

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	_ = conn.SetReadDeadline(time.Now().Add(s.handshakeTimeout))
	_ = conn.SetWriteDeadline(time.Now().Add(s.handshakeTimeout))

	id := uuid.NewString()
	req := wsRequest{
		JsonRPC: "2.0",
		ID:      id,
		Method:  "subscribe",
		Params:  map[string]any{"query": s.query},
	}
	if err := conn.WriteJSON(req); err != nil {
		_ = conn.Close()
		return nil, transport.NewNetworkError("subscribe", s.endpoint, 0, handshakeErr(ctx, err))
	}

	for {
		var ack wsResponse
		if err := conn.ReadJSON(&ack); err != nil {
			_ = conn.Close()
			return nil, transport.NewNetworkError("subscribe", s.endpoint, 0, handshakeErr(ctx, err))
		}
		if ack.ID != id {
			continue
		}

		if ack.Error != nil {
			_ = conn.Close()
			err := fmt.Errorf("%w: [%d] %s %s", ErrSubscribeRejected, ack.Error.Code, ack.Error.Message, ack.Error.Data)
			return nil, transport.NewNetworkError("subscribe", s.endpoint, 0, err)
		}

		if !stop() {
			// ctx was cancelled and the connection is already closing.
			return nil, transport.NewNetworkError("subscribe", s.endpoint, 0, ctx.Err())
		}
		_ = conn.SetReadDeadline(time.Time{})
		_ = conn.SetWriteDeadline(time.Time{})
		return conn, nil
	}
}

// handshakeErr prefers the context error over the read error caused by
// closing the connection on cancellation.
func handshakeErr(ctx context.Context, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return fmt.Errorf("%w: %w", ctxErr, err)
	}
	return err
}

func (s *Subscriber) readLoop(ctx context.Context, conn *websocket.Conn, events chan<- feed.RawTxEvent) {
	for {
		var msg wsResponse
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() == nil {
				logger.Warn(ctx, "websocket subscription lost", "ws.endpoint", s.endpoint, "error", err)
			}
			return
		}

		if msg.Error != nil {
			logger.Warn(ctx, "websocket error message", "ws.endpoint", s.endpoint, "ws.error", msg.Error.Message)
			continue
		}

		ev, ok, err := parseTxEvent(msg.Result)
		if err != nil {
			logger.Warn(ctx, "websocket event not decoded", "ws.endpoint", s.endpoint, "error", err)
			continue
		}
		if !ok {
			continue
		}

		if ok := chflow.Send(ctx, events, ev); !ok {
			return
		}
	}
}

// parseTxEvent converts an event message. ok is false for messages that are
// not Tx events, such as the empty result acknowledging a request.
func parseTxEvent(raw json.RawMessage) (feed.RawTxEvent, bool, error) {
	if len(raw) == 0 {
		return feed.RawTxEvent{}, false, nil
	}

	var res eventResult
	if err := json.Unmarshal(raw, &res); err != nil {
		return feed.RawTxEvent{}, false, err
	}
	if res.Data.Type != "tendermint/event/Tx" {
		return feed.RawTxEvent{}, false, nil
	}

	txr := res.Data.Value.TxResult
	ev := feed.RawTxEvent{
		Height: int64(txr.Height),
		Tx:     txr.Tx,
		Result: feed.TxResult{
			Code:   txr.Result.Code,
			Log:    txr.Result.Log,
			Events: txr.Result.Events,
		},
	}

	if hashes := res.Events["tx.hash"]; len(hashes) > 0 {
		if h, err := types.ParseHexBytes(hashes[0]); err == nil {
			ev.Hash = h
		}
	}
	if ev.Height == 0 {
		if heights := res.Events["tx.height"]; len(heights) > 0 {
			ev.Height, _ = strconv.ParseInt(heights[0], 10, 64)
		}
	}

	return ev, true, nil
}
