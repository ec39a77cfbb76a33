// Package tendermint talks to a Tendermint/CometBFT node: JSON-RPC queries
// over HTTP and live event subscriptions over its websocket endpoint.
package tendermint

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/chainscope/internal/pkg/transport"
	"github.com/gabapcia/chainscope/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/chainscope/internal/pkg/types"
)

// ErrNotFound is returned when the node reports that a transaction or block
// does not exist.
var ErrNotFound = errors.New("not found")

// client is a typed wrapper over the node's JSON-RPC methods.
type client struct {
	conn jsonrpc.Client
}

// NewClient returns a client issuing calls through conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// call invokes method and decodes its result into T. A result that does not
// decode is reported as a NetworkError, like any other bad response.
func call[T any](ctx context.Context, conn jsonrpc.Client, method string, params map[string]any) (T, error) {
	var out T

	raw, err := conn.Call(ctx, method, params)
	if err != nil {
		if errors.Is(err, jsonrpc.ErrProviderReturnedError) && strings.Contains(err.Error(), "not found") {
			return out, fmt.Errorf("%w: %w", ErrNotFound, err)
		}
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, transport.NewNetworkError(method, "", 0, fmt.Errorf("decode result: %w", err))
	}

	return out, nil
}

func (c *client) Status(ctx context.Context) (StatusResponse, error) {
	return call[StatusResponse](ctx, c.conn, "status", nil)
}

// Tx fetches a committed transaction by hash.
func (c *client) Tx(ctx context.Context, hash types.HexBytes) (TxResponse, error) {
	return call[TxResponse](ctx, c.conn, "tx", map[string]any{
		"hash":  base64.StdEncoding.EncodeToString(hash),
		"prove": false,
	})
}

// Block fetches the block at height, or the latest block when height is 0.
func (c *client) Block(ctx context.Context, height int64) (BlockResponse, error) {
	params := map[string]any{}
	if height > 0 {
		params["height"] = strconv.FormatInt(height, 10)
	}

	return call[BlockResponse](ctx, c.conn, "block", params)
}

func (c *client) TxSearch(ctx context.Context, p SearchParams) (TxSearchResponse, error) {
	params := p.toParams()
	params["prove"] = false

	return call[TxSearchResponse](ctx, c.conn, "tx_search", params)
}

func (c *client) BlockSearch(ctx context.Context, p SearchParams) (BlockSearchResponse, error) {
	return call[BlockSearchResponse](ctx, c.conn, "block_search", p.toParams())
}

// Blockchain returns the metas of blocks in [minHeight, maxHeight], newest
// first. Zero bounds let the node pick the latest 20 blocks.
func (c *client) Blockchain(ctx context.Context, minHeight, maxHeight int64) (BlockchainResponse, error) {
	params := map[string]any{}
	if minHeight > 0 {
		params["minHeight"] = strconv.FormatInt(minHeight, 10)
	}
	if maxHeight > 0 {
		params["maxHeight"] = strconv.FormatInt(maxHeight, 10)
	}

	return call[BlockchainResponse](ctx, c.conn, "blockchain", params)
}

// Validators returns one page of the validator set at height (0 = latest).
func (c *client) Validators(ctx context.Context, height int64, page, perPage int) (ValidatorsResponse, error) {
	params := map[string]any{}
	if height > 0 {
		params["height"] = strconv.FormatInt(height, 10)
	}
	if page > 0 {
		params["page"] = strconv.Itoa(page)
	}
	if perPage > 0 {
		params["per_page"] = strconv.Itoa(perPage)
	}

	return call[ValidatorsResponse](ctx, c.conn, "validators", params)
}
