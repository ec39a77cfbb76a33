// Package jsonrpc implements a JSON-RPC 2.0 client over HTTP POST with
// named parameters, the calling convention of Tendermint/CometBFT RPC
// servers. Requests go through a retrying HTTP client and every failure is
// reported as a transport.NetworkError.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gabapcia/chainscope/internal/pkg/transport"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// rpcError is the JSON-RPC error object. CometBFT puts the useful detail
// (e.g. "tx (ABC...) not found") in Data.
type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    string `json:"data"`
}

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string          `json:"jsonrpc"`
	Error   *rpcError       `json:"error"`
	Result  json.RawMessage `json:"result"`
}

// Err returns an error wrapping ErrProviderReturnedError when the response
// carries a JSON-RPC error object.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	if r.Error.Data != "" {
		return fmt.Errorf("%w: [%d] - %s: %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message, r.Error.Data)
	}
	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client calls JSON-RPC methods on a single endpoint.
type Client interface {
	// Call invokes method with named params and returns the raw result.
	Call(ctx context.Context, method string, params map[string]any) (json.RawMessage, error)
}

type client struct {
	endpoint   string
	httpClient *retryablehttp.Client
}

var _ Client = (*client)(nil)

// Call sends a JSON-RPC request. The request id is a fresh UUID. A nil
// params map is sent as an empty object.
func (c *client) Call(ctx context.Context, method string, params map[string]any) (json.RawMessage, error) {
	if params == nil {
		params = map[string]any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, transport.NewNetworkError(method, c.endpoint, 0, err)
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transport.NewNetworkError(method, c.endpoint, 0, err)
	}
	defer res.Body.Close()

	// CometBFT answers RPC-level errors with a 500 and a JSON body, so the
	// body is decoded before the status is judged.
	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			err = transport.ErrUnexpectedStatus
		}
		return nil, transport.NewNetworkError(method, c.endpoint, res.StatusCode, err)
	}

	if err := data.Err(); err != nil {
		return nil, transport.NewNetworkError(method, c.endpoint, res.StatusCode, err)
	}

	return data.Result, nil
}

// NewClient returns a Client that posts to endpoint using httpClient.
func NewClient(httpClient *retryablehttp.Client, endpoint string) *client {
	return &client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}
