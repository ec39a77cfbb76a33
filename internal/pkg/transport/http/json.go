package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/gabapcia/chainscope/internal/pkg/transport"

	"github.com/hashicorp/go-retryablehttp"
)

// GetJSON issues a GET to endpoint with the given query parameters and
// decodes the JSON response body into out. Transport failures, non-2xx
// statuses and malformed bodies are returned as *transport.NetworkError
// tagged with op.
func GetJSON(ctx context.Context, client *retryablehttp.Client, op, endpoint string, query url.Values, out any) error {
	target := endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return transport.NewNetworkError(op, endpoint, 0, err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := client.Do(req)
	if err != nil {
		return transport.NewNetworkError(op, endpoint, 0, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return transport.NewNetworkError(op, endpoint, res.StatusCode, transport.ErrUnexpectedStatus)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return transport.NewNetworkError(op, endpoint, res.StatusCode, err)
	}

	return nil
}
