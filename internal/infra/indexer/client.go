// Package indexer is a client for the chain indexer's REST API, which serves
// recently indexed transactions.
package indexer

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/gabapcia/chainscope/internal/pkg/logger"
	transporthttp "github.com/gabapcia/chainscope/internal/pkg/transport/http"
	"github.com/gabapcia/chainscope/internal/pkg/types"

	"github.com/hashicorp/go-retryablehttp"
)

// Transaction is one indexed transaction. Height is accepted both as a JSON
// number and as a numeric string.
type Transaction struct {
	Hash       types.HexBytes `json:"hash"`
	Height     json.Number    `json:"height"`
	Timestamp  string         `json:"timestamp"`
	Sender     string         `json:"sender"`
	Receiver   string         `json:"receiver"`
	MethodName string         `json:"method_name"`
	Code       uint32         `json:"code"`
}

// row is the wire form of Transaction. The hash stays a string so one bad
// row does not fail the whole page.
type row struct {
	Hash       string      `json:"hash"`
	Height     json.Number `json:"height"`
	Timestamp  string      `json:"timestamp"`
	Sender     string      `json:"sender"`
	Receiver   string      `json:"receiver"`
	MethodName string      `json:"method_name"`
	Code       uint32      `json:"code"`
}

// BlockHeight returns Height as an integer, or 0 when it is missing or not
// an integer.
func (t Transaction) BlockHeight() int64 {
	h, err := t.Height.Int64()
	if err != nil {
		return 0
	}
	return h
}

type client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// NewClient returns a client for the indexer at baseURL.
func NewClient(httpClient *retryablehttp.Client, baseURL string) *client {
	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// LatestTransactions returns up to limit transactions in the given order,
// e.g. "timestamp.desc". Rows whose hash is missing or not hexadecimal are
// skipped.
func (c *client) LatestTransactions(ctx context.Context, order string, limit int) ([]Transaction, error) {
	query := url.Values{
		"order": {order},
		"limit": {strconv.Itoa(limit)},
	}

	var rows []row
	if err := transporthttp.GetJSON(ctx, c.httpClient, "indexer.transactions", c.baseURL+"/transactions", query, &rows); err != nil {
		return nil, err
	}

	txs := make([]Transaction, 0, len(rows))
	for _, r := range rows {
		hash, err := types.ParseHexBytes(r.Hash)
		if err != nil {
			logger.Warn(ctx, "indexer row skipped", "tx.hash", r.Hash, "error", err)
			continue
		}

		txs = append(txs, Transaction{
			Hash:       hash,
			Height:     r.Height,
			Timestamp:  r.Timestamp,
			Sender:     r.Sender,
			Receiver:   r.Receiver,
			MethodName: r.MethodName,
			Code:       r.Code,
		})
	}

	return txs, nil
}
