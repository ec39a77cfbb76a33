package tendermint

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/chainscope/internal/feed"
	"github.com/gabapcia/chainscope/internal/pkg/types"
)

// Int64 is an integer that Tendermint encodes as a JSON string ("123").
// Plain JSON numbers are accepted as well.
type Int64 int64

// UnmarshalJSON accepts "123", 123, "" and null.
func (i *Int64) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*i = 0
		return nil
	}

	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", s, err)
	}

	*i = Int64(v)
	return nil
}

// MarshalJSON writes the value as a quoted string, as Tendermint does.
func (i Int64) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatInt(int64(i), 10))
}

type (
	// ExecTxResult is the outcome of executing a transaction.
	ExecTxResult struct {
		Code      uint32       `json:"code"`
		Log       string       `json:"log"`
		Info      string       `json:"info"`
		GasWanted Int64        `json:"gas_wanted"`
		GasUsed   Int64        `json:"gas_used"`
		Events    []feed.Event `json:"events"`
		Codespace string       `json:"codespace"`
	}

	// TxResponse is the result of the tx method and each tx_search entry.
	// Tx holds the protobuf-encoded transaction.
	TxResponse struct {
		Hash     types.HexBytes `json:"hash"`
		Height   Int64          `json:"height"`
		Index    uint32         `json:"index"`
		TxResult ExecTxResult   `json:"tx_result"`
		Tx       []byte         `json:"tx"`
	}

	BlockID struct {
		Hash types.HexBytes `json:"hash"`
	}

	Header struct {
		ChainID         string         `json:"chain_id"`
		Height          Int64          `json:"height"`
		Time            time.Time      `json:"time"`
		LastBlockID     BlockID        `json:"last_block_id"`
		DataHash        types.HexBytes `json:"data_hash"`
		ValidatorsHash  types.HexBytes `json:"validators_hash"`
		AppHash         types.HexBytes `json:"app_hash"`
		ProposerAddress types.HexBytes `json:"proposer_address"`
	}

	Block struct {
		Header Header `json:"header"`
		Data   struct {
			Txs [][]byte `json:"txs"`
		} `json:"data"`
	}

	// BlockResponse is the result of the block method and each
	// block_search entry.
	BlockResponse struct {
		BlockID BlockID `json:"block_id"`
		Block   Block   `json:"block"`
	}

	BlockMeta struct {
		BlockID   BlockID `json:"block_id"`
		BlockSize Int64   `json:"block_size"`
		Header    Header  `json:"header"`
		NumTxs    Int64   `json:"num_txs"`
	}

	// BlockchainResponse is the result of the blockchain method, newest
	// block first.
	BlockchainResponse struct {
		LastHeight Int64       `json:"last_height"`
		BlockMetas []BlockMeta `json:"block_metas"`
	}

	TxSearchResponse struct {
		Txs        []TxResponse `json:"txs"`
		TotalCount Int64        `json:"total_count"`
	}

	BlockSearchResponse struct {
		Blocks     []BlockResponse `json:"blocks"`
		TotalCount Int64           `json:"total_count"`
	}

	PubKey struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}

	Validator struct {
		Address          types.HexBytes `json:"address"`
		PubKey           PubKey         `json:"pub_key"`
		VotingPower      Int64          `json:"voting_power"`
		ProposerPriority Int64          `json:"proposer_priority"`
	}

	ValidatorsResponse struct {
		BlockHeight Int64       `json:"block_height"`
		Validators  []Validator `json:"validators"`
		Count       Int64       `json:"count"`
		Total       Int64       `json:"total"`
	}

	NodeInfo struct {
		Network string `json:"network"`
		Moniker string `json:"moniker"`
		Version string `json:"version"`
	}

	SyncInfo struct {
		LatestBlockHash   types.HexBytes `json:"latest_block_hash"`
		LatestBlockHeight Int64          `json:"latest_block_height"`
		LatestBlockTime   time.Time      `json:"latest_block_time"`
		CatchingUp        bool           `json:"catching_up"`
	}

	StatusResponse struct {
		NodeInfo NodeInfo `json:"node_info"`
		SyncInfo SyncInfo `json:"sync_info"`
	}
)

// OrderBy is the sort order of a search.
type OrderBy string

const (
	OrderAsc  OrderBy = "asc"
	OrderDesc OrderBy = "desc"
)

// SearchParams are the parameters of tx_search and block_search.
type SearchParams struct {
	Query   string
	Page    int
	PerPage int
	OrderBy OrderBy
}

func (p SearchParams) toParams() map[string]any {
	params := map[string]any{
		"query": p.Query,
	}
	if p.Page > 0 {
		params["page"] = strconv.Itoa(p.Page)
	}
	if p.PerPage > 0 {
		params["per_page"] = strconv.Itoa(p.PerPage)
	}
	if p.OrderBy != "" {
		params["order_by"] = string(p.OrderBy)
	}
	return params
}
