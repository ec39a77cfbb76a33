package explorer

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/gabapcia/chainscope/internal/pkg/types"
	"github.com/gabapcia/chainscope/internal/pkg/validator"

	"go.opentelemetry.io/otel/attribute"
)

// latestBlocksWindow is how many block metas the node returns per
// blockchain call.
const latestBlocksWindow = 20

type (
	BlockDetail struct {
		Height          int64            `json:"height"`
		Hash            types.HexBytes   `json:"hash"`
		ChainID         string           `json:"chain_id"`
		Time            time.Time        `json:"time"`
		ProposerAddress types.HexBytes   `json:"proposer_address"`
		NumTxs          int              `json:"num_txs"`
		TxHashes        []types.HexBytes `json:"tx_hashes"`
	}

	BlockSummary struct {
		Height          int64          `json:"height"`
		Hash            types.HexBytes `json:"hash"`
		Time            time.Time      `json:"time"`
		ProposerAddress types.HexBytes `json:"proposer_address"`
		NumTxs          int64          `json:"num_txs"`
	}

	LatestBlocks struct {
		LastHeight int64          `json:"last_height"`
		Blocks     []BlockSummary `json:"blocks"`
	}
)

// Block returns the header fields of the block at height and the hash of
// each of its transactions.
func (s *service) Block(ctx context.Context, height int64) (detail BlockDetail, err error) {
	ctx, span := s.startSpan(ctx, "Block", attribute.Int64("block.height", height))
	defer func() { endSpan(span, err) }()

	if err := validator.Var(height, "gt=0"); err != nil {
		return BlockDetail{}, fmt.Errorf("%w: %w", ErrInvalidHeight, err)
	}

	res, err := s.chain.Block(ctx, height)
	if err != nil {
		return BlockDetail{}, err
	}

	header := res.Block.Header
	s.learnChainID(header.ChainID)
	s.rememberBlockTime(ctx, height, header.Time)

	detail = BlockDetail{
		Height:          int64(header.Height),
		Hash:            res.BlockID.Hash,
		ChainID:         header.ChainID,
		Time:            header.Time,
		ProposerAddress: header.ProposerAddress,
		NumTxs:          len(res.Block.Data.Txs),
		TxHashes:        make([]types.HexBytes, 0, len(res.Block.Data.Txs)),
	}
	for _, tx := range res.Block.Data.Txs {
		sum := sha256.Sum256(tx)
		detail.TxHashes = append(detail.TxHashes, sum[:])
	}

	return detail, nil
}

// LatestBlocks returns the most recent block metas, newest first, and the
// chain's last height.
func (s *service) LatestBlocks(ctx context.Context) (latest LatestBlocks, err error) {
	ctx, span := s.startSpan(ctx, "LatestBlocks")
	defer func() { endSpan(span, err) }()

	res, err := s.chain.Blockchain(ctx, 0, 0)
	if err != nil {
		return LatestBlocks{}, err
	}

	latest = LatestBlocks{
		LastHeight: int64(res.LastHeight),
		Blocks:     make([]BlockSummary, 0, min(len(res.BlockMetas), latestBlocksWindow)),
	}
	for _, meta := range res.BlockMetas {
		if len(latest.Blocks) == latestBlocksWindow {
			break
		}

		height := int64(meta.Header.Height)
		s.learnChainID(meta.Header.ChainID)
		s.rememberBlockTime(ctx, height, meta.Header.Time)

		latest.Blocks = append(latest.Blocks, BlockSummary{
			Height:          height,
			Hash:            meta.BlockID.Hash,
			Time:            meta.Header.Time,
			ProposerAddress: meta.Header.ProposerAddress,
			NumTxs:          int64(meta.NumTxs),
		})
	}

	return latest, nil
}
