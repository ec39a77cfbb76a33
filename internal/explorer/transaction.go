package explorer

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/types"
	"github.com/gabapcia/chainscope/internal/pkg/validator"
	"github.com/gabapcia/chainscope/internal/txdecode"

	"go.opentelemetry.io/otel/attribute"
)

// TxDetail is the transaction view.
type TxDetail struct {
	Hash      types.HexBytes     `json:"hash"`
	Height    int64              `json:"height"`
	ChainID   string             `json:"chain_id"`
	Time      time.Time          `json:"time"`
	Code      uint32             `json:"code"`
	Success   bool               `json:"success"`
	RawLog    string             `json:"raw_log,omitempty"`
	Sender    string             `json:"sender"`
	Recipient string             `json:"recipient"`
	Amount    string             `json:"amount"`
	Fee       types.Coin         `json:"fee"`
	GasWanted int64              `json:"gas_wanted"`
	GasUsed   int64              `json:"gas_used"`
	Memo      string             `json:"memo"`
	Messages  []txdecode.Message `json:"messages"`
}

// Transaction looks up a transaction by its hex hash and joins it with its
// block's time and chain id.
func (s *service) Transaction(ctx context.Context, hash string) (detail TxDetail, err error) {
	ctx, span := s.startSpan(ctx, "Transaction", attribute.String("tx.hash", hash))
	defer func() { endSpan(span, err) }()

	if err := validator.Var(hash, "required,txhash"); err != nil {
		return TxDetail{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	h, err := types.ParseHexBytes(hash)
	if err != nil {
		return TxDetail{}, fmt.Errorf("%w: %w", ErrInvalidHash, err)
	}

	res, err := s.chain.Tx(ctx, h)
	if err != nil {
		return TxDetail{}, err
	}

	height := int64(res.Height)
	blockTime, chainID, err := s.blockInfo(ctx, height)
	if err != nil {
		return TxDetail{}, err
	}

	transfer := txdecode.ExtractTransfer(res.TxResult.Events, s.decoder.Denom())
	detail = TxDetail{
		Hash:      res.Hash,
		Height:    height,
		ChainID:   chainID,
		Time:      blockTime,
		Code:      res.TxResult.Code,
		Success:   res.TxResult.Code == 0,
		Sender:    transfer.Sender,
		Recipient: transfer.Recipient,
		Amount:    transfer.Amount,
		GasWanted: int64(res.TxResult.GasWanted),
		GasUsed:   int64(res.TxResult.GasUsed),
		Messages:  []txdecode.Message{},
	}
	if !detail.Success {
		detail.RawLog = res.TxResult.Log
	}
	if detail.Hash.IsEmpty() {
		detail.Hash = h
	}

	tx, decodeErr := s.decoder.DecodeTx(res.Tx)
	if decodeErr != nil {
		logger.Debug(ctx, "transaction body not decoded", "tx.hash", h, "error", decodeErr)
		return detail, nil
	}

	detail.Memo = txdecode.SanitizeMemo(tx.Memo)
	detail.Messages = tx.Messages
	if len(tx.Fee) > 0 {
		detail.Fee = tx.Fee[0]
	}
	if detail.GasWanted == 0 {
		detail.GasWanted = int64(tx.GasLimit)
	}

	return detail, nil
}
