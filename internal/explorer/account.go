package explorer

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/gabapcia/chainscope/internal/infra/chain/lcd"
	"github.com/gabapcia/chainscope/internal/infra/chain/tendermint"
	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/types"
	"github.com/gabapcia/chainscope/internal/pkg/validator"
	"github.com/gabapcia/chainscope/internal/txdecode"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

type (
	// AccountTx is one row of the account's transaction list.
	AccountTx struct {
		Hash    types.HexBytes `json:"hash"`
		Height  int64          `json:"height"`
		Code    uint32         `json:"code"`
		Summary string         `json:"summary"`
		Memo    string         `json:"memo"`
	}

	// AccountDetail is the account view. Account is nil for addresses the
	// chain has never seen.
	AccountDetail struct {
		Address      string       `json:"address"`
		Account      *lcd.Account `json:"account"`
		Balances     []types.Coin `json:"balances"`
		Staked       []types.Coin `json:"staked"`
		Transactions []AccountTx  `json:"transactions"`
		TotalTxs     int64        `json:"total_txs"`
	}
)

func senderQuery(address string) string {
	return fmt.Sprintf("message.sender='%s'", address)
}

// Account gathers the auth account, balances, staked balance and the most
// recent transactions sent by address.
func (s *service) Account(ctx context.Context, address string) (detail AccountDetail, err error) {
	ctx, span := s.startSpan(ctx, "Account", attribute.String("account.address", address))
	defer func() { endSpan(span, err) }()

	if err := validator.Var(address, "required,bech32"); err != nil {
		return AccountDetail{}, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	var (
		account     *lcd.Account
		balances    []types.Coin
		delegations []lcd.DelegationResponse
		txs         tendermint.TxSearchResponse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		acc, err := s.rest.Account(gctx, address)
		if errors.Is(err, lcd.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		account = &acc
		return nil
	})
	g.Go(func() error {
		var err error
		balances, err = s.rest.Balances(gctx, address)
		return err
	})
	g.Go(func() error {
		var err error
		delegations, err = s.rest.Delegations(gctx, address)
		return err
	})
	g.Go(func() error {
		var err error
		txs, err = s.chain.TxSearch(gctx, tendermint.SearchParams{
			Query:   senderQuery(address),
			Page:    1,
			PerPage: s.accountTxs,
			OrderBy: tendermint.OrderDesc,
		})
		return err
	})
	if err := g.Wait(); err != nil {
		return AccountDetail{}, err
	}

	detail = AccountDetail{
		Address:      address,
		Account:      account,
		Balances:     balances,
		Staked:       sumDelegations(delegations),
		Transactions: make([]AccountTx, 0, len(txs.Txs)),
		TotalTxs:     int64(txs.TotalCount),
	}
	if detail.Balances == nil {
		detail.Balances = []types.Coin{}
	}

	for _, res := range txs.Txs {
		row := AccountTx{
			Hash:   res.Hash,
			Height: int64(res.Height),
			Code:   res.TxResult.Code,
		}

		tx, decodeErr := s.decoder.DecodeTx(res.Tx)
		if decodeErr != nil {
			logger.Debug(ctx, "account transaction not decoded", "tx.hash", res.Hash, "error", decodeErr)
		} else {
			row.Summary = tx.Summary()
			row.Memo = txdecode.SanitizeMemo(tx.Memo)
		}

		detail.Transactions = append(detail.Transactions, row)
	}

	return detail, nil
}

// sumDelegations adds up delegated balances per denom, keeping the order in
// which denoms first appear. Unparseable amounts are skipped.
func sumDelegations(delegations []lcd.DelegationResponse) []types.Coin {
	totals := types.NewDefaultMap[string](func() *big.Int { return new(big.Int) })

	for _, d := range delegations {
		amount, ok := new(big.Int).SetString(d.Balance.Amount, 10)
		if !ok || d.Balance.Denom == "" {
			continue
		}

		totals.Update(d.Balance.Denom, func(total *big.Int) *big.Int {
			return total.Add(total, amount)
		})
	}

	out := make([]types.Coin, 0, totals.Len())
	for _, denom := range totals.Keys() {
		out = append(out, types.Coin{Denom: denom, Amount: totals.Get(denom).String()})
	}
	return out
}
