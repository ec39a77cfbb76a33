// Package lcd is a client for the Cosmos SDK REST gateway (LCD).
package lcd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gabapcia/chainscope/internal/pkg/transport"
	transporthttp "github.com/gabapcia/chainscope/internal/pkg/transport/http"
	"github.com/gabapcia/chainscope/internal/pkg/types"

	"github.com/hashicorp/go-retryablehttp"
)

// ErrNotFound is returned when the gateway answers 404, e.g. for an address
// that never received funds.
var ErrNotFound = errors.New("not found")

type (
	// Account is an auth module account. Only BaseAccount fields are read;
	// vesting and module accounts carry them nested, which Account flattens.
	Account struct {
		Type          string `json:"@type"`
		Address       string `json:"address"`
		AccountNumber string `json:"account_number"`
		Sequence      string `json:"sequence"`
		PubKey        *struct {
			Type string `json:"@type"`
			Key  string `json:"key"`
		} `json:"pub_key"`
	}

	Pagination struct {
		NextKey string `json:"next_key"`
		Total   string `json:"total"`
	}

	Delegation struct {
		DelegatorAddress string `json:"delegator_address"`
		ValidatorAddress string `json:"validator_address"`
		Shares           string `json:"shares"`
	}

	DelegationResponse struct {
		Delegation Delegation `json:"delegation"`
		Balance    types.Coin `json:"balance"`
	}

	ProposalMessage struct {
		Type string `json:"@type"`
	}

	// Proposal is a gov v1 proposal.
	Proposal struct {
		ID              string            `json:"id"`
		Messages        []ProposalMessage `json:"messages"`
		Status          string            `json:"status"`
		SubmitTime      *time.Time        `json:"submit_time"`
		DepositEndTime  *time.Time        `json:"deposit_end_time"`
		TotalDeposit    []types.Coin      `json:"total_deposit"`
		VotingStartTime *time.Time        `json:"voting_start_time"`
		VotingEndTime   *time.Time        `json:"voting_end_time"`
		Metadata        string            `json:"metadata"`
		Title           string            `json:"title"`
		Summary         string            `json:"summary"`
		Proposer        string            `json:"proposer"`
	}

	ProposalsPage struct {
		Proposals []Proposal
		Total     int64
	}
)

// UnmarshalJSON reads BaseAccount fields either at the top level or under
// "base_account" / "base_vesting_account.base_account".
func (a *Account) UnmarshalJSON(data []byte) error {
	type plain Account

	var wrapper struct {
		plain
		BaseAccount        *plain `json:"base_account"`
		BaseVestingAccount *struct {
			BaseAccount *plain `json:"base_account"`
		} `json:"base_vesting_account"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}

	out := wrapper.plain
	var nested *plain
	switch {
	case wrapper.BaseAccount != nil:
		nested = wrapper.BaseAccount
	case wrapper.BaseVestingAccount != nil && wrapper.BaseVestingAccount.BaseAccount != nil:
		nested = wrapper.BaseVestingAccount.BaseAccount
	}
	if nested != nil {
		typ := out.Type
		out = *nested
		out.Type = typ
	}

	*a = Account(out)
	return nil
}

type client struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// NewClient returns a client for the gateway at baseURL.
func NewClient(httpClient *retryablehttp.Client, baseURL string) *client {
	return &client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *client) get(ctx context.Context, op, path string, query url.Values, out any) error {
	err := transporthttp.GetJSON(ctx, c.httpClient, op, c.baseURL+path, query, out)

	var netErr *transport.NetworkError
	if errors.As(err, &netErr) && netErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

func (c *client) Account(ctx context.Context, address string) (Account, error) {
	var res struct {
		Account Account `json:"account"`
	}
	if err := c.get(ctx, "lcd.account", "/cosmos/auth/v1beta1/accounts/"+url.PathEscape(address), nil, &res); err != nil {
		return Account{}, err
	}

	return res.Account, nil
}

// Balances returns every balance of address, following pagination.
func (c *client) Balances(ctx context.Context, address string) ([]types.Coin, error) {
	var (
		balances = []types.Coin{}
		nextKey  string
	)

	for {
		query := url.Values{}
		if nextKey != "" {
			query.Set("pagination.key", nextKey)
		}

		var res struct {
			Balances   []types.Coin `json:"balances"`
			Pagination Pagination   `json:"pagination"`
		}
		if err := c.get(ctx, "lcd.balances", "/cosmos/bank/v1beta1/balances/"+url.PathEscape(address), query, &res); err != nil {
			return nil, err
		}

		balances = append(balances, res.Balances...)
		if res.Pagination.NextKey == "" {
			return balances, nil
		}
		nextKey = res.Pagination.NextKey
	}
}

// Delegations returns every delegation of address, following pagination.
func (c *client) Delegations(ctx context.Context, address string) ([]DelegationResponse, error) {
	var (
		delegations = []DelegationResponse{}
		nextKey     string
	)

	for {
		query := url.Values{}
		if nextKey != "" {
			query.Set("pagination.key", nextKey)
		}

		var res struct {
			DelegationResponses []DelegationResponse `json:"delegation_responses"`
			Pagination          Pagination           `json:"pagination"`
		}
		if err := c.get(ctx, "lcd.delegations", "/cosmos/staking/v1beta1/delegations/"+url.PathEscape(address), query, &res); err != nil {
			return nil, err
		}

		delegations = append(delegations, res.DelegationResponses...)
		if res.Pagination.NextKey == "" {
			return delegations, nil
		}
		nextKey = res.Pagination.NextKey
	}
}

// Proposals returns one page of gov v1 proposals, newest first, with the
// total count.
func (c *client) Proposals(ctx context.Context, offset, limit int) (ProposalsPage, error) {
	query := url.Values{
		"pagination.offset":      {strconv.Itoa(offset)},
		"pagination.limit":       {strconv.Itoa(limit)},
		"pagination.count_total": {"true"},
		"pagination.reverse":     {"true"},
	}

	var res struct {
		Proposals  []Proposal `json:"proposals"`
		Pagination Pagination `json:"pagination"`
	}
	if err := c.get(ctx, "lcd.proposals", "/cosmos/gov/v1/proposals", query, &res); err != nil {
		return ProposalsPage{}, err
	}

	total, _ := strconv.ParseInt(res.Pagination.Total, 10, 64)
	return ProposalsPage{Proposals: res.Proposals, Total: total}, nil
}
