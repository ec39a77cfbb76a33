package explorer

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/gabapcia/chainscope/internal/infra/chain/lcd"
	"github.com/gabapcia/chainscope/internal/pkg/format"
	"github.com/gabapcia/chainscope/internal/txdecode"

	"go.opentelemetry.io/otel/attribute"
)

type (
	ProposalRow struct {
		ID        string `json:"id"`
		Title     string `json:"title"`
		Type      string `json:"type"`
		Status    string `json:"status"`
		VotingEnd string `json:"voting_end"`
	}

	ProposalsPage struct {
		Proposals []ProposalRow `json:"proposals"`
		Total     int64         `json:"total"`
		Page      int           `json:"page"`
		PerPage   int           `json:"per_page"`
	}
)

var proposalStatusLabels = map[string]string{
	"PROPOSAL_STATUS_UNSPECIFIED":    "Unspecified",
	"PROPOSAL_STATUS_DEPOSIT_PERIOD": "Deposit Period",
	"PROPOSAL_STATUS_VOTING_PERIOD":  "Voting Period",
	"PROPOSAL_STATUS_PASSED":         "Passed",
	"PROPOSAL_STATUS_REJECTED":       "Rejected",
	"PROPOSAL_STATUS_FAILED":         "Failed",
}

// ProposalStatusLabel returns the display label of a gov proposal status.
// Unknown statuses are returned as is.
func ProposalStatusLabel(status string) string {
	if label, ok := proposalStatusLabels[status]; ok {
		return label
	}
	return status
}

// Proposals returns one page of governance proposals. Pages start at 1.
func (s *service) Proposals(ctx context.Context, page, perPage int) (out ProposalsPage, err error) {
	ctx, span := s.startSpan(ctx, "Proposals",
		attribute.Int("page", page),
		attribute.Int("per_page", perPage),
	)
	defer func() { endSpan(span, err) }()

	// The offset must fit in an int.
	if page < 1 || perPage < 1 || perPage > s.maxPerPage || page-1 > math.MaxInt/perPage {
		return ProposalsPage{}, fmt.Errorf("%w: page %d with %d per page", ErrInvalidPage, page, perPage)
	}

	res, err := s.rest.Proposals(ctx, (page-1)*perPage, perPage)
	if err != nil {
		return ProposalsPage{}, err
	}

	out = ProposalsPage{
		Proposals: make([]ProposalRow, 0, len(res.Proposals)),
		Total:     res.Total,
		Page:      page,
		PerPage:   perPage,
	}
	for _, p := range res.Proposals {
		out.Proposals = append(out.Proposals, toProposalRow(p))
	}

	return out, nil
}

func toProposalRow(p lcd.Proposal) ProposalRow {
	row := ProposalRow{
		ID:     p.ID,
		Title:  p.Title,
		Status: ProposalStatusLabel(p.Status),
	}
	if len(p.Messages) > 0 {
		row.Type = txdecode.TypeName(p.Messages[0].Type)
	}

	var votingEnd time.Time
	if p.VotingEndTime != nil {
		votingEnd = *p.VotingEndTime
	}
	row.VotingEnd = format.DisplayDate(votingEnd)

	return row
}
