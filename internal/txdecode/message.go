package txdecode

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/chainscope/internal/pkg/logger"
	"github.com/gabapcia/chainscope/internal/pkg/types"
)

// ErrUnknownMessageType is wrapped in a DecodeError for type URLs without a
// registered schema.
var ErrUnknownMessageType = errors.New("unknown message type")

// Message is a decoded transaction message. Data is empty when the type is
// unknown or its payload is malformed.
type Message struct {
	TypeURL string         `json:"type_url"`
	Data    map[string]any `json:"data"`
}

// DecodeError reports a message that could not be decoded. It never leaves
// this package through Decoder or MessageDecoder.Decode.
type DecodeError struct {
	TypeURL string
	Err     error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.TypeURL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type decodeFunc func(value []byte) (map[string]any, error)

// Type URLs with a registered schema.
const (
	TypeMsgSend                    = "/cosmos.bank.v1beta1.MsgSend"
	TypeMsgMultiSend               = "/cosmos.bank.v1beta1.MsgMultiSend"
	TypeMsgDelegate                = "/cosmos.staking.v1beta1.MsgDelegate"
	TypeMsgUndelegate              = "/cosmos.staking.v1beta1.MsgUndelegate"
	TypeMsgBeginRedelegate         = "/cosmos.staking.v1beta1.MsgBeginRedelegate"
	TypeMsgWithdrawDelegatorReward = "/cosmos.distribution.v1beta1.MsgWithdrawDelegatorReward"
	TypeMsgVoteV1Beta1             = "/cosmos.gov.v1beta1.MsgVote"
	TypeMsgVoteV1                  = "/cosmos.gov.v1.MsgVote"
	TypeMsgDepositV1Beta1          = "/cosmos.gov.v1beta1.MsgDeposit"
	TypeMsgDepositV1               = "/cosmos.gov.v1.MsgDeposit"
	TypeMsgTransfer                = "/ibc.applications.transfer.v1.MsgTransfer"
)

// MessageDecoder decodes messages with a fixed table of schemas.
type MessageDecoder struct {
	table map[string]decodeFunc
}

// NewMessageDecoder returns a decoder for the bank, staking, distribution,
// gov and IBC transfer messages.
func NewMessageDecoder() *MessageDecoder {
	return &MessageDecoder{
		table: map[string]decodeFunc{
			TypeMsgSend:                    decodeMsgSend,
			TypeMsgMultiSend:               decodeMsgMultiSend,
			TypeMsgDelegate:                decodeMsgDelegate,
			TypeMsgUndelegate:              decodeMsgDelegate,
			TypeMsgBeginRedelegate:         decodeMsgBeginRedelegate,
			TypeMsgWithdrawDelegatorReward: decodeMsgWithdrawDelegatorReward,
			TypeMsgVoteV1Beta1:             decodeMsgVote,
			TypeMsgVoteV1:                  decodeMsgVote,
			TypeMsgDepositV1Beta1:          decodeMsgDeposit,
			TypeMsgDepositV1:               decodeMsgDeposit,
			TypeMsgTransfer:                decodeMsgTransfer,
		},
	}
}

// Decode never fails: unknown or malformed messages come back with empty
// Data and the failure is logged at debug level.
func (d *MessageDecoder) Decode(typeURL string, value []byte) Message {
	msg, err := d.decode(typeURL, value)
	if err != nil {
		logger.Debug(context.Background(), "message not decoded",
			"message.type_url", typeURL,
			"error", err,
		)
	}

	return msg
}

func (d *MessageDecoder) decode(typeURL string, value []byte) (Message, error) {
	msg := Message{TypeURL: typeURL, Data: map[string]any{}}

	fn, ok := d.table[typeURL]
	if !ok {
		return msg, &DecodeError{TypeURL: typeURL, Err: ErrUnknownMessageType}
	}

	data, err := fn(value)
	if err != nil {
		return msg, &DecodeError{TypeURL: typeURL, Err: err}
	}

	msg.Data = data
	return msg, nil
}

func decodeMsgSend(b []byte) (map[string]any, error) {
	r := newReader(b)
	data := map[string]any{
		"from_address": r.str(1),
		"to_address":   r.str(2),
		"amount":       r.coins(3),
	}
	return data, r.err
}

func decodeMsgMultiSend(b []byte) (map[string]any, error) {
	r := newReader(b)

	parseIO := func(raw [][]byte) ([]map[string]any, error) {
		out := make([]map[string]any, 0, len(raw))
		for _, item := range raw {
			ir := newReader(item)
			entry := map[string]any{
				"address": ir.str(1),
				"coins":   ir.coins(2),
			}
			if ir.err != nil {
				return nil, ir.err
			}
			out = append(out, entry)
		}
		return out, nil
	}

	inputs, err := parseIO(r.repeated(1))
	if err != nil {
		return nil, err
	}

	outputs, err := parseIO(r.repeated(2))
	if err != nil {
		return nil, err
	}

	return map[string]any{"inputs": inputs, "outputs": outputs}, r.err
}

// decodeMsgDelegate also serves MsgUndelegate, which has the same layout.
func decodeMsgDelegate(b []byte) (map[string]any, error) {
	r := newReader(b)
	data := map[string]any{
		"delegator_address": r.str(1),
		"validator_address": r.str(2),
		"amount":            r.coin(3),
	}
	return data, r.err
}

func decodeMsgBeginRedelegate(b []byte) (map[string]any, error) {
	r := newReader(b)
	data := map[string]any{
		"delegator_address":     r.str(1),
		"validator_src_address": r.str(2),
		"validator_dst_address": r.str(3),
		"amount":                r.coin(4),
	}
	return data, r.err
}

func decodeMsgWithdrawDelegatorReward(b []byte) (map[string]any, error) {
	r := newReader(b)
	data := map[string]any{
		"delegator_address": r.str(1),
		"validator_address": r.str(2),
	}
	return data, r.err
}

var voteOptions = map[uint64]string{
	0: "VOTE_OPTION_UNSPECIFIED",
	1: "VOTE_OPTION_YES",
	2: "VOTE_OPTION_ABSTAIN",
	3: "VOTE_OPTION_NO",
	4: "VOTE_OPTION_NO_WITH_VETO",
}

// decodeMsgVote handles gov v1beta1 and v1. v1 adds metadata as field 4.
func decodeMsgVote(b []byte) (map[string]any, error) {
	r := newReader(b)

	proposalID := r.uvarint(1)
	voter := r.str(2)
	option := r.uvarint(3)
	metadata := r.str(4)
	if r.err != nil {
		return nil, r.err
	}

	label, ok := voteOptions[option]
	if !ok {
		label = strconv.FormatUint(option, 10)
	}

	data := map[string]any{
		"proposal_id": strconv.FormatUint(proposalID, 10),
		"voter":       voter,
		"option":      label,
	}
	if metadata != "" {
		data["metadata"] = metadata
	}
	return data, nil
}

func decodeMsgDeposit(b []byte) (map[string]any, error) {
	r := newReader(b)

	proposalID := r.uvarint(1)
	depositor := r.str(2)
	amount := r.coins(3)
	if r.err != nil {
		return nil, r.err
	}

	return map[string]any{
		"proposal_id": strconv.FormatUint(proposalID, 10),
		"depositor":   depositor,
		"amount":      amount,
	}, nil
}

func decodeMsgTransfer(b []byte) (map[string]any, error) {
	r := newReader(b)

	data := map[string]any{
		"source_port":       r.str(1),
		"source_channel":    r.str(2),
		"token":             r.coin(3),
		"sender":            r.str(4),
		"receiver":          r.str(5),
		"timeout_timestamp": strconv.FormatUint(r.uvarint(7), 10),
		"memo":              r.str(8),
	}
	if r.err != nil {
		return nil, r.err
	}

	height := map[string]any{"revision_number": "0", "revision_height": "0"}
	if raw := r.raw(6); raw != nil {
		hr := newReader(raw)
		height["revision_number"] = strconv.FormatUint(hr.uvarint(1), 10)
		height["revision_height"] = strconv.FormatUint(hr.uvarint(2), 10)
		if hr.err != nil {
			return nil, hr.err
		}
	}
	data["timeout_height"] = height

	return data, r.err
}

// Amount returns the first coin a message moves, read from its "amount" or
// "token" field.
func (m Message) Amount() (types.Coin, bool) {
	for _, key := range []string{"amount", "token"} {
		switch c := m.Data[key].(type) {
		case types.Coin:
			if !c.IsZero() {
				return c, true
			}
		case []types.Coin:
			if len(c) > 0 {
				return c[0], true
			}
		}
	}
	return types.Coin{}, false
}
