package txdecode

import (
	"errors"

	"github.com/gabapcia/chainscope/internal/pkg/types"
)

var ErrEmptyTx = errors.New("empty transaction")

// Any is a packed protobuf message.
type Any struct {
	TypeURL string
	Value   []byte
}

// RawTx is the schema-independent part of a Cosmos transaction.
type RawTx struct {
	Messages []Any
	Memo     string
	Fee      []types.Coin
	GasLimit uint64
	Payer    string
	Granter  string
}

// ParseTx reads a TxRaw or Tx. Both keep the body in field 1 and the auth
// info in field 2, as bytes and as embedded messages respectively, which
// are the same on the wire.
func ParseTx(b []byte) (RawTx, error) {
	if len(b) == 0 {
		return RawTx{}, ErrEmptyTx
	}

	r := newReader(b)
	body := r.raw(1)
	authInfo := r.raw(2)
	if r.err != nil {
		return RawTx{}, r.err
	}

	var tx RawTx

	br := newReader(body)
	for _, raw := range br.repeated(1) {
		ar := newReader(raw)
		msg := Any{TypeURL: ar.str(1), Value: ar.raw(2)}
		if ar.err != nil {
			return RawTx{}, ar.err
		}
		tx.Messages = append(tx.Messages, msg)
	}
	tx.Memo = br.str(2)
	if br.err != nil {
		return RawTx{}, br.err
	}

	// AuthInfo: signer_infos = 1, fee = 2. Fee: amount = 1, gas_limit = 2,
	// payer = 3, granter = 4.
	if fee := newReader(authInfo).raw(2); fee != nil {
		fr := newReader(fee)
		tx.Fee = fr.coins(1)
		tx.GasLimit = fr.uvarint(2)
		tx.Payer = fr.str(3)
		tx.Granter = fr.str(4)
		if fr.err != nil {
			return RawTx{}, fr.err
		}
	}

	return tx, nil
}

// Tx is a transaction with every message decoded.
type Tx struct {
	Messages []Message
	Memo     string
	Fee      []types.Coin
	GasLimit uint64
}

// Summary returns the message summary of tx, e.g. "Send +1".
func (tx Tx) Summary() string {
	urls := make([]string, 0, len(tx.Messages))
	for _, m := range tx.Messages {
		urls = append(urls, m.TypeURL)
	}
	return Summary(urls)
}
