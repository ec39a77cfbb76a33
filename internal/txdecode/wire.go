package txdecode

import (
	"errors"
	"fmt"

	"github.com/gabapcia/chainscope/internal/pkg/types"

	"google.golang.org/protobuf/encoding/protowire"
)

var errWireType = errors.New("unexpected wire type")

// field is one decoded protobuf field. Only varint and length-delimited
// values are kept; other wire types are skipped.
type field struct {
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

// fields indexes a message's fields by number, preserving repetition order.
type fields map[protowire.Number][]field

// parseFields walks b as a protobuf message without a schema.
func parseFields(b []byte) (fields, error) {
	out := make(fields)
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return nil, protowire.ParseError(n)
		}
		b = b[n:]

		f := field{typ: typ}
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				return nil, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			f.varint = v
			b = b[n:]

		case protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				return nil, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			f.bytes = v
			b = b[n:]

		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				return nil, fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
			}
			b = b[n:]
			continue
		}

		out[num] = append(out[num], f)
	}

	return out, nil
}

// bytesAt returns the last length-delimited value of num. Proto3 keeps the
// last value when a singular field repeats.
func (f fields) bytesAt(num protowire.Number) ([]byte, error) {
	values := f[num]
	if len(values) == 0 {
		return nil, nil
	}

	last := values[len(values)-1]
	if last.typ != protowire.BytesType {
		return nil, fmt.Errorf("field %d: %w", num, errWireType)
	}
	return last.bytes, nil
}

func (f fields) stringAt(num protowire.Number) (string, error) {
	b, err := f.bytesAt(num)
	return string(b), err
}

func (f fields) uint64At(num protowire.Number) (uint64, error) {
	values := f[num]
	if len(values) == 0 {
		return 0, nil
	}

	last := values[len(values)-1]
	if last.typ != protowire.VarintType {
		return 0, fmt.Errorf("field %d: %w", num, errWireType)
	}
	return last.varint, nil
}

func (f fields) repeatedBytes(num protowire.Number) ([][]byte, error) {
	out := make([][]byte, 0, len(f[num]))
	for _, v := range f[num] {
		if v.typ != protowire.BytesType {
			return nil, fmt.Errorf("field %d: %w", num, errWireType)
		}
		out = append(out, v.bytes)
	}
	return out, nil
}

// reader accumulates the first error so schema decoders can read fields in
// sequence and check once.
type reader struct {
	f   fields
	err error
}

func newReader(b []byte) *reader {
	f, err := parseFields(b)
	return &reader{f: f, err: err}
}

func (r *reader) str(num protowire.Number) string {
	if r.err != nil {
		return ""
	}

	s, err := r.f.stringAt(num)
	r.err = err
	return s
}

func (r *reader) raw(num protowire.Number) []byte {
	if r.err != nil {
		return nil
	}

	b, err := r.f.bytesAt(num)
	r.err = err
	return b
}

func (r *reader) uvarint(num protowire.Number) uint64 {
	if r.err != nil {
		return 0
	}

	v, err := r.f.uint64At(num)
	r.err = err
	return v
}

func (r *reader) repeated(num protowire.Number) [][]byte {
	if r.err != nil {
		return nil
	}

	v, err := r.f.repeatedBytes(num)
	r.err = err
	return v
}

// coin reads an embedded cosmos.base.v1beta1.Coin.
func (r *reader) coin(num protowire.Number) types.Coin {
	b := r.raw(num)
	if r.err != nil || b == nil {
		return types.Coin{}
	}

	c, err := parseCoin(b)
	r.err = err
	return c
}

// coins reads a repeated cosmos.base.v1beta1.Coin.
func (r *reader) coins(num protowire.Number) []types.Coin {
	raw := r.repeated(num)
	out := make([]types.Coin, 0, len(raw))
	for _, b := range raw {
		if r.err != nil {
			return nil
		}

		c, err := parseCoin(b)
		r.err = err
		out = append(out, c)
	}
	return out
}

func parseCoin(b []byte) (types.Coin, error) {
	r := newReader(b)
	c := types.Coin{
		Denom:  r.str(1),
		Amount: r.str(2),
	}
	return c, r.err
}
