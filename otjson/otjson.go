// Package otjson encodes and decodes ot.Changeset values as JSON, per the
// wire format: {"operations": [{"type": "keep"|"add"|"remove", "value": ...}]}.
// "value" is an integer for keep/remove and a string for add.
package otjson

import (
	"encoding/json"
	"fmt"

	ot "github.com/inkwell-dev/ot"
)

const (
	typeKeep   = "keep"
	typeAdd    = "add"
	typeRemove = "remove"
)

type wireOp struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

type wireChangeset struct {
	Operations []wireOp `json:"operations"`
}

// Encode renders c in canonical order as the JSON wire format.
func Encode(c ot.Changeset) ([]byte, error) {
	ops := c.Operations()
	wire := wireChangeset{Operations: make([]wireOp, 0, len(ops))}
	for _, op := range ops {
		w, err := encodeOp(op)
		if err != nil {
			return nil, err
		}
		wire.Operations = append(wire.Operations, w)
	}
	return json.Marshal(wire)
}

func encodeOp(op ot.Operation) (wireOp, error) {
	switch o := op.(type) {
	case ot.Keep:
		v, err := json.Marshal(o.N)
		return wireOp{Type: typeKeep, Value: v}, err
	case ot.Remove:
		v, err := json.Marshal(o.N)
		return wireOp{Type: typeRemove, Value: v}, err
	case ot.Add:
		v, err := json.Marshal(o.Value)
		return wireOp{Type: typeAdd, Value: v}, err
	default:
		return wireOp{}, fmt.Errorf("otjson: unknown operation type %T", op)
	}
}

// Decode parses the JSON wire format into a canonical Changeset. Decoding
// runs every operation through the same canonicalizing constructor Apply
// and friends see, so adjacent same-kind operations in the wire form are
// coalesced even if the producer didn't canonicalize before encoding.
// Decode fails on malformed JSON, an unknown "type", or a "value" of the
// wrong shape for its type.
func Decode(data []byte) (ot.Changeset, error) {
	var wire wireChangeset
	if err := json.Unmarshal(data, &wire); err != nil {
		return ot.Changeset{}, fmt.Errorf("otjson: decode: %w", err)
	}
	ops := make([]ot.Operation, 0, len(wire.Operations))
	for i, w := range wire.Operations {
		op, err := decodeOp(w)
		if err != nil {
			return ot.Changeset{}, fmt.Errorf("otjson: decode operation %d: %w", i, err)
		}
		ops = append(ops, op)
	}
	return ot.New(ops...), nil
}

func decodeOp(w wireOp) (ot.Operation, error) {
	switch w.Type {
	case typeKeep:
		var n int
		if err := json.Unmarshal(w.Value, &n); err != nil {
			return nil, fmt.Errorf("keep value must be an integer: %w", err)
		}
		return ot.Keep{N: n}, nil
	case typeRemove:
		var n int
		if err := json.Unmarshal(w.Value, &n); err != nil {
			return nil, fmt.Errorf("remove value must be an integer: %w", err)
		}
		return ot.Remove{N: n}, nil
	case typeAdd:
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return nil, fmt.Errorf("add value must be a string: %w", err)
		}
		return ot.Add{Value: s}, nil
	default:
		return nil, fmt.Errorf("unknown operation type %q", w.Type)
	}
}
