package metadata

import (
	"encoding/json"
	"math"
	"math/big"
)

// Record keys with a fixed meaning in merged views.
const (
	KeyImage  = "image"
	KeyStatus = "status"
)

// Record is a JSON-like view of an entity. Both on-chain structs and off-chain
// metadata documents are handled as records so they can be merged key by key.
type Record map[string]any

// Clone returns a shallow copy of the record. Nested values are shared.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Event status labels stored by the events contract as uint8 codes.
const (
	StatusNormal    = "normal"
	StatusPostponed = "postponed"
	StatusCanceled  = "canceled"
)

var statusLabels = map[int64]string{
	0: StatusNormal,
	1: StatusPostponed,
	2: StatusCanceled,
}

// LabelStatus translates a numeric status code into its label.
// Non-numeric values and codes without a label are returned unchanged.
func LabelStatus(v any) any {
	code, ok := statusCode(v)
	if !ok {
		return v
	}
	if label, ok := statusLabels[code]; ok {
		return label
	}
	return v
}

func statusCode(v any) (int64, bool) {
	switch n := v.(type) {
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int64(n), true
	case *big.Int:
		if n == nil || !n.IsInt64() {
			return 0, false
		}
		return n.Int64(), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}

// Overlay copies the off-chain fields first and then the on-chain fields on top,
// so on a key collision the on-chain value is kept. The merge is shallow:
// a nested value from raw replaces the same-named nested value from offchain.
func Overlay(raw, offchain Record) Record {
	out := make(Record, len(raw)+len(offchain))
	for k, v := range offchain {
		out[k] = v
	}
	for k, v := range raw {
		out[k] = v
	}
	return out
}
