package skillgraph

import (
	"encoding/json"
	"math"
	"math/big"
	"strconv"
)

// NormalizeID converts a store identifier to its string form so that numeric
// and string ids compare uniformly: 42, int64(42), 42.0 and "42" all yield "42".
// Numbers are written as canonical base-10 integers of any size, so the JSON
// literals 100000000000000000000, 1e20 and 1.0e20 agree, and -0 becomes "0".
// Strings are taken verbatim. It reports false for nil, empty strings,
// non-integral or non-finite numbers and any other type.
func NormalizeID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		return id, id != ""
	case json.Number:
		r, ok := new(big.Rat).SetString(id.String())
		if !ok || !r.IsInt() {
			return "", false
		}
		return r.Num().String(), true
	case int:
		return strconv.FormatInt(int64(id), 10), true
	case int8:
		return strconv.FormatInt(int64(id), 10), true
	case int16:
		return strconv.FormatInt(int64(id), 10), true
	case int32:
		return strconv.FormatInt(int64(id), 10), true
	case int64:
		return strconv.FormatInt(id, 10), true
	case uint:
		return strconv.FormatUint(uint64(id), 10), true
	case uint8:
		return strconv.FormatUint(uint64(id), 10), true
	case uint16:
		return strconv.FormatUint(uint64(id), 10), true
	case uint32:
		return strconv.FormatUint(uint64(id), 10), true
	case uint64:
		return strconv.FormatUint(id, 10), true
	case float32:
		return floatID(float64(id))
	case float64:
		return floatID(id)
	}
	return "", false
}

func floatID(f float64) (string, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return "", false
	}
	n, _ := big.NewFloat(f).Int(nil)
	return n.String(), true
}
