package skillgraph

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
		ok   bool
	}{
		{name: "string", in: "42", want: "42", ok: true},
		{name: "element id", in: "4:abc:12", want: "4:abc:12", ok: true},
		{name: "int", in: 42, want: "42", ok: true},
		{name: "int64", in: int64(42), want: "42", ok: true},
		{name: "large int64", in: int64(math.MaxInt64), want: "9223372036854775807", ok: true},
		{name: "negative", in: int32(-3), want: "-3", ok: true},
		{name: "uint64", in: uint64(7), want: "7", ok: true},
		{name: "integral float", in: 42.0, want: "42", ok: true},
		{name: "json number", in: json.Number("42"), want: "42", ok: true},
		{name: "json number float", in: json.Number("42.0"), want: "42", ok: true},
		{name: "json number exponent", in: json.Number("1e20"), want: "100000000000000000000", ok: true},
		{name: "json number big literal", in: json.Number("100000000000000000000"), want: "100000000000000000000", ok: true},
		{name: "json number negative zero", in: json.Number("-0"), want: "0", ok: true},
		{name: "json number fractional", in: json.Number("1.5"), ok: false},
		{name: "negative zero float", in: math.Copysign(0, -1), want: "0", ok: true},
		{name: "float beyond int64", in: 1e20, want: "100000000000000000000", ok: true},
		{name: "fractional float", in: 4.2, ok: false},
		{name: "nan", in: math.NaN(), ok: false},
		{name: "empty string", in: "", ok: false},
		{name: "nil", in: nil, ok: false},
		{name: "bool", in: true, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeID(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizeID_NumericAndStringCollide(t *testing.T) {
	a, _ := NormalizeID(int64(42))
	b, _ := NormalizeID("42")

	g := Aggregate([]EdgeRecord{
		rec(a, "Python", "1", "Dev", "R"),
		rec(b, "Py", "2", "Analyst", "R"),
	})

	assert.Len(t, g.Nodes, 3)
	assert.Equal(t, Node{ID: "42", Label: "Python"}, g.Nodes[0])
}
