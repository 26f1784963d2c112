package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	kv := func(k string, v *Node) KeyVal { return KeyVal{Key: k, Val: v} }
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type Ranking: Null < String < Array < Object
		{"Null < String", Null(), FromString(""), -1},
		{"String < Array", FromString("a"), FromSlice(nil), -1},
		{"Array < Object", FromSlice(nil), FromKeyVals(nil), -1},
		{"Nil < Null", nil, Null(), -1},

		{"String < String", FromString("a"), FromString("b"), -1},
		{"String == String", FromString("a"), FromString("a"), 0},

		{"Empty Array == Empty Array", FromSlice(nil), FromSlice(nil), 0},
		{"Short Array < Long Array",
			FromSlice([]*Node{FromString("1")}),
			FromSlice([]*Node{FromString("1"), FromString("2")}),
			-1},
		{"Array Element Comparison",
			FromSlice([]*Node{FromString("2")}),
			FromSlice([]*Node{FromString("1")}),
			1},

		{"Empty Object == Empty Object", FromKeyVals(nil), FromKeyVals(nil), 0},
		{"Object Key Comparison",
			FromKeyVals([]KeyVal{kv("a", FromString("1"))}),
			FromKeyVals([]KeyVal{kv("b", FromString("1"))}),
			-1},
		{"Object Value Comparison",
			FromKeyVals([]KeyVal{kv("a", FromString("1"))}),
			FromKeyVals([]KeyVal{kv("a", FromString("2"))}),
			-1},
		{"Object Order Matters",
			FromKeyVals([]KeyVal{kv("b", FromString("1")), kv("a", FromString("1"))}),
			FromKeyVals([]KeyVal{kv("a", FromString("1")), kv("b", FromString("1"))}),
			1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare() reversed = %d, want %d", got, -tt.expected)
			}
		})
	}
}
