package qtree

import (
	"testing"

	"github.com/signadot/qtree/encode"
	"github.com/signadot/qtree/ir"
	"github.com/signadot/qtree/parse"
)

func TestMatch(t *testing.T) {
	doc := parse.Parse("q=go&page=2&f[tag][]=x&f[tag][]=y&f[lang]=en")
	tests := []struct {
		pattern string
		opts    []MatchOpt
		want    bool
	}{
		{"", nil, true},
		{"q=go", nil, true},
		{"q=rust", nil, false},
		{"missing=1", nil, false},
		{"f[lang]=en&page=2", nil, true},
		{"f[tag][]=x&f[tag][]=y", nil, true},
		{"f[tag][]=x", nil, false},
		{"f=en", nil, false},
		{"q=*&f[tag][]=*&f[tag][]=y", []MatchOpt{MatchAny("*")}, true},
		{"q=*", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			if got := Match(doc, parse.Parse(tt.pattern), tt.opts...); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestMatchNull(t *testing.T) {
	doc := parse.Parse("a[b]=1")
	pattern := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.Null()}})
	if !Match(doc, pattern) {
		t.Error("null pattern field should match anything")
	}
}

func TestTrim(t *testing.T) {
	doc := parse.Parse("q=go&page=2&f[tag][]=x&f[tag][]=y&f[lang]=en")
	tests := []struct {
		pattern string
		want    string
	}{
		{"page=1", `{"page":"2"}`},
		{"f[lang]=x&q=x", `{"q":"go","f":{"lang":"en"}}`},
		{"f[tag][]=y", `{"f":{"tag":["y"]}}`},
		{"f[tag][]=z", `{"f":{"tag":[]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := encode.MustString(Trim(parse.Parse(tt.pattern), doc), encode.EncodeWire(true))
			if got != tt.want {
				t.Errorf("Trim(%q) = %s, want %s", tt.pattern, got, tt.want)
			}
		})
	}
}
