package eval

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/qtree/ir"
	"github.com/signadot/qtree/parse"
)

func TestEval(t *testing.T) {
	root := parse.Parse("user[name]=ann&tags[]=a&tags[]=b&n=41")
	tests := []struct {
		src  string
		want any
	}{
		{`user.name`, "ann"},
		{`user.name + ":" + string(len(tags))`, "ann:2"},
		{`int(n) + 1`, "42"},
		{`tags[1]`, "b"},
		{`map(tags, upper(#))`, []any{"A", "B"}},
		{`missing`, nil},
		{`{"k": tags[0]}`, map[string]any{"k": "a"}},
		{`split("x,y", ",")`, []any{"x", "y"}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := Eval(root, tt.src)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, ir.ToAny(got)); diff != "" {
				t.Errorf("Eval(%s) mismatch (-want +got):\n%s", tt.src, diff)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	root := parse.Parse("tags[]=a&tags[]=b&f[x]=1")
	tests := []struct {
		src  string
		want bool
	}{
		{`"b" in tags`, true},
		{`page == nil`, true},
		{`f.x == "1" && len(tags) == 2`, true},
		{`"c" in tags`, false},
	}
	for _, tt := range tests {
		got, err := Match(root, tt.src)
		if err != nil {
			t.Fatalf("Match(%s): %v", tt.src, err)
		}
		if got != tt.want {
			t.Errorf("Match(%s) = %v, want %v", tt.src, got, tt.want)
		}
	}
}

func TestErrors(t *testing.T) {
	root := parse.Parse("a=1")
	if _, err := Eval(root, `a +`); !errors.Is(err, ErrEval) {
		t.Errorf("syntax error: got %v", err)
	}
	if _, err := Match(root, `a`); !errors.Is(err, ErrEval) {
		t.Errorf("non bool match: got %v", err)
	}
	if _, err := Eval(root, `a.b.c()`); !errors.Is(err, ErrEval) {
		t.Errorf("runtime error: got %v", err)
	}
}

func TestArrayRoot(t *testing.T) {
	root := parse.Parse("0=x&1=y", parse.PromoteRoot(true))
	got, err := Eval(root, `root[1]`)
	if err != nil {
		t.Fatal(err)
	}
	if got.String != "y" {
		t.Errorf("got %q", got.String)
	}
}

func TestProgramReuse(t *testing.T) {
	p, err := Compile(`len(tags)`)
	if err != nil {
		t.Fatal(err)
	}
	for q, want := range map[string]string{
		"tags[]=a":          "1",
		"tags[]=a&tags[]=b": "2",
	} {
		got, err := p.Eval(parse.Parse(q))
		if err != nil {
			t.Fatal(err)
		}
		if got.String != want {
			t.Errorf("%s: got %q want %q", q, got.String, want)
		}
	}
	if p.String() != "len(tags)" {
		t.Errorf("String() = %q", p.String())
	}
}
