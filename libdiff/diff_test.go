package libdiff

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/qtree/ir"
	"github.com/signadot/qtree/parse"
)

func diffStrings(from, to *ir.Node) []string {
	var res []string
	for _, c := range Diff(from, to) {
		res = append(res, c.String())
	}
	return res
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{
			name: "equal",
			from: "a[]=x&b[c]=1",
			to:   "a[]=x&b[c]=1",
		},
		{
			name: "array append",
			from: "a[]=x",
			to:   "a[]=x&a[]=y",
			want: []string{`+ a[1]: "y"`},
		},
		{
			name: "array shrink",
			from: "a[]=x&a[]=y",
			to:   "a[]=x",
			want: []string{`- a[1]: "y"`},
		},
		{
			name: "string change",
			from: "b=hello",
			to:   "b=hallo",
			want: []string{`~ b: h[-e-]{+a+}llo`},
		},
		{
			name: "field insert and delete",
			from: "a=1&b=2&c=3",
			to:   "a=1&c=3&d=4",
			want: []string{`- b: "2"`, `+ d: "4"`},
		},
		{
			name: "type change",
			from: "a=1",
			to:   "a[k]=1",
			want: []string{`~ a: "1" -> {"k":"1"}`},
		},
		{
			name: "nested",
			from: "f[x][]=1&f[y]=2",
			to:   "f[x][]=1&f[x][]=3&f[y]=2&f[z][w]=5",
			want: []string{`+ f.x[1]: "3"`, `+ f.z: {"w":"5"}`},
		},
		{
			name: "quoted field",
			from: "a[b c]=1",
			to:   "a[b c]=2",
			want: []string{`~ a."b c": [-1-]{+2+}`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := diffStrings(parse.Parse(tt.from), parse.Parse(tt.to))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Diff() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDiffRoot(t *testing.T) {
	got := diffStrings(ir.FromString("x"), ir.FromSlice(nil))
	if diff := cmp.Diff([]string{`~ .: "x" -> []`}, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffChangeFields(t *testing.T) {
	from := parse.Parse("a=1&b=2")
	to := parse.Parse("b=2")
	cs := Diff(from, to)
	if len(cs) != 1 {
		t.Fatalf("got %d changes", len(cs))
	}
	c := cs[0]
	if c.Op != Delete || c.Path != "a" || c.From != from.Get("a") || c.To != nil {
		t.Errorf("unexpected change %+v", c)
	}
}
