package parse

import (
	"testing"

	"github.com/signadot/qtree/ir"
)

func TestNormalizeIdempotent(t *testing.T) {
	for _, q := range []string{
		"a[]=x&a[]=y",
		"a[x][0]=v&a[y][k]=w",
		"a[0][0][0]=x&a[1][n]=y",
		"0=a&1=b",
		"a[0][b][0]=1&a[0][b][1]=2",
	} {
		once := Parse(q)
		twice := Normalize(once.Clone())
		if !ir.Equal(once, twice) {
			t.Errorf("%s: normalize changed a normalized tree:\n%s\n%s", q, wire(once), wire(twice))
		}
	}
}

func TestNormalizeBuiltTree(t *testing.T) {
	kv := func(k string, v *ir.Node) ir.KeyVal { return ir.KeyVal{Key: k, Val: v} }
	root := ir.FromKeyVals([]ir.KeyVal{
		kv("0", ir.FromString("root is exempt")),
		kv("empty", ir.FromKeyVals(nil)),
		kv("arr", ir.FromSlice([]*ir.Node{
			ir.FromKeyVals([]ir.KeyVal{kv("1", ir.FromString("a")), kv("0", ir.FromString("b"))}),
			ir.FromKeyVals([]ir.KeyVal{kv("k", ir.FromKeyVals([]ir.KeyVal{kv("7", ir.FromString("c"))}))}),
		})),
	})
	got := wire(Normalize(root))
	want := `{"0":"root is exempt","empty":[],"arr":[["a","b"],{"k":["c"]}]}`
	if got != want {
		t.Errorf("got %s\nwant %s", got, want)
	}
}

func TestNormalizeScalarRoot(t *testing.T) {
	n := ir.FromString("x")
	if got := Normalize(n); got != n || got.Type != ir.StringType {
		t.Error("scalar should be left alone")
	}
}

func TestNormalizeDeep(t *testing.T) {
	q := "a"
	for range 5000 {
		q += "[0]"
	}
	root := Parse(q + "=x")
	n := root.Get("a")
	depth := 0
	for n.Type == ir.ArrayType {
		n = n.Values[0]
		depth++
	}
	if depth != 5000 || n.String != "x" {
		t.Errorf("depth %d leaf %q", depth, n.String)
	}
}
