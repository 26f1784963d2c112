package ir

import "testing"

func TestAddFieldLinks(t *testing.T) {
	obj := FromKeyVals(nil)
	a := FromString("1")
	b := FromSlice([]*Node{FromString("x"), FromString("y")})
	obj.AddField("a", a)
	obj.AddField("b", b)

	if obj.Get("a") != a || obj.Get("b") != b {
		t.Fatal("Get did not return the added values")
	}
	if obj.Get("c") != nil {
		t.Error("Get of missing field should be nil")
	}
	if b.Parent != obj || b.ParentIndex != 1 || b.ParentField != "b" {
		t.Errorf("bad links on b: %v %d %q", b.Parent, b.ParentIndex, b.ParentField)
	}
	if y := b.Values[1]; y.Parent != b || y.ParentIndex != 1 || y.ParentField != "" {
		t.Errorf("bad links on b[1]")
	}
	if got := obj.Keys(); len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Keys() = %v", got)
	}
}

func TestFromMapSorted(t *testing.T) {
	obj := FromMap(map[string]*Node{
		"z": FromString("1"),
		"a": FromString("2"),
		"m": FromString("3"),
	})
	got := obj.Keys()
	want := []string{"a", "m", "z"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
	}
}

func TestReplace(t *testing.T) {
	obj := FromKeyVals([]KeyVal{{Key: "a", Val: FromString("1")}})
	n := FromSlice(nil)
	obj.Replace(0, n)
	if obj.Get("a") != n || n.Parent != obj || n.ParentField != "a" {
		t.Error("Replace did not relink the value")
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: "a", Val: FromSlice([]*Node{FromString("x")})},
		{Key: "b", Val: FromString("y")},
	})
	c := orig.Clone()
	if !Equal(orig, c) {
		t.Fatal("clone differs from original")
	}
	c.Values[0].Values[0].String = "changed"
	if orig.Values[0].Values[0].String != "x" {
		t.Error("clone shares structure with original")
	}
	if c.Values[0].Parent != c || c.Values[0].Values[0].Parent != c.Values[0] {
		t.Error("clone parent links do not point into the clone")
	}
}

func TestTypeText(t *testing.T) {
	for _, typ := range Types() {
		d, err := typ.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var back Type
		if err := back.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if back != typ {
			t.Errorf("%s round tripped to %s", typ, back)
		}
	}
	var x Type
	if err := x.UnmarshalText([]byte("Number")); err == nil {
		t.Error("expected error for unknown type")
	}
}
