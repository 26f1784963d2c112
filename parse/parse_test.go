package parse

import (
	"net/url"
	"strings"
	"testing"

	"github.com/signadot/qtree/encode"
	"github.com/signadot/qtree/ir"
)

type parseTest struct {
	in   string
	want string
	opts []ParseOption
}

func wire(n *ir.Node) string {
	return encode.MustString(n, encode.EncodeWire(true))
}

func runParseTests(t *testing.T, pts []parseTest) {
	t.Helper()
	for _, pt := range pts {
		t.Run(pt.in, func(t *testing.T) {
			got := Parse(pt.in, pt.opts...)
			if got.Type.IsLeaf() {
				t.Fatalf("root is a %s", got.Type)
			}
			if w := wire(got); w != pt.want {
				t.Errorf("Parse(%q)\n got %s\nwant %s", pt.in, w, pt.want)
			}
		})
	}
}

func TestParseBasics(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: "", want: `{}`},
		{in: "?", want: `{}`},
		{in: "&&", want: `{}`},
		{in: "a=1", want: `{"a":"1"}`},
		{in: "?a=1", want: `{"a":"1"}`},
		{in: "??a=1", want: `{"?a":"1"}`},
		{in: "a=1&b=2&", want: `{"a":"1","b":"2"}`},
		{in: "b=1&a=2", want: `{"b":"1","a":"2"}`},
		{in: "flag", want: `{"flag":""}`},
		{in: "a=", want: `{"a":""}`},
		{in: "=x", want: `{"":"x"}`},
	})
}

func TestParseStructure(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: "a[b]=1&a[c]=2", want: `{"a":{"b":"1","c":"2"}}`},
		{in: "a[]=x&a[]=y", want: `{"a":["x","y"]}`},
		{in: "a[0]=x&a[1]=y", want: `{"a":["x","y"]}`},
		{in: "a[x][0]=v", want: `{"a":{"x":["v"]}}`},
		{in: "a[1]=x&a[0]=y", want: `{"a":["x","y"]}`},
		{in: "a[0]=x&a[b]=y", want: `{"a":{"0":"x","b":"y"}}`},
		{in: "a[0][0][0]=x", want: `{"a":[[["x"]]]}`},
		{in: "a[0][n]=x&a[1][n]=y", want: `{"a":[{"n":"x"},{"n":"y"}]}`},
		{in: "a[0][0]=x&a[0][k]=y&a[1][0]=z", want: `{"a":[{"0":"x","k":"y"},["z"]]}`},
		{in: "a[][b]=1", want: `{"a":{"":{"b":"1"}}}`},
		{in: "a[ 1 ]=x&a[-2]=y&a[+3]=z", want: `{"a":["x","y","z"]}`},
		{in: "a[2147483648]=x", want: `{"a":{"2147483648":"x"}}`},
		{in: "0=a&1=b", want: `{"0":"a","1":"b"}`},
		{in: "x[y]z[w]=1", want: `{"x":{"y":{"w":"1"}}}`},
	})
}

func TestParseAppend(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: "a[]=x&a[5]=y&a[]=z", want: `{"a":["x","y","z"]}`},
		{in: "a[k]=x&a[]=y", want: `{"a":{"k":"x","0":"y"}}`},
		{in: "a[3]=x&a[k]=y&a[]=z", want: `{"a":{"3":"x","k":"y","4":"z"}}`},
		{in: "a[b][]=1&a[b][]=2&a[c]=3", want: `{"a":{"b":["1","2"],"c":"3"}}`},
		{in: "a[-5]=x&a[]=y&a[-4]=z", want: `{"a":["x","z"]}`},
		{in: "a[-5]=x&a[]=y&a[k]=1", want: `{"a":{"-5":"x","-4":"y","k":"1"}}`},
		{in: "a[b]=1&a[]=x&a[b][]=y&a[]=z", want: `{"a":{"b":["y"],"0":"x","1":"z"}}`},
	})
}

func TestParseAppendScales(t *testing.T) {
	const n = 100000
	root := Parse(strings.Repeat("a[]=x&", n) + "a[]=last")
	a := root.Get("a")
	if a == nil || a.Type != ir.ArrayType || a.Len() != n+1 {
		t.Fatalf("got %v", a)
	}
	if got := a.Values[n].String; got != "last" {
		t.Errorf("last element is %q", got)
	}
}

func TestParseDuplicates(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: "a=1&a=2", want: `{"a":"1"}`},
		{in: "a[0]=x&a[0]=y", want: `{"a":["y"]}`},
		{in: "a[b]=1&a[b]=2", want: `{"a":{"b":"2"}}`},
		{in: "a[b]=1&a=2", want: `{"a":{"b":"1"}}`},
		{in: "a=1&a[b]=2", want: `{"a":{"b":"2"}}`},
		{in: "a[b]=1&a[b][c]=2", want: `{"a":{"b":{"c":"2"}}}`},
		{in: "a[b][c]=1&a[b]=2", want: `{"a":{"b":"2"}}`},
	})
}

func TestParseEquals(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: "a=b=c", want: `{"a":"c"}`},
		{in: "a==", want: `{"a":""}`},
		{in: "a=b=c", want: `{"a":"b=c"}`, opts: []ParseOption{SplitFirstEquals(true)}},
		{in: "a[x]=1=2", want: `{"a":{"x":"1=2"}}`, opts: []ParseOption{SplitFirstEquals(true)}},
		{in: "a", want: `{"a":""}`, opts: []ParseOption{SplitFirstEquals(true)}},
	})
}

func TestParseMalformedBrackets(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: "a[b=1", want: `{"a[b":"1"}`},
		{in: "a]=1", want: `{"a]":"1"}`},
		{in: "a[[x]]=v", want: `{"a":{"x":"v"}}`},
		{in: "[x]=v", want: `{"":{"x":"v"}}`},
		{in: "a[b[c]]=v", want: `{"a":{"c":"v"}}`},
	})
}

func TestParseDecoding(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: "a=x+y", want: `{"a":"x y"}`},
		{in: "a=%E2%82%AC", want: `{"a":"€"}`},
		{in: "a%5B%5D=1&a%5B%5D=2", want: `{"a":["1","2"]}`},
		{in: "a=b%26c=d", want: `{"a":"b","c":"d"}`},
		{in: "%3Fa=1", want: `{"a":"1"}`},
		{in: "a=%zz&b=%4", want: `{"a":"%zz","b":"%4"}`},
		{in: "a=%41%zz+", want: `{"a":"A%zz "}`},
		{in: "a=%ff", want: `{"a":"�"}`},
		{in: "a=%2541", want: `{"a":"%41"}`},
	})
}

func TestParseRootPromotion(t *testing.T) {
	runParseTests(t, []parseTest{
		{in: "0=a&1=b", want: `["a","b"]`, opts: []ParseOption{PromoteRoot(true)}},
		{in: "0=a&b=b", want: `{"0":"a","b":"b"}`, opts: []ParseOption{PromoteRoot(true)}},
		{in: "0[x]=a&1[0]=b", want: `[{"x":"a"},["b"]]`, opts: []ParseOption{PromoteRoot(true)}},
		{in: "", want: `{}`, opts: []ParseOption{PromoteRoot(true)}},
		{in: "?&", want: `{}`, opts: []ParseOption{PromoteRoot(true)}},
	})
}

func TestParseURL(t *testing.T) {
	u, err := url.Parse("https://example.com/api/process?a[]=1&a[]=2&b=x%20y")
	if err != nil {
		t.Fatal(err)
	}
	if got := wire(ParseURL(u)); got != `{"a":["1","2"],"b":"x y"}` {
		t.Errorf("ParseURL = %s", got)
	}
	if got := wire(ParseURL(nil)); got != `{}` {
		t.Errorf("ParseURL(nil) = %s", got)
	}
}

func TestParseLinks(t *testing.T) {
	root := Parse("a[x][]=1&a[x][]=2&a[y]=3")
	n, err := root.GetKPath("a.x[1]")
	if err != nil {
		t.Fatal(err)
	}
	if n.String != "2" || n.KPath() != "a.x[1]" {
		t.Errorf("got %q at %q", n.String, n.KPath())
	}
	x := root.Get("a").Get("x")
	if x.Type != ir.ArrayType || x.Fields != nil {
		t.Errorf("a.x not promoted cleanly: %s %v", x.Type, x.Fields)
	}
	for i, v := range x.Values {
		if v.Parent != x || v.ParentIndex != i || v.ParentField != "" {
			t.Errorf("bad links at a.x[%d]", i)
		}
	}
}
