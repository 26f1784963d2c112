package parse

import (
	"net/url"
	"strings"

	"github.com/signadot/qtree/debug"
	"github.com/signadot/qtree/ir"
)

// Parse parses a raw query string such as "?a[b]=1&c[]=2" into a tree
// whose root is always an object.  The empty string yields an empty
// object.
func Parse(raw string, opts ...ParseOption) *ir.Node {
	pOpts := &parseOpts{}
	for _, opt := range opts {
		opt(pOpts)
	}
	b := newBuilder()
	if raw == "" {
		return b.root
	}
	q := strings.TrimPrefix(unescape(raw), "?")
	for _, seg := range strings.Split(q, "&") {
		if seg == "" {
			continue
		}
		key, val := splitSegment(seg, pOpts.splitFirstEquals)
		if debug.Parse() {
			debug.Logf("segment %q key %q value %q\n", seg, key, val)
		}
		b.insert(key, val)
	}
	normalize(b.root, pOpts.promoteRoot)
	return b.root
}

// ParseURL parses the query component of u.  A nil url yields an
// empty object.
func ParseURL(u *url.URL, opts ...ParseOption) *ir.Node {
	if u == nil {
		return Parse("", opts...)
	}
	return Parse(u.RawQuery, opts...)
}

func splitSegment(seg string, firstEquals bool) (key, val string) {
	i := strings.IndexByte(seg, '=')
	if i == -1 {
		return seg, ""
	}
	key = seg[:i]
	if firstEquals {
		return key, seg[i+1:]
	}
	return key, seg[strings.LastIndexByte(seg, '=')+1:]
}
