package parse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/signadot/qtree/ir"
)

// bracketRe matches one [...] group with no brackets inside.
var bracketRe = regexp.MustCompile(`\[[^\[\]]*\]`)

// builder inserts segments into an object tree, keeping a field index
// per object so lookups and appends do not scan.
type builder struct {
	root  *ir.Node
	index map[*ir.Node]*objIndex
}

// objIndex maps the keys of one object to their positions and tracks
// the largest integer key.  Keys are never removed from an object.
type objIndex struct {
	fields map[string]int
	maxInt int64
	hasInt bool
}

func newBuilder() *builder {
	return &builder{
		root:  ir.FromKeyVals(nil),
		index: map[*ir.Node]*objIndex{},
	}
}

func (b *builder) lookup(obj *ir.Node, key string) (*ir.Node, bool) {
	idx := b.index[obj]
	if idx == nil {
		return nil, false
	}
	i, ok := idx.fields[key]
	if !ok {
		return nil, false
	}
	return obj.Values[i], true
}

// set puts val at key in obj, replacing any value already there.
func (b *builder) set(obj *ir.Node, key string, val *ir.Node) {
	idx := b.index[obj]
	if idx == nil {
		idx = &objIndex{fields: map[string]int{}}
		b.index[obj] = idx
	}
	if i, ok := idx.fields[key]; ok {
		delete(b.index, obj.Values[i])
		obj.Replace(i, val)
		return
	}
	idx.fields[key] = len(obj.Values)
	if n, ok := parseIndex(key); ok && (!idx.hasInt || n > idx.maxInt) {
		idx.maxInt, idx.hasInt = n, true
	}
	obj.AddField(key, val)
}

func (b *builder) insert(key, val string) {
	base, tokens := splitKey(key)
	if len(tokens) == 0 {
		if _, ok := b.lookup(b.root, key); !ok {
			b.set(b.root, key, ir.FromString(val))
		}
		return
	}
	cur, curKey := b.root, base
	for _, tok := range tokens {
		next, ok := b.lookup(cur, curKey)
		if !ok || next.Type != ir.ObjectType {
			next = ir.FromKeyVals(nil)
			b.set(cur, curKey, next)
		}
		cur, curKey = next, tok
	}
	if curKey == "" {
		curKey = b.nextIndex(cur)
	}
	b.set(cur, curKey, ir.FromString(val))
}

// nextIndex gives the key for an append to obj: one more than the
// largest integer key present, or 0 when there is none.
func (b *builder) nextIndex(obj *ir.Node) string {
	idx := b.index[obj]
	if idx == nil || !idx.hasInt {
		return "0"
	}
	return strconv.FormatInt(idx.maxInt+1, 10)
}

// splitKey splits "a[b][c]" into "a" and ["b", "c"].  A key with no
// complete bracket group has no tokens.
func splitKey(key string) (string, []string) {
	groups := bracketRe.FindAllString(key, -1)
	if len(groups) == 0 {
		return key, nil
	}
	base, _, _ := strings.Cut(key, "[")
	tokens := make([]string, len(groups))
	for i, g := range groups {
		tokens[i] = g[1 : len(g)-1]
	}
	return base, tokens
}

// parseIndex reports whether k is an integer key, allowing surrounding
// space and a sign, within 32 bits.
func parseIndex(k string) (int64, bool) {
	i, err := strconv.ParseInt(strings.TrimSpace(k), 10, 32)
	return i, err == nil
}
