package qtree

import (
	"github.com/signadot/qtree/debug"
	"github.com/signadot/qtree/ir"
)

type MatchConfig struct {
	Any    string
	HasAny bool
}

type MatchOpt func(*MatchConfig)

// MatchAny makes a string in the pattern equal to v match any value.
func MatchAny(v string) MatchOpt {
	return func(c *MatchConfig) { c.Any, c.HasAny = v, true }
}

// Match reports whether doc matches pattern.  A null pattern matches
// anything; objects match when each pattern field matches the field of
// the same name in doc; arrays match element wise and must have the
// same length; strings must be equal.
func Match(doc, pattern *ir.Node, opts ...MatchOpt) bool {
	cfg := &MatchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.match(doc, pattern)
}

func (c *MatchConfig) match(doc, pattern *ir.Node) bool {
	if debug.Match() {
		debug.Logf("match %s at %q\n", pattern.Type, pattern.KPath())
	}
	if c.HasAny && pattern.Type == ir.StringType && pattern.String == c.Any {
		return true
	}
	if pattern.Type == ir.NullType {
		return true
	}
	if doc.Type != pattern.Type {
		return false
	}
	switch pattern.Type {
	case ir.ObjectType:
		return c.matchObj(doc, pattern)
	case ir.ArrayType:
		return c.matchArray(doc, pattern)
	case ir.StringType:
		return doc.String == pattern.String
	}
	return false
}

func (c *MatchConfig) matchObj(doc, pattern *ir.Node) bool {
	for i, field := range pattern.Fields {
		v := doc.Get(field.String)
		if v == nil {
			return false
		}
		if !c.match(v, pattern.Values[i]) {
			return false
		}
	}
	return true
}

func (c *MatchConfig) matchArray(doc, pattern *ir.Node) bool {
	if len(doc.Values) != len(pattern.Values) {
		return false
	}
	for i := range doc.Values {
		if !c.match(doc.Values[i], pattern.Values[i]) {
			return false
		}
	}
	return true
}

// Trim filters doc down to the fields present in pattern.  Array
// elements are kept when they match some pattern element, each doc
// element being used at most once.
func Trim(pattern, doc *ir.Node, opts ...MatchOpt) *ir.Node {
	cfg := &MatchConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.trim(pattern, doc)
}

func (c *MatchConfig) trim(pattern, doc *ir.Node) *ir.Node {
	switch {
	case pattern.Type == ir.ObjectType && doc.Type == ir.ObjectType:
		res := ir.FromKeyVals(nil)
		for i, field := range doc.Fields {
			p := pattern.Get(field.String)
			if p == nil {
				continue
			}
			res.AddField(field.String, c.trim(p, doc.Values[i]))
		}
		return res
	case pattern.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		res := ir.FromSlice(nil)
		used := make([]bool, len(doc.Values))
		for _, p := range pattern.Values {
			for i, elt := range doc.Values {
				if used[i] || !c.match(elt, p) {
					continue
				}
				res.AddValue(c.trim(p, elt))
				used[i] = true
				break
			}
		}
		return res
	default:
		res := doc.Clone()
		res.Parent = nil
		return res
	}
}
