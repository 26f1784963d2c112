package libdiff

import (
	"strings"

	"github.com/signadot/qtree/encode"
	"github.com/signadot/qtree/ir"
	"github.com/signadot/qtree/ir/kpath"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (op Op) String() string {
	switch op {
	case Insert:
		return "+"
	case Delete:
		return "-"
	case Replace:
		return "~"
	}
	return "?"
}

// Change is one difference between two trees at Path.  For an Insert
// From is nil, for a Delete To is nil.  Text holds the character diff
// when both sides are strings.
type Change struct {
	Path string
	Op   Op
	From *ir.Node
	To   *ir.Node
	Text []diffpatch.Diff
}

func (c Change) String() string {
	path := c.Path
	if path == "" {
		path = "."
	}
	var val string
	switch {
	case c.Op == Insert:
		val = show(c.To)
	case c.Op == Delete:
		val = show(c.From)
	case c.Text != nil:
		val = textString(c.Text)
	default:
		val = show(c.From) + " -> " + show(c.To)
	}
	return c.Op.String() + " " + path + ": " + val
}

func show(n *ir.Node) string {
	return encode.MustString(n, encode.EncodeWire(true))
}

func textString(diffs []diffpatch.Diff) string {
	buf := &strings.Builder{}
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			buf.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			buf.WriteString("{+" + d.Text + "+}")
		default:
			buf.WriteString(d.Text)
		}
	}
	return buf.String()
}

// Diff returns the changes which turn from into to, in document order.
// Equal trees give no changes.
func Diff(from, to *ir.Node) []Change {
	var res []Change
	diff(nil, from, to, &res)
	return res
}

func diff(at *kpath.KPath, from, to *ir.Node, res *[]Change) {
	if from.Type != to.Type {
		*res = append(*res, Change{Path: at.String(), Op: Replace, From: from, To: to})
		return
	}
	switch from.Type {
	case ir.StringType:
		if from.String == to.String {
			return
		}
		*res = append(*res, Change{
			Path: at.String(),
			Op:   Replace,
			From: from,
			To:   to,
			Text: DiffString(from.String, to.String),
		})
	case ir.ArrayType:
		diffArrayByIndex(at, from, to, res)
	case ir.ObjectType:
		diffObject(at, from, to, res)
	}
}

// DiffString gives a semantically cleaned up character diff.
func DiffString(from, to string) []diffpatch.Diff {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, false)
	return dmp.DiffCleanupSemantic(diffs)
}

func diffArrayByIndex(at *kpath.KPath, from, to *ir.Node, res *[]Change) {
	n := min(len(from.Values), len(to.Values))
	for i := range n {
		diff(at.Append(kpath.Index(i)), from.Values[i], to.Values[i], res)
	}
	for i := n; i < len(from.Values); i++ {
		*res = append(*res, Change{Path: at.Append(kpath.Index(i)).String(), Op: Delete, From: from.Values[i]})
	}
	for i := n; i < len(to.Values); i++ {
		*res = append(*res, Change{Path: at.Append(kpath.Index(i)).String(), Op: Insert, To: to.Values[i]})
	}
}

// diffObject aligns the two field lists with a rune diff, one rune
// per distinct field name, and recurses on fields present in both.
func diffObject(at *kpath.KPath, from, to *ir.Node, res *[]Change) {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffs := diffpatch.New().DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			field := at.Append(kpath.Field(runeMap[r]))
			switch d.Type {
			case diffpatch.DiffDelete:
				*res = append(*res, Change{Path: field.String(), Op: Delete, From: from.Values[fi]})
				fi++
			case diffpatch.DiffEqual:
				diff(field, from.Values[fi], to.Values[ti], res)
				fi++
				ti++
			case diffpatch.DiffInsert:
				*res = append(*res, Change{Path: field.String(), Op: Insert, To: to.Values[ti]})
				ti++
			}
		}
	}
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			if r >= 0xD800 {
				// skip surrogates, which do not survive string conversion
				r += 0x800
			}
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
