package encode

import (
	"fmt"
	"io"
	"net/url"
	"strconv"

	"github.com/signadot/qtree/ir"
)

// encodeQuery writes node in bracket notation.  Arrays are written
// with explicit indices so that nested structure survives a parse.
//
// Parsing the output does not always give node back:
//   - empty objects and arrays have no representation and are skipped
//   - a null leaf is written "key=" and reads back as ""
//   - an object below the root whose keys are all integers reads back
//     as an array
//   - an array root reads back as an object with integer keys
func encodeQuery(node *ir.Node, w io.Writer, es *EncState) error {
	if node.Type.IsLeaf() {
		return fmt.Errorf("%w: query root must be an object or array, got %s", ErrEncode, node.Type)
	}
	qe := &queryEnc{w: w, es: es}
	return qe.container(node, "", true)
}

type queryEnc struct {
	w       io.Writer
	es      *EncState
	written bool
}

func (qe *queryEnc) container(n *ir.Node, key string, top bool) error {
	for i, v := range n.Values {
		sub := strconv.Itoa(i)
		if n.Type == ir.ObjectType {
			sub = url.QueryEscape(n.Fields[i].String)
		}
		if !top {
			sub = key + "[" + sub + "]"
		}
		if !v.Type.IsLeaf() {
			if err := qe.container(v, sub, false); err != nil {
				return err
			}
			continue
		}
		if err := qe.leaf(v, n.Type, sub); err != nil {
			return err
		}
	}
	return nil
}

func (qe *queryEnc) leaf(v *ir.Node, parent ir.Type, key string) error {
	es := qe.es
	seg := es.color(parent, FieldColor, key) + es.color(v.Type, SepColor, "=")
	if v.Type == ir.StringType {
		seg += es.color(ir.StringType, ValueColor, url.QueryEscape(v.String))
	}
	if qe.written {
		seg = es.color(ir.ObjectType, SepColor, "&") + seg
	}
	qe.written = true
	return writeString(qe.w, seg)
}
