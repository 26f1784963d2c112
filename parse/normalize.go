package parse

import (
	"github.com/signadot/qtree/debug"
	"github.com/signadot/qtree/ir"
)

// Normalize turns every object strictly below node whose keys all
// parse as integers into an array of its values, keeping insertion
// order.  It works in place, breadth first, and returns node.
// Normalizing a normalized tree changes nothing.
func Normalize(node *ir.Node) *ir.Node {
	normalize(node, false)
	return node
}

func normalize(root *ir.Node, promoteRoot bool) {
	if promoteRoot && root.Type == ir.ObjectType && len(root.Fields) != 0 && indexKeyed(root) {
		promote(root)
	}
	queue := []*ir.Node{root}
	for i := 0; i < len(queue); i++ {
		for _, v := range queue[i].Values {
			switch v.Type {
			case ir.ObjectType:
				if indexKeyed(v) {
					promote(v)
				}
				queue = append(queue, v)
			case ir.ArrayType:
				queue = append(queue, v)
			}
		}
	}
}

func indexKeyed(obj *ir.Node) bool {
	for _, f := range obj.Fields {
		if _, ok := parseIndex(f.String); !ok {
			return false
		}
	}
	return true
}

func promote(obj *ir.Node) {
	if debug.Normalize() {
		debug.Logf("promoting %q with keys %v\n", obj.KPath(), obj.Keys())
	}
	obj.Type = ir.ArrayType
	obj.Fields = nil
	for _, v := range obj.Values {
		v.ParentField = ""
	}
}
