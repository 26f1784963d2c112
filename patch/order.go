package patch

import (
	"slices"

	"github.com/signadot/qtree/ir"
)

// alignOrder reorders the object fields of res so that fields also
// present at the same place in orig come first, in orig's order.
func alignOrder(orig, res *ir.Node) {
	type pair struct{ orig, res *ir.Node }
	queue := []pair{{orig, res}}
	for i := 0; i < len(queue); i++ {
		o, r := queue[i].orig, queue[i].res
		if o.Type != r.Type {
			continue
		}
		switch r.Type {
		case ir.ArrayType:
			for j := range min(len(o.Values), len(r.Values)) {
				queue = append(queue, pair{o.Values[j], r.Values[j]})
			}
		case ir.ObjectType:
			pos := make(map[string]int, len(o.Fields))
			for j, f := range o.Fields {
				pos[f.String] = j
			}
			kvs := make([]ir.KeyVal, len(r.Fields))
			for j, f := range r.Fields {
				kvs[j] = ir.KeyVal{Key: f.String, Val: r.Values[j]}
			}
			slices.SortStableFunc(kvs, func(a, b ir.KeyVal) int {
				pa, aok := pos[a.Key]
				pb, bok := pos[b.Key]
				switch {
				case aok && bok:
					return pa - pb
				case aok:
					return -1
				case bok:
					return 1
				}
				return 0
			})
			ir.FromKeyValsAt(r, kvs)
			for _, kv := range kvs {
				if j, ok := pos[kv.Key]; ok {
					queue = append(queue, pair{o.Values[j], kv.Val})
				}
			}
		}
	}
}
