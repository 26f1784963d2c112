package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String string
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return FromStringAt(&Node{}, v)
}

func FromStringAt(p *Node, v string) *Node {
	p.Type = StringType
	p.String = v
	return p
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		res.AddField(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// FromMap creates an object node whose fields are the sorted keys of yMap.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: key, Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, 0, len(ySlice))
	for _, y := range ySlice {
		res.AddValue(y)
	}
	return res
}

// AddField appends a field to an object node.  It does not check
// whether the field is already present.
func (y *Node) AddField(key string, val *Node) {
	i := len(y.Values)
	field := &Node{
		Type:        StringType,
		String:      key,
		Parent:      y,
		ParentIndex: i,
		ParentField: key,
	}
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = key
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, val)
}

// AddValue appends a value to an array node.
func (y *Node) AddValue(val *Node) {
	val.Parent = y
	val.ParentIndex = len(y.Values)
	val.ParentField = ""
	y.Values = append(y.Values, val)
}

// Replace puts val at position i of y.Values, keeping
// the parent links of val consistent with its new position.
func (y *Node) Replace(i int, val *Node) {
	val.Parent = y
	val.ParentIndex = i
	val.ParentField = ""
	if y.Type == ObjectType {
		val.ParentField = y.Fields[i].String
	}
	y.Values[i] = val
}

// Get returns the value of field in an object node, or nil.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

func (y *Node) Len() int {
	return len(y.Values)
}

// Keys returns the field names of an object node in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.String = y.String
	dst.Fields = nil
	dst.Values = nil
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yf := range y.Fields {
		dstF := &Node{}
		yf.CloneTo(dstF)
		dstF.Parent = dst
		dst.Fields[i] = dstF
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dst.Values[i] = dstI
	}
	return dst
}
