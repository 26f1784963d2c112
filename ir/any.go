package ir

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/goccy/go-yaml"
)

// ToAny converts a node to its generic form: string, map[string]any,
// []any or nil.  Field order is lost for objects.
func ToAny(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(map[string]any, len(node.Fields))
		for i, field := range node.Fields {
			res[field.String] = ToAny(node.Values[i])
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToAny(elt)
		}
		return res
	case StringType:
		return node.String
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// ToMapSlice converts a node to a generic form like ToAny, but
// objects become yaml.MapSlice so field order is kept.
func ToMapSlice(node *Node) any {
	switch node.Type {
	case ObjectType:
		res := make(yaml.MapSlice, len(node.Fields))
		for i, field := range node.Fields {
			res[i] = yaml.MapItem{Key: field.String, Value: ToMapSlice(node.Values[i])}
		}
		return res
	case ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToMapSlice(elt)
		}
		return res
	case StringType:
		return node.String
	case NullType:
		return nil
	default:
		panic("impossible production")
	}
}

// FromAny converts a generic value into a node.  Maps with string keys
// are sorted by key, yaml.MapSlice keeps its order.  Numbers and
// booleans become strings holding their literal form, since the tree
// only carries string scalars.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case []*Node:
		return FromSlice(x), nil
	case string:
		return FromString(x), nil
	case bool:
		return FromString(strconv.FormatBool(x)), nil
	case int:
		return FromString(strconv.Itoa(x)), nil
	case int64:
		return FromString(strconv.FormatInt(x, 10)), nil
	case uint64:
		return FromString(strconv.FormatUint(x, 10)), nil
	case float64:
		return FromString(strconv.FormatFloat(x, 'f', -1, 64)), nil
	case int8, int16, int32, uint, uint8, uint16, uint32, float32:
		return FromString(fmt.Sprint(x)), nil
	case json.Number:
		return FromString(x.String()), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case yaml.MapSlice:
		res := FromKeyVals(nil)
		for _, item := range x {
			n, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			res.AddField(fmt.Sprint(item.Key), n)
		}
		return res, nil
	case []string:
		res := FromSlice(nil)
		for _, elt := range x {
			res.AddValue(FromString(elt))
		}
		return res, nil
	case []any:
		res := FromSlice(nil)
		for _, elt := range x {
			n, err := FromAny(elt)
			if err != nil {
				return nil, err
			}
			res.AddValue(n)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrFromAny, v)
	}
}

// FromJSON reads a JSON (or YAML) document into a node, preserving
// the order of object fields.
func FromJSON(d []byte) (*Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}
