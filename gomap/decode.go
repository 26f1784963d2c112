package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/signadot/qtree/ir"
	"github.com/signadot/qtree/parse"
)

var ErrDecode = errors.New("decode error")

// IRFromer is implemented by types which decode themselves from a tree.
type IRFromer interface {
	FromIR(*ir.Node) error
}

var (
	nodeType      = reflect.TypeFor[*ir.Node]()
	fromerType    = reflect.TypeFor[IRFromer]()
	unmarshalType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Load parses query and decodes the resulting tree into p, which must
// be a non nil pointer.
func Load(query string, p any, opts ...parse.ParseOption) error {
	return FromIR(parse.Parse(query, opts...), p)
}

// FromIR decodes node into p, which must be a non nil pointer.
func FromIR(node *ir.Node, p any) error {
	v := reflect.ValueOf(p)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return fmt.Errorf("%w: need a non nil pointer, got %T", ErrDecode, p)
	}
	return decode(node, v.Elem())
}

func decode(node *ir.Node, v reflect.Value) error {
	if v.Type() == nodeType {
		v.Set(reflect.ValueOf(node.Clone()))
		return nil
	}
	if v.CanAddr() && v.Addr().Type().Implements(fromerType) {
		return v.Addr().Interface().(IRFromer).FromIR(node)
	}
	if node.Type == ir.NullType {
		v.SetZero()
		return nil
	}
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return decode(node, v.Elem())
	}
	if node.Type == ir.StringType && v.CanAddr() && v.Addr().Type().Implements(unmarshalType) {
		if err := v.Addr().Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(node.String)); err != nil {
			return decodeErr(node, err)
		}
		return nil
	}
	switch v.Kind() {
	case reflect.Interface:
		if v.NumMethod() != 0 {
			return mismatch(node, v)
		}
		if a := ir.ToAny(node); a != nil {
			v.Set(reflect.ValueOf(a))
		}
		return nil
	case reflect.Struct:
		return decodeStruct(node, v)
	case reflect.Map:
		return decodeMap(node, v)
	case reflect.Slice:
		return decodeSlice(node, v)
	case reflect.Array:
		return decodeArray(node, v)
	}
	if node.Type != ir.StringType {
		return mismatch(node, v)
	}
	return decodeScalar(node, v)
}

func decodeScalar(node *ir.Node, v reflect.Value) error {
	s := node.String
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return decodeErr(node, err)
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return decodeErr(node, err)
		}
		v.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(strings.TrimSpace(s), 10, v.Type().Bits())
		if err != nil {
			return decodeErr(node, err)
		}
		v.SetUint(u)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(strings.TrimSpace(s), v.Type().Bits())
		if err != nil {
			return decodeErr(node, err)
		}
		v.SetFloat(f)
	default:
		return mismatch(node, v)
	}
	return nil
}

func decodeStruct(node *ir.Node, v reflect.Value) error {
	if node.Type != ir.ObjectType {
		return mismatch(node, v)
	}
	fields := structFields(v.Type())
	for i, f := range node.Fields {
		info, ok := lookupField(fields, f.String)
		if !ok {
			continue
		}
		if err := decode(node.Values[i], fieldByIndex(v, info.index)); err != nil {
			return err
		}
	}
	return nil
}

func fieldByIndex(v reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				v.Set(reflect.New(v.Type().Elem()))
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v
}

func decodeMap(node *ir.Node, v reflect.Value) error {
	ty := v.Type()
	if node.Type != ir.ObjectType && node.Type != ir.ArrayType {
		return mismatch(node, v)
	}
	if v.IsNil() {
		v.Set(reflect.MakeMapWithSize(ty, node.Len()))
	}
	for i, val := range node.Values {
		key := strconv.Itoa(i)
		if node.Type == ir.ObjectType {
			key = node.Fields[i].String
		}
		kv := reflect.New(ty.Key()).Elem()
		if err := decode(ir.FromString(key), kv); err != nil {
			return fmt.Errorf("%w: key %q at %q: %w", ErrDecode, key, node.KPath(), err)
		}
		ev := reflect.New(ty.Elem()).Elem()
		if err := decode(val, ev); err != nil {
			return err
		}
		v.SetMapIndex(kv, ev)
	}
	return nil
}

func decodeSlice(node *ir.Node, v reflect.Value) error {
	if node.Type == ir.StringType {
		s := reflect.MakeSlice(v.Type(), 1, 1)
		if err := decode(node, s.Index(0)); err != nil {
			return err
		}
		v.Set(s)
		return nil
	}
	if node.Type != ir.ArrayType {
		return mismatch(node, v)
	}
	s := reflect.MakeSlice(v.Type(), node.Len(), node.Len())
	for i, val := range node.Values {
		if err := decode(val, s.Index(i)); err != nil {
			return err
		}
	}
	v.Set(s)
	return nil
}

func decodeArray(node *ir.Node, v reflect.Value) error {
	if node.Type != ir.ArrayType {
		return mismatch(node, v)
	}
	if node.Len() > v.Len() {
		return fmt.Errorf("%w: %d elements at %q do not fit in %s", ErrDecode, node.Len(), node.KPath(), v.Type())
	}
	for i := range v.Len() {
		if i >= node.Len() {
			v.Index(i).SetZero()
			continue
		}
		if err := decode(node.Values[i], v.Index(i)); err != nil {
			return err
		}
	}
	return nil
}

func mismatch(node *ir.Node, v reflect.Value) error {
	return fmt.Errorf("%w: cannot put %s at %q into %s", ErrDecode, node.Type, node.KPath(), v.Type())
}

func decodeErr(node *ir.Node, err error) error {
	return fmt.Errorf("%w: at %q: %w", ErrDecode, node.KPath(), err)
}
