package gomap

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/signadot/qtree/encode"
	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/ir"
)

var ErrEncode = errors.New("encode error")

// IRToer is implemented by types which give their own tree.
type IRToer interface {
	ToIR() (*ir.Node, error)
}

var (
	toerType    = reflect.TypeFor[IRToer]()
	marshalType = reflect.TypeFor[encoding.TextMarshaler]()
)

// Dump renders v as a query string.
func Dump(v any) (string, error) {
	node, err := ToIR(v)
	if err != nil {
		return "", err
	}
	if node.Type.IsLeaf() {
		return "", fmt.Errorf("%w: %T is not a struct, map or slice", ErrEncode, v)
	}
	return encode.MustString(node, encode.EncodeFormat(format.QueryFormat)), nil
}

// ToIR converts v into a tree.  Map keys are sorted, struct fields
// keep their declaration order.
func ToIR(v any) (*ir.Node, error) {
	if v == nil {
		return ir.Null(), nil
	}
	return toIR(reflect.ValueOf(v))
}

func toIR(v reflect.Value) (*ir.Node, error) {
	if v.Type() == nodeType {
		if v.IsNil() {
			return ir.Null(), nil
		}
		return v.Interface().(*ir.Node).Clone(), nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return ir.Null(), nil
		}
	}
	if v.Type().Implements(toerType) {
		return v.Interface().(IRToer).ToIR()
	}
	if v.Type().Implements(marshalType) {
		d, err := v.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncode, err)
		}
		return ir.FromString(string(d)), nil
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return toIR(v.Elem())
	case reflect.String:
		return ir.FromString(v.String()), nil
	case reflect.Bool:
		return ir.FromString(strconv.FormatBool(v.Bool())), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromString(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return ir.FromString(strconv.FormatUint(v.Uint(), 10)), nil
	case reflect.Float32, reflect.Float64:
		return ir.FromString(strconv.FormatFloat(v.Float(), 'f', -1, v.Type().Bits())), nil
	case reflect.Slice:
		if v.IsNil() {
			return ir.Null(), nil
		}
		return sliceToIR(v)
	case reflect.Array:
		return sliceToIR(v)
	case reflect.Map:
		if v.IsNil() {
			return ir.Null(), nil
		}
		return mapToIR(v)
	case reflect.Struct:
		return structToIR(v)
	}
	return nil, fmt.Errorf("%w: unsupported type %s", ErrEncode, v.Type())
}

func sliceToIR(v reflect.Value) (*ir.Node, error) {
	res := ir.FromSlice(nil)
	for i := range v.Len() {
		n, err := toIR(v.Index(i))
		if err != nil {
			return nil, err
		}
		res.AddValue(n)
	}
	return res, nil
}

func mapToIR(v reflect.Value) (*ir.Node, error) {
	m := make(map[string]*ir.Node, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		k, err := toIR(iter.Key())
		if err != nil {
			return nil, err
		}
		if k.Type != ir.StringType {
			return nil, fmt.Errorf("%w: map key type %s", ErrEncode, v.Type().Key())
		}
		n, err := toIR(iter.Value())
		if err != nil {
			return nil, err
		}
		m[k.String] = n
	}
	return ir.FromMap(m), nil
}

func structToIR(v reflect.Value) (*ir.Node, error) {
	res := ir.FromKeyVals(nil)
	for _, f := range structFields(v.Type()) {
		fv, ok := fieldValue(v, f.index)
		if !ok {
			continue
		}
		if f.omitEmpty && fv.IsZero() {
			continue
		}
		n, err := toIR(fv)
		if err != nil {
			return nil, err
		}
		res.AddField(f.name, n)
	}
	return res, nil
}

// fieldValue is like reflect.Value.FieldByIndex but reports false for
// fields behind a nil embedded pointer.
func fieldValue(v reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 && v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(x)
	}
	return v, true
}
