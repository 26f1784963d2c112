package ir

import (
	"fmt"
	"strconv"

	"github.com/signadot/qtree/ir/kpath"
)

// KPath returns the kinded path string representation of this node's position in the tree.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "a"
//   - Array element at index 0 → "[0]"
//   - Mixed "a[0].b" → "a[0].b"
func (y *Node) KPath() string {
	if y.Parent == nil {
		return ""
	}
	switch y.Parent.Type {
	case ObjectType:
		f := kpath.QuoteField(y.ParentField)
		prefix := y.Parent.KPath()
		if prefix == "" {
			return f
		}
		return prefix + "." + f
	case ArrayType:
		return y.Parent.KPath() + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// GetKPath navigates the tree rooted at y using a kinded path.
// Wildcards are not allowed.  It returns an error wrapping ErrNotFound
// when the path does not exist.
func (y *Node) GetKPath(kp string) (*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPath, err)
	}
	res := y
	for x := p; x != nil; x = x.Next {
		if x.FieldAll || x.IndexAll {
			return nil, fmt.Errorf("%w: wildcard in get %q", ErrPath, kp)
		}
		next, err := res.step(x)
		if err != nil {
			return nil, fmt.Errorf("%w at %q", err, kp)
		}
		res = next
	}
	return res, nil
}

func (y *Node) step(x *kpath.KPath) (*Node, error) {
	switch {
	case x.Field != nil:
		if y.Type != ObjectType {
			return nil, fmt.Errorf("%w: field %q on %s", ErrNotFound, *x.Field, y.Type)
		}
		v := y.Get(*x.Field)
		if v == nil {
			return nil, fmt.Errorf("%w: field %q", ErrNotFound, *x.Field)
		}
		return v, nil
	case x.Index != nil:
		if y.Type != ArrayType {
			return nil, fmt.Errorf("%w: index %d on %s", ErrNotFound, *x.Index, y.Type)
		}
		if *x.Index >= len(y.Values) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrNotFound, *x.Index)
		}
		return y.Values[*x.Index], nil
	}
	return nil, fmt.Errorf("%w: empty segment", ErrPath)
}

// ListKPath returns all nodes matching a kinded path which may contain
// wildcards, in document order.  Non matching branches are skipped.
func (y *Node) ListKPath(kp string) ([]*Node, error) {
	p, err := kpath.Parse(kp)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPath, err)
	}
	cur := []*Node{y}
	for x := p; x != nil; x = x.Next {
		var next []*Node
		for _, n := range cur {
			switch {
			case x.FieldAll:
				if n.Type == ObjectType {
					next = append(next, n.Values...)
				}
			case x.IndexAll:
				if n.Type == ArrayType {
					next = append(next, n.Values...)
				}
			default:
				if v, err := n.step(x); err == nil {
					next = append(next, v)
				}
			}
		}
		cur = next
	}
	return cur, nil
}
