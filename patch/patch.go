package patch

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/signadot/qtree/debug"
	"github.com/signadot/qtree/encode"
	"github.com/signadot/qtree/ir"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
)

var ErrPatch = errors.New("patch error")

// Apply applies an RFC 6902 patch to doc and returns the patched
// tree.  doc is not modified.
func Apply(doc *ir.Node, patchDoc []byte) (*ir.Node, error) {
	d, err := toJSON(patchDoc)
	if err != nil {
		return nil, err
	}
	ops, err := jsonpatch.DecodePatch(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("applying %d ops to %v\n", len(ops), doc)
	}
	return run(doc, func(j []byte) ([]byte, error) {
		return ops.Apply(j)
	})
}

// Merge applies an RFC 7386 merge patch to doc and returns the
// result.  doc is not modified.
func Merge(doc *ir.Node, mergeDoc []byte) (*ir.Node, error) {
	d, err := toJSON(mergeDoc)
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merging %s into %v\n", string(d), doc)
	}
	return run(doc, func(j []byte) ([]byte, error) {
		return jsonpatch.MergePatch(j, d)
	})
}

func run(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	j, err := marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := f(j)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := ir.FromJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: reading result: %w", ErrPatch, err)
	}
	alignOrder(doc, res)
	return res, nil
}

func marshal(doc *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(doc, buf, encode.EncodeWire(true)); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return buf.Bytes(), nil
}

func toJSON(d []byte) ([]byte, error) {
	j, err := yaml.YAMLToJSON(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return j, nil
}
