package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/ir"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func encodeCmd(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	var res []*ir.Node
	for _, file := range args {
		nodes, err := readDocs(cc, file)
		if err != nil {
			return err
		}
		res = append(res, nodes...)
	}
	return cfg.writeNodes(cc.Out, res, format.QueryFormat)
}

func readDocs(cc *cli.Context, file string) ([]*ir.Node, error) {
	var r io.Reader = cc.In
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	}
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", file, err)
	}
	return decodeDocs(in)
}

// decodeDocs decodes the JSON or YAML document stream in.  Empty
// documents are skipped.
func decodeDocs(in []byte) ([]*ir.Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(in), yaml.UseOrderedMap())
	var res []*ir.Node
	for i := 1; ; i++ {
		var v any
		err := dec.Decode(&v)
		if errors.Is(err, io.EOF) {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if v == nil {
			continue
		}
		node, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("error decoding document %d: %w", i, err)
		}
		res = append(res, node)
	}
}
