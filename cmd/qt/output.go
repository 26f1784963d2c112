package main

import (
	"fmt"
	"io"

	"github.com/signadot/qtree/encode"
	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/ir"
)

// writeNodes encodes nodes to w in order.  YAML documents are
// separated by "---".
func (cfg *MainConfig) writeNodes(w io.Writer, nodes []*ir.Node, def format.Format) error {
	opts := cfg.encOpts(w, def)
	yml := encode.FormatFromOpts(opts...).IsYAML()
	for i, node := range nodes {
		if yml && i > 0 {
			if err := writeSep(w); err != nil {
				return err
			}
		}
		if err := encode.Encode(node, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i+1, err)
		}
	}
	return nil
}

func writeSep(w io.Writer) error {
	_, err := w.Write([]byte("---\n"))
	return err
}
