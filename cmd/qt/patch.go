package main

import (
	"fmt"
	"os"

	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/ir"
	"github.com/signadot/qtree/patch"

	"github.com/scott-cotton/cli"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires one argument, a patch", cli.ErrUsage)
	}
	patchDoc := []byte(args[0])
	if cfg.File {
		patchDoc, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch %q: %w", args[0], err)
		}
	}
	apply := patch.Apply
	if cfg.Merge {
		apply = patch.Merge
	}
	nodes, err := cfg.loadQueries(cc, args[1:])
	if err != nil {
		return err
	}
	res := make([]*ir.Node, len(nodes))
	for i, node := range nodes {
		res[i], err = apply(node, patchDoc)
		if err != nil {
			return fmt.Errorf("error patching input %d: %w", i+1, err)
		}
	}
	return cfg.writeNodes(cc.Out, res, format.QueryFormat)
}
