package main

import (
	"fmt"

	"github.com/signadot/qtree/eval"
	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/ir"

	"github.com/scott-cotton/cli"
)

func evalCmd(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires one argument, an expression", cli.ErrUsage)
	}
	prg, err := eval.Compile(args[0])
	if err != nil {
		return err
	}
	nodes, err := cfg.loadQueries(cc, args[1:])
	if err != nil {
		return err
	}
	res := make([]*ir.Node, 0, len(nodes))
	for i, node := range nodes {
		if !cfg.Match {
			v, err := prg.Eval(node)
			if err != nil {
				return fmt.Errorf("error evaluating input %d: %w", i+1, err)
			}
			res = append(res, v)
			continue
		}
		ok, err := prg.Match(node)
		if err != nil {
			return fmt.Errorf("error matching input %d: %w", i+1, err)
		}
		if ok {
			res = append(res, node)
		}
	}
	def := format.JSONFormat
	if cfg.Match {
		def = format.QueryFormat
	}
	return cfg.writeNodes(cc.Out, res, def)
}
