package main

import (
	"fmt"

	"github.com/signadot/qtree"
	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/ir"
	"github.com/signadot/qtree/parse"

	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires one argument, a pattern query", cli.ErrUsage)
	}
	pattern := parse.Parse(args[0], cfg.MainConfig.parseOpts()...)
	var opts []qtree.MatchOpt
	if cfg.Any != "" {
		opts = append(opts, qtree.MatchAny(cfg.Any))
	}
	nodes, err := cfg.MainConfig.loadQueries(cc, args[1:])
	if err != nil {
		return err
	}
	var res []*ir.Node
	for _, node := range nodes {
		if !qtree.Match(node, pattern, opts...) {
			continue
		}
		if cfg.Trim {
			node = qtree.Trim(pattern, node, opts...)
		}
		res = append(res, node)
	}
	theLog.Debug("matched", "count", len(res), "of", len(nodes))
	return cfg.MainConfig.writeNodes(cc.Out, res, format.QueryFormat)
}
