package main

import (
	"errors"
	"fmt"

	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	nodes, err := cfg.loadQueries(cc, args[1:])
	if err != nil {
		return err
	}
	var res []*ir.Node
	for i, node := range nodes {
		v, err := node.GetKPath(path)
		if errors.Is(err, ir.ErrNotFound) {
			theLog.Debug("not found", "path", path, "input", i+1)
			continue
		}
		if err != nil {
			return fmt.Errorf("error executing get with %s: %w", path, err)
		}
		res = append(res, v)
	}
	return cfg.writeNodes(cc.Out, res, format.JSONFormat)
}

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	nodes, err := cfg.loadQueries(cc, args[1:])
	if err != nil {
		return err
	}
	res := make([]*ir.Node, 0, len(nodes))
	for _, node := range nodes {
		vs, err := node.ListKPath(path)
		if err != nil {
			return fmt.Errorf("error executing list with %s: %w", path, err)
		}
		res = append(res, ir.FromSlice(vs))
	}
	return cfg.writeNodes(cc.Out, res, format.JSONFormat)
}
