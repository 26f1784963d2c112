package main

import (
	"context"

	"github.com/signadot/qtree/format"

	"github.com/scott-cotton/cli"
)

func parseCmd(cfg *ParseConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Parse.Parse(cc, args)
	if err != nil {
		return err
	}
	inputs, err := readInputs(cc.In, args)
	if err != nil {
		return err
	}
	nodes, err := parseAll(context.Background(), inputs, cfg.URL, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	return cfg.writeNodes(cc.Out, nodes, format.JSONFormat)
}
