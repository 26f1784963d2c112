package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: json/j, yaml/y, query/q",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "qt").
		WithSynopsis("qt [opts] command [opts]").
		WithDescription("qt is a tool for working with query strings as trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return qtMain(cfg, cc, args)
		}).
		WithSubs(
			ParseCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			EvalCommand(cfg),
			MatchCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EncodeCommand(cfg))
}

func ParseCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ParseConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Parse, "parse").
		WithAliases("p").
		WithSynopsis("parse [-u] [queries|-]").
		WithDescription(parseDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return parseCmd(cfg, cc, args)
		})
}

const parseDescription = `parse decodes query strings into trees.

Each argument is a query string such as 'a[b]=1&a[c][]=2'.  The argument '-',
or no argument at all, reads queries from standard input, one per line.  With
-u, arguments and lines are URLs and their query part is decoded.

Keys with brackets build nested mappings.  '[]' appends to a sequence, and a
mapping whose keys are all integers becomes a sequence.`

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g").
		WithSynopsis("get <kpath> [queries|-]").
		WithDescription("get the element at a path such as 'a.b[0]' from queries").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list <kpath> [queries|-]").
		WithDescription("list the elements matching a path such as 'a.*[*]' in queries").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-m] <expr> [queries|-]").
		WithDescription("evaluate an expression against query trees; top level keys are variables").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalCmd(cfg, cc, args)
		})
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <pattern> [queries|-]").
		WithDescription("print the queries whose tree contains the tree of a pattern query").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithSynopsis("diff [-r] <query1> <query2>").
		WithDescription("diff the trees of two queries; exits 1 when they differ").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("pa").
		WithSynopsis("patch [-merge] [-f] <patch> [queries|-]").
		WithDescription("apply a JSON patch (or merge patch) in JSON or YAML to query trees").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Encode, "encode").
		WithAliases("enc").
		WithSynopsis("encode [files]").
		WithDescription("read JSON or YAML documents and write them as query strings (or -O format)").
		WithRun(func(cc *cli.Context, args []string) error {
			return encodeCmd(cfg, cc, args)
		})
}
