package main

import (
	"context"
	"fmt"
	"io"

	"github.com/signadot/qtree/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Reverse {
		args[0], args[1] = args[1], args[0]
	}
	nodes, err := parseAll(context.Background(), args, false, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	changes := libdiff.Diff(nodes[0], nodes[1])
	if len(changes) == 0 {
		return nil
	}
	if err := writeChanges(cc.Out, changes, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeChanges(w io.Writer, changes []libdiff.Change, useColor bool) error {
	paint := map[libdiff.Op]*color.Color{
		libdiff.Insert:  color.New(color.FgGreen),
		libdiff.Delete:  color.New(color.FgRed),
		libdiff.Replace: color.New(color.FgYellow),
	}
	for _, c := range changes {
		line := c.String()
		if useColor {
			p := paint[c.Op]
			p.EnableColor()
			line = p.Sprint(line)
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}
