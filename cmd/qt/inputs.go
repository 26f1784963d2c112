package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/url"
	"runtime"
	"strings"

	"github.com/signadot/qtree/ir"
	"github.com/signadot/qtree/parse"

	"github.com/scott-cotton/cli"

	"golang.org/x/sync/errgroup"
)

// readInputs expands args into the queries they name.  "-", or no args
// at all, reads queries from r one per line.
func readInputs(r io.Reader, args []string) ([]string, error) {
	if len(args) == 0 {
		args = []string{"-"}
	}
	var res []string
	for _, arg := range args {
		if arg != "-" {
			res = append(res, arg)
			continue
		}
		lines, err := readLines(r)
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
		res = append(res, lines...)
	}
	return res, nil
}

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	var res []string
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// parseAll decodes inputs concurrently.  The result is in input order.
func parseAll(ctx context.Context, inputs []string, asURL bool, opts ...parse.ParseOption) ([]*ir.Node, error) {
	res := make([]*ir.Node, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !asURL {
				res[i] = parse.Parse(in, opts...)
				return nil
			}
			u, err := url.Parse(in)
			if err != nil {
				return fmt.Errorf("input %d: %w", i+1, err)
			}
			res[i] = parse.ParseURL(u, opts...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	theLog.Debug("parsed", "inputs", len(inputs))
	return res, nil
}

func (cfg *MainConfig) loadQueries(cc *cli.Context, args []string) ([]*ir.Node, error) {
	inputs, err := readInputs(cc.In, args)
	if err != nil {
		return nil, err
	}
	return parseAll(context.Background(), inputs, false, cfg.parseOpts()...)
}
