package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/signadot/qtree/encode"
	"github.com/signadot/qtree/format"
	"github.com/signadot/qtree/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='encode with color'"`
	WireOut bool `cli:"name=wire desc='output in compact format'"`
	Verbose bool `cli:"name=v desc='log debug messages'"`

	J bool `cli:"name=j aliases=json desc='output json'"`
	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	Q bool `cli:"name=q aliases=query desc='output query strings'"`

	First bool `cli:"name=first desc='split key and value at the first ='"`
	Root  bool `cli:"name=root desc='let an all integer keyed root become a sequence'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) setLog() {
	if cfg.Verbose {
		logLevel.Set(slog.LevelDebug)
	}
}

// outFormat gives the output format selected on the command line, or
// def if none was.
func (cfg *MainConfig) outFormat(def format.Format) format.Format {
	f := def
	switch {
	case cfg.J:
		f = format.JSONFormat
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.Q:
		f = format.QueryFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer, def format.Format) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat(def)),
		encode.EncodeWire(cfg.WireOut),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	var opts []*cli.Opt
	if cfg.Main != nil {
		opts = cfg.Main.Opts
	}
	for _, opt := range opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.SplitFirstEquals(cfg.First),
		parse.PromoteRoot(cfg.Root),
	}
}

type ParseConfig struct {
	*MainConfig

	URL bool `cli:"name=u aliases=url desc='inputs are URLs'"`

	Parse *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Match bool `cli:"name=m aliases=match desc='print only queries for which expr is true'"`

	Eval *cli.Command
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Trim bool   `cli:"name=trim desc='trim the results to the pattern'"`
	Any  string `cli:"name=any desc='pattern value which matches anything'"`
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='patch is a JSON merge patch'"`
	File  bool `cli:"name=f desc='patch arg as file'"`

	Patch *cli.Command
}

type EncodeConfig struct {
	*MainConfig

	Encode *cli.Command
}
