package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/docdiff/format"
	"github.com/signadot/docdiff/render"
	"github.com/signadot/docdiff/source"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render with color'"`

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command

	docs *source.Cache
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	var fmat format.Format
	switch {
	case cfg.Y:
		fmat = format.YAMLFormat
	case cfg.J:
		fmat = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

// colors picks terminal colors when -color is given or w is a tty.
func (cfg *MainConfig) colors(w io.Writer) *render.Colors {
	if cfg.Color {
		return render.NewColors()
	}
	f, ok := w.(*os.File)
	if !ok {
		return render.NoColors()
	}
	if isatty.IsTerminal(f.Fd()) {
		return render.NewColors()
	}
	return render.NoColors()
}

func (cfg *MainConfig) load(path string) (*source.Document, error) {
	if cfg.docs == nil {
		cfg.docs = source.NewCache(nil)
	}
	return cfg.docs.Load(path)
}

type SummaryConfig struct {
	*MainConfig
	Match string `cli:"name=match desc='keep rows for which the expression holds'"`

	Summary *cli.Command
}

type UnifiedConfig struct {
	*MainConfig
	Unified *cli.Command
}

type SideConfig struct {
	*MainConfig
	Side *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Patch *cli.Command
}

type ApplyConfig struct {
	*MainConfig
	Apply *cli.Command
}

type ReportConfig struct {
	*MainConfig
	HTML bool `cli:"name=html desc='emit html instead of markdown'"`

	Report *cli.Command
}

type HashConfig struct {
	*MainConfig
	Hash *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Addr string `cli:"name=addr desc='TCP listen address' default=localhost:9127"`

	Serve *cli.Command
}
