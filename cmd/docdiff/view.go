package main

import (
	"fmt"

	"github.com/signadot/docdiff"
	"github.com/signadot/docdiff/format"
	"github.com/signadot/docdiff/render"

	"github.com/scott-cotton/cli"
)

func comparePair(cfg *MainConfig, cmd *cli.Command, name string, cc *cli.Context, args []string) (*docdiff.Result, error) {
	args, err := cmd.Parse(cc, args)
	if err != nil {
		return nil, err
	}
	if len(args) != 2 {
		return nil, fmt.Errorf("%w: %s requires two documents", cli.ErrUsage, name)
	}
	a, err := cfg.load(args[0])
	if err != nil {
		return nil, err
	}
	b, err := cfg.load(args[1])
	if err != nil {
		return nil, err
	}
	return docdiff.CompareDocuments(a, b), nil
}

func unified(cfg *UnifiedConfig, cc *cli.Context, args []string) error {
	res, err := comparePair(cfg.MainConfig, cfg.Unified, "unified", cc, args)
	if err != nil {
		return err
	}
	diff := res.Unified()
	if diff == "" {
		fmt.Fprintln(cc.Out, "<no differences>")
		return nil
	}
	return cfg.colors(cc.Out).WriteUnified(cc.Out, diff)
}

func side(cfg *SideConfig, cc *cli.Context, args []string) error {
	res, err := comparePair(cfg.MainConfig, cfg.Side, "side", cc, args)
	if err != nil {
		return err
	}
	rows := res.Rows()
	if cfg.outFormat() != format.TextFormat {
		return encodeOut(cfg.MainConfig, cc.Out, rows)
	}
	return cfg.colors(cc.Out).WriteRows(cc.Out, rows)
}

func report(cfg *ReportConfig, cc *cli.Context, args []string) error {
	res, err := comparePair(cfg.MainConfig, cfg.Report, "report", cc, args)
	if err != nil {
		return err
	}
	rows := res.Rows()
	if cfg.HTML {
		d, err := render.HTMLReport(res.AName, res.BName, res.Summary, rows)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(d)
		return err
	}
	_, err = fmt.Fprint(cc.Out, render.Report(res.AName, res.BName, res.Summary, rows))
	return err
}
