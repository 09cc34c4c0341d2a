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
			Description: "output format: text/t, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "docdiff").
		WithSynopsis("docdiff [opts] command [opts]").
		WithDescription("docdiff compares the textual content of documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return docdiffMain(cfg, cc, args)
		}).
		WithSubs(
			SummaryCommand(cfg),
			UnifiedCommand(cfg),
			SideCommand(cfg),
			PatchCommand(cfg),
			ApplyCommand(cfg),
			ReportCommand(cfg),
			HashCommand(cfg),
			ServeCommand(cfg))
}

func SummaryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SummaryConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Summary, "summary").
		WithAliases("s", "su").
		WithSynopsis("summary [-match <expr>] <base> <target> [targets...]").
		WithDescription(summaryDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return summary(cfg, cc, args)
		})
}

const summaryDescription = `summary compares a base document against one or more targets and
prints one change summary per target.

With -match, only rows for which the expression holds are printed.  The
expression sees the row as variables:

  name     target document name
  equal    lines unchanged
  replace  lines replaced
  delete   lines deleted
  insert   lines inserted
  changed  replace + delete + insert
  percent  100 * changed / total

For example:

  docdiff summary -match 'percent > 25' base.pdf rev-*.pdf`

func UnifiedCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UnifiedConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Unified, "unified").
		WithAliases("u", "un").
		WithSynopsis("unified <a> <b>").
		WithDescription("unified prints an interleaved -/+ diff of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return unified(cfg, cc, args)
		})
}

func SideCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SideConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Side, "side").
		WithAliases("sbs").
		WithSynopsis("side <a> <b>").
		WithDescription("side prints a side-by-side row view of two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return side(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithSynopsis("patch <a> <b>").
		WithDescription("patch emits a JSON patch over a's lines producing b's lines").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchRun(cfg, cc, args)
		})
}

func ApplyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ApplyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Apply, "apply").
		WithAliases("a", "ap").
		WithSynopsis("apply <patchfile> <doc>").
		WithDescription("apply applies a JSON line patch to a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return applyRun(cfg, cc, args)
		})
}

func ReportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Report, "report").
		WithAliases("r", "re").
		WithSynopsis("report [-html] <a> <b>").
		WithDescription("report renders a comparison report in markdown or html").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return report(cfg, cc, args)
		})
}

func HashCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &HashConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Hash, "hash").
		WithAliases("h", "ha").
		WithSynopsis("hash [files]").
		WithDescription("hash prints a short content fingerprint per document").
		WithRun(func(cc *cli.Context, args []string) error {
			return hash(cfg, cc, args)
		})
}

func ServeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ServeConfig{MainConfig: mainCfg, Addr: "localhost:9127"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Serve, "serve").
		WithSynopsis("serve [-addr <addr>]").
		WithDescription("serve runs the diffd comparison server").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return serve(cfg, cc, args)
		})
}
