package main

import (
	"fmt"

	"github.com/signadot/docdiff"
	"github.com/signadot/docdiff/format"
	"github.com/signadot/docdiff/source"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

type summaryRow struct {
	Name        string  `json:"name"`
	Fingerprint string  `json:"fingerprint"`
	Equal       int     `json:"equal"`
	Replace     int     `json:"replace"`
	Delete      int     `json:"delete"`
	Insert      int     `json:"insert"`
	Changed     int     `json:"changed"`
	Percent     float64 `json:"percent"`
}

func summary(cfg *SummaryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Summary.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: summary requires a base and at least one target", cli.ErrUsage)
	}
	var prg *vm.Program
	if cfg.Match != "" {
		prg, err = expr.Compile(cfg.Match, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -match expression: %w", cli.ErrUsage, err)
		}
	}
	base, err := cfg.load(args[0])
	if err != nil {
		return err
	}
	var rows []summaryRow
	for _, arg := range args[1:] {
		target, err := cfg.load(arg)
		if err != nil {
			return err
		}
		row := makeRow(base, target)
		if prg != nil {
			keep, err := expr.Run(prg, rowEnv(row))
			if err != nil {
				return fmt.Errorf("error evaluating -match on %s: %w", arg, err)
			}
			if !keep.(bool) {
				continue
			}
		}
		rows = append(rows, row)
	}
	if cfg.outFormat() != format.TextFormat {
		return encodeOut(cfg.MainConfig, cc.Out, rows)
	}
	for _, row := range rows {
		fmt.Fprintf(cc.Out, "%s: changed lines %d / %d (~%.1f%% different)\n",
			row.Name, row.Changed, row.Changed+row.Equal, row.Percent)
	}
	return nil
}

func makeRow(base, target *source.Document) summaryRow {
	res := docdiff.CompareDocuments(base, target)
	sum := res.Summary
	return summaryRow{
		Name:        target.Name,
		Fingerprint: target.Fingerprint(),
		Equal:       sum.Equal,
		Replace:     sum.Replace,
		Delete:      sum.Delete,
		Insert:      sum.Insert,
		Changed:     sum.Changed(),
		Percent:     sum.PercentDifferent(),
	}
}

func rowEnv(row summaryRow) map[string]any {
	return map[string]any{
		"name":    row.Name,
		"equal":   row.Equal,
		"replace": row.Replace,
		"delete":  row.Delete,
		"insert":  row.Insert,
		"changed": row.Changed,
		"percent": row.Percent,
	}
}
