package main

import (
	"fmt"
	"os"

	"github.com/signadot/docdiff/linepatch"
	"github.com/signadot/docdiff/normalize"

	"github.com/scott-cotton/cli"
)

func patchRun(cfg *PatchConfig, cc *cli.Context, args []string) error {
	res, err := comparePair(cfg.MainConfig, cfg.Patch, "patch", cc, args)
	if err != nil {
		return err
	}
	d, err := res.Patch()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "%s\n", d)
	return err
}

func applyRun(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: apply requires a patch file and a document", cli.ErrUsage)
	}
	patch, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	doc, err := cfg.load(args[1])
	if err != nil {
		return err
	}
	lines, err := linepatch.Apply(patch, normalize.Lines(doc.Text))
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	for _, line := range lines {
		fmt.Fprintln(cc.Out, line)
	}
	return nil
}
