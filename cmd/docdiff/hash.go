package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func hash(cfg *HashConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Hash.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: hash requires at least one file", cli.ErrUsage)
	}
	for _, arg := range args {
		doc, err := cfg.load(arg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s SHA256-12: %s\n", doc.Name, doc.Fingerprint())
	}
	return nil
}
