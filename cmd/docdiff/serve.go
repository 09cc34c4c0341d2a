package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/signadot/docdiff/diffd"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	_, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}

	// Start gops agent for debugging
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	srv := diffd.New(&diffd.Spec{Addr: cfg.Addr})
	if err := srv.Start(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "diffd listening on %s\n", srv.Addr())
	<-ctx.Done()
	return srv.Close()
}
