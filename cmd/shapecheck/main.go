package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reoring/shapecheck/cli"
	"github.com/reoring/shapecheck/internal/config"
	"github.com/reoring/shapecheck/registry"
	"github.com/reoring/shapecheck/samples"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	reg := registry.New()
	samples.Register(reg)

	if err := cli.New(reg, version, cli.WithConfig(cfg)).Run(ctx, os.Args); err != nil {
		if !errors.Is(err, cli.ErrInvalidDocuments) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
