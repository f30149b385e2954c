package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrymomot/strx/internal/cli"
	"github.com/dmitrymomot/strx/internal/config"
	"github.com/dmitrymomot/strx/pkg/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	log := logger.New(cfg.Log, os.Stderr, logger.CommandExtractor())
	defer logger.Flush(2 * time.Second)

	return cli.New(cfg, log).Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}
