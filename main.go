// Package main provides the entrypoint for delay-responder.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/isometry/delay-responder/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cmd.New().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
