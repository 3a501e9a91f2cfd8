package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	cmd "github.com/audioconv/audioconv/cmd/audioconv"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cmd.ExecuteContext(ctx, version)
	if err == nil {
		return
	}
	if !errors.Is(err, context.Canceled) && !cmd.IsReported(err) {
		_, _ = fmt.Fprintf(os.Stderr, "audioconv: %v\n", err)
	}
	os.Exit(1)
}
