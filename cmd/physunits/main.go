package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/physunits/internal/app"
	"github.com/zeusync/physunits/internal/injector"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a, err := injector.InitializeApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting physunits:", err)
		return 1
	}
	defer func() { _ = a.Close() }()

	if err = app.NewCommand(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}
