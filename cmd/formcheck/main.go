package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/hangulform/internal/formcheck"
	"github.com/dmitrymomot/hangulform/pkg/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	var cfg config.App
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, "formcheck:", err)
		return 2
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := formcheck.NewCommand(formcheck.IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}, cfg)
	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, formcheck.ErrInvalidRecords), errors.Is(err, formcheck.ErrInvalidField):
		return 1
	default:
		fmt.Fprintln(os.Stderr, "formcheck:", err)
		return 2
	}
}
