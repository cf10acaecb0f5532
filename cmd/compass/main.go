package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ayoisaiah/compass/app"
	"github.com/ayoisaiah/compass/internal/pathutil"
	"github.com/ayoisaiah/compass/report"
)

func run(ctx context.Context, args []string) error {
	// a missing .env is fine
	_ = godotenv.Load()

	if err := pathutil.Initialize(); err != nil {
		return err
	}

	return app.Get().RunContext(ctx, args)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := run(ctx, os.Args)

	stop()

	if err != nil {
		report.Quit(err)
	}
}
