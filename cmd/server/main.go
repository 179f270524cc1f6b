package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/sulat/internal/app"
	"github.com/spf13/pflag"
)

func main() {
	var opts app.Options

	flagSet := pflag.NewFlagSet("sulat", pflag.ContinueOnError)
	flagSet.StringVar(&opts.ConfigFile, "config", "config.json", "path to the JSON config file")
	flagSet.StringVar(&opts.EnvFile, "env-file", ".env", "env file loaded outside production")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		slog.Error("Invalid arguments.", "reason", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	slog.Info("Starting server...")
	if err := app.Run(ctx, opts); err != nil {
		slog.Error("Application failed to start.", "reason", err)
		stop()
		os.Exit(1)
	}
	slog.Info("Server shutdown gracefully.")
}
