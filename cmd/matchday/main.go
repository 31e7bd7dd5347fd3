package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"matchday-graphics/internal/app"
	"matchday-graphics/internal/config"
	"matchday-graphics/internal/logging"
	"matchday-graphics/internal/timeutil"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_GENERATOR_RUN") == "1" {
		return
	}
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Optional .env for local runs; absence is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config load failed:", err)
		return 1
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.Telemetry.ServiceName,
		Version: appVersion,
	})

	var dateArg string
	if len(args) > 0 {
		dateArg = args[0]
	}
	date, err := timeutil.ResolveRunDate(dateArg, time.Now())
	if err != nil {
		logging.Warn(logger, "invalid date argument, using today",
			slog.String(logging.FieldDate, dateArg),
			"error", err,
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg, logger)
	summary, err := a.Run(ctx, date)
	if err != nil {
		logging.Error(logger, "run failed", err, slog.String(logging.FieldDate, date))
		return 1
	}

	logging.Info(logger, "graphics ready",
		slog.String(logging.FieldDate, summary.Date),
		slog.Int("graphics_produced", summary.TotalProduced()),
	)
	return 0
}
