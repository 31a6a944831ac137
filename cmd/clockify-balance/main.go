package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clockify-balance/internal/app"
	"clockify-balance/internal/config"
	"clockify-balance/internal/domain"
)

func main() {
	// Flags
	once := flag.Bool("once", false, "Compute a single balance and exit")
	addr := flag.String("addr", "", "HTTP listen address (overrides HTTP_ADDR)")
	from := flag.String("from", "", "Start date YYYY-MM-DD (default: first day of current month)")
	to := flag.String("to", "", "End date YYYY-MM-DD (default: today)")
	verbose := flag.Bool("v", false, "Enable verbose logging")
	flag.Parse()

	// Logger
	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	// Config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *addr != "" {
		cfg.HTTP.Addr = *addr
	}

	// Context with signal handling
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// App
	application, err := app.New(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to initialize app", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer application.Close()

	if *once {
		runOnce(ctx, logger, application, cfg, *from, *to)
		return
	}

	srv := application.HTTPServer(cfg.HTTP.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", slog.String("error", err.Error()))
			stop()
		}
	}()
	logger.Info("listening", slog.String("addr", cfg.HTTP.Addr))

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", slog.String("error", err.Error()))
	}
}

// runOnce computes one balance from env credentials and prints it as JSON.
// The default range mirrors the form defaults: first of the current month
// through today.
func runOnce(ctx context.Context, logger *slog.Logger, application *app.App, cfg config.Config, from, to string) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	start = parseDate(from, start, logger)
	end = parseDate(to, end, logger)

	req := domain.BalanceRequest{
		APIKey:             cfg.Clockify.APIKey,
		WorkspaceID:        cfg.Clockify.WorkspaceID,
		StartDate:          start,
		EndDate:            end,
		WorkdayLength:      cfg.Defaults.WorkdayLength,
		OvertimeHourlyRate: cfg.Defaults.OvertimeHourlyRate,
	}

	res, err := application.ComputeBalance(ctx, req)
	if err != nil {
		logger.Error("balance computation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(res)
}

// parseDate parses a YYYY-MM-DD flag value. If empty, defaultVal is returned.
func parseDate(val string, defaultVal time.Time, log *slog.Logger) time.Time {
	if val == "" {
		return defaultVal
	}
	d, err := time.Parse("2006-01-02", val)
	if err != nil {
		log.Error("invalid date flag, expected YYYY-MM-DD", slog.String("value", val))
		os.Exit(1)
	}
	return d
}
