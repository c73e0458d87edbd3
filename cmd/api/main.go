package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"econpulse.openeconomics.org/internal/app"
	"econpulse.openeconomics.org/internal/appconf"
	"econpulse.openeconomics.org/internal/indicators"
	"econpulse.openeconomics.org/internal/logging"
	"econpulse.openeconomics.org/internal/metrics"
	"econpulse.openeconomics.org/internal/restapi"
	"econpulse.openeconomics.org/internal/worldbank"
)

func main() {
	// A missing .env file is fine; plain environment variables still apply.
	_ = godotenv.Load()

	var (
		port            = flag.Int("port", envInt("PORT", 4000), "API server port")
		envFlag         = flag.String("env", envString("ENV", "development"), "Environment (development|staging|production)")
		dbPath          = flag.String("db-path", envString("DB_PATH", "econpulse.db"), "Path to the SQLite database file")
		dataSource      = flag.String("data-source", envString("DATA_SOURCE", worldbank.DefaultBaseURL), "World Bank API base URL or path to a local snapshot file")
		apiKeysFlag     = flag.String("api-keys", envString("API_KEYS", "test"), "Comma Separated API Keys (test, etc)")
		rateLimit       = flag.Int("rate-limit", envInt("RATE_LIMIT", 100), "Requests per second allowed per API key")
		refreshInterval = flag.Duration("refresh-interval", envDuration("REFRESH_INTERVAL", indicators.DefaultRefreshInterval), "How often the remote dataset is re-fetched")
		logLevelFlag    = flag.String("log-level", envString("LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")
		verbose         = flag.Bool("verbose", false, "Enable verbose database logging")
	)
	flag.Parse()

	logger := logging.NewStructuredLogger(os.Stdout, parseLogLevel(*logLevelFlag))
	slog.SetDefault(logger)

	environment := appconf.EnvFlagToEnvironment(*envFlag)

	mtr := metrics.New()

	manager, err := indicators.InitManager(indicators.Config{
		Source:          *dataSource,
		DBPath:          *dbPath,
		Env:             environment,
		Verbose:         *verbose,
		RefreshInterval: *refreshInterval,
	}, logger, nil, mtr)
	if err != nil {
		logging.LogError(logger, "failed to initialize indicator manager", err)
		os.Exit(1)
	}

	application := &app.Application{
		Config: app.Config{
			Port:      *port,
			Env:       environment,
			ApiKeys:   splitAndTrim(*apiKeysFlag),
			RateLimit: *rateLimit,
		},
		Logger:           logger,
		IndicatorManager: manager,
		Metrics:          mtr,
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", *port),
		Handler:      api.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	shutdownErr := make(chan error, 1)
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		sig := <-quit

		logger.Info("shutting down server", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		shutdownErr <- srv.Shutdown(ctx)
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", environment.String(), "source", manager.Source())

	err = srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		logging.LogError(logger, "server failed", err)
		manager.Shutdown()
		os.Exit(1)
	}

	if err := <-shutdownErr; err != nil {
		logging.LogError(logger, "graceful shutdown failed", err)
	}
	manager.Shutdown()

	logger.Info("server stopped")
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func envString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}
