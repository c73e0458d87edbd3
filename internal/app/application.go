package app

import (
	"log/slog"

	"econpulse.openeconomics.org/internal/appconf"
	"econpulse.openeconomics.org/internal/indicators"
	"econpulse.openeconomics.org/internal/metrics"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config           Config
	Logger           *slog.Logger
	IndicatorManager *indicators.Manager
	Metrics          *metrics.Metrics
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the operating environment, the set of
// accepted API keys and the per-key request rate limit.
type Config struct {
	Port      int
	Env       appconf.Environment
	ApiKeys   []string
	RateLimit int
}
