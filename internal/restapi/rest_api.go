package restapi

import (
	"net/http"
	"time"

	"econpulse.openeconomics.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// observeReport records request count and duration for a report handler
func (api *RestAPI) observeReport(report string, start time.Time) {
	if api.Metrics == nil {
		return
	}
	api.Metrics.ReportRequests.WithLabelValues(report).Inc()
	api.Metrics.ReportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
}
