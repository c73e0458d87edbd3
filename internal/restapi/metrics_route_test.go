package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"econpulse.openeconomics.org/internal/metrics"
)

func TestMetricsEndpointDoesNotRequireApiKey(t *testing.T) {
	api := createTestApi(t)
	api.Metrics = metrics.New()

	router := newTestRouter(api)
	resp := getWithRouter(t, router, "/metrics")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "go_goroutines")
}

func TestReportHandlersObserveMetrics(t *testing.T) {
	api := createTestApi(t)
	api.Metrics = metrics.New()

	router := newTestRouter(api)
	resp := getWithRouter(t, router, "/api/v1/reports/shock-frequency.json?key=TEST")
	assert.Equal(t, http.StatusOK, resp.Code)

	scrape := getWithRouter(t, router, "/metrics")
	assert.Contains(t, scrape.Body.String(), `econpulse_report_requests_total{report="shock_frequency"} 1`)
}
