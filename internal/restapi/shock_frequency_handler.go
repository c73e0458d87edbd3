package restapi

import (
	"net/http"
	"time"

	"econpulse.openeconomics.org/internal/analytics"
	"econpulse.openeconomics.org/internal/models"
)

// shockFrequencyHandler lists countries by the number of outlier-flagged
// observations across all indicators, most shock-prone first.
func (api *RestAPI) shockFrequencyHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	rows := analytics.ShockFrequency(api.IndicatorManager.Records())

	api.observeReport("shock_frequency", start)
	api.sendResponse(w, r, models.NewListResponse(rows))
}
