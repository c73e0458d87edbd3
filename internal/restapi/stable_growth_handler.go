package restapi

import (
	"net/http"
	"time"

	"econpulse.openeconomics.org/internal/analytics"
	"econpulse.openeconomics.org/internal/models"
	"econpulse.openeconomics.org/internal/worldbank"
)

// stableGrowthHandler reports the outlier-adjusted mean GDP growth per
// country group.
func (api *RestAPI) stableGrowthHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	rows := analytics.StableGrowthAverage(api.IndicatorManager.Records(), worldbank.GDPGrowthCode)

	api.observeReport("stable_growth", start)
	api.sendResponse(w, r, models.NewListResponse(rows))
}
