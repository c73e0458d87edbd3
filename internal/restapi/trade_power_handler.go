package restapi

import (
	"net/http"
	"time"

	"econpulse.openeconomics.org/internal/analytics"
	"econpulse.openeconomics.org/internal/models"
	"econpulse.openeconomics.org/internal/utils"
	"econpulse.openeconomics.org/internal/worldbank"
)

// tradePowerHandler ranks export ratios within each (year, country group)
// partition for years from the given year onward.
func (api *RestAPI) tradePowerHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	fromYear, fieldErrors := utils.ParseYearParam(r.URL.Query(), "fromYear", defaultReportFromYear, nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	rows := analytics.TradePowerRanking(api.IndicatorManager.Records(), worldbank.ExportsCode, fromYear)

	api.observeReport("trade_power", start)
	api.sendResponse(w, r, models.NewListResponse(rows))
}
