package restapi

import (
	"net/http"
	"time"

	"econpulse.openeconomics.org/internal/analytics"
	"econpulse.openeconomics.org/internal/models"
	"econpulse.openeconomics.org/internal/utils"
	"econpulse.openeconomics.org/internal/worldbank"
)

// defaultReportFromYear is the default cutoff for the recent-years reports.
const defaultReportFromYear = 2021

// inflationMomentumHandler reports year-over-year inflation changes per
// country from the given year onward. The previous-year value is the prior
// observed year in the country's series, so gaps in the data are bridged.
func (api *RestAPI) inflationMomentumHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	fromYear, fieldErrors := utils.ParseYearParam(r.URL.Query(), "fromYear", defaultReportFromYear, nil)
	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	rows := analytics.InflationMomentum(api.IndicatorManager.Records(), worldbank.InflationCode, fromYear)

	api.observeReport("inflation_momentum", start)
	api.sendResponse(w, r, models.NewListResponse(rows))
}
