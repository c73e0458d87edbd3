package restapi

import (
	"net/http"
	"time"

	"econpulse.openeconomics.org/internal/analytics"
	"econpulse.openeconomics.org/internal/models"
	"econpulse.openeconomics.org/internal/worldbank"
)

// debtInfrastructureHandler compares each country's mean government debt
// ratio against its mean electricity access, most indebted first.
func (api *RestAPI) debtInfrastructureHandler(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	rows := analytics.DebtInfrastructure(api.IndicatorManager.Records(),
		worldbank.DebtCode, worldbank.ElectricityCode)

	api.observeReport("debt_infrastructure", start)
	api.sendResponse(w, r, models.NewListResponse(rows))
}
