package restapi

import (
	"net/http"

	"econpulse.openeconomics.org/internal/models"
)

// statusHandler summarizes the stored dataset: record and outlier counts,
// country count, observed year span and when the snapshot was last refreshed.
func (api *RestAPI) statusHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	queries := api.IndicatorManager.EconDB.Queries

	recordCount, err := queries.CountIndicators(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	outlierCount, err := queries.CountOutliers(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	countries, err := queries.ListCountries(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	yearSpan, err := queries.GetYearSpan(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	status := models.StatusModel{
		RecordCount:  recordCount,
		OutlierCount: outlierCount,
		CountryCount: len(countries),
		FirstYear:    yearSpan.FirstYear,
		LastYear:     yearSpan.LastYear,
		LastUpdated:  api.IndicatorManager.LastUpdated().UnixMilli(),
		Source:       api.IndicatorManager.Source(),
	}

	api.sendResponse(w, r, models.NewEntryResponse(status))
}
