package restapi

import (
	"database/sql"
	"errors"
	"net/http"

	"econpulse.openeconomics.org/internal/models"
	"econpulse.openeconomics.org/internal/utils"
)

// countryHandler returns the observation profile for a single country,
// looked up by its ISO3 code. Unknown codes yield a null body.
func (api *RestAPI) countryHandler(w http.ResponseWriter, r *http.Request) {
	countryCode := utils.ExtractIDFromParams(r, "id")
	if countryCode == "" {
		http.Error(w, "null", http.StatusBadRequest)
		return
	}

	stats, err := api.IndicatorManager.EconDB.Queries.GetCountryObservationStats(r.Context(), countryCode)
	if errors.Is(err, sql.ErrNoRows) {
		api.sendNull(w, r)
		return
	}
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	profile := models.CountryProfileModel{
		Country:      stats.Country,
		CountryCode:  stats.CountryCode,
		CountryGroup: stats.CountryGroup,
		Observations: stats.Observations,
		FirstYear:    stats.FirstYear,
		LastYear:     stats.LastYear,
	}

	api.sendResponse(w, r, models.NewEntryResponse(profile))
}
