package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflationMomentumHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/reports/inflation-momentum.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)

	list := listFromResponse(t, model)
	require.Len(t, list, 3)

	// Nigeria's 2020 reading is missing, so the 2021 row lags to 2019.
	nigeria := list[0].(map[string]interface{})
	assert.Equal(t, "Nigeria", nigeria["country"])
	assert.Equal(t, 2021.0, nigeria["year"])
	assert.Equal(t, 17.0, nigeria["inflationRate"])
	assert.Equal(t, 11.0, nigeria["prevYearInflation"])
	assert.Equal(t, 6.0, nigeria["yoyChange"])

	us2021 := list[1].(map[string]interface{})
	assert.Equal(t, "United States", us2021["country"])
	assert.Equal(t, 2021.0, us2021["year"])
	assert.Equal(t, 5.0, us2021["prevYearInflation"])
	assert.Equal(t, 2.0, us2021["yoyChange"])

	us2022 := list[2].(map[string]interface{})
	assert.Equal(t, 2022.0, us2022["year"])
	assert.Equal(t, 7.0, us2022["prevYearInflation"])
	assert.Equal(t, -1.0, us2022["yoyChange"])
}

func TestInflationMomentumHandlerHonorsFromYearParam(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/reports/inflation-momentum.json?key=TEST&fromYear=2022")

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	list := listFromResponse(t, model)
	require.Len(t, list, 1)

	row := list[0].(map[string]interface{})
	assert.Equal(t, "United States", row["country"])
	assert.Equal(t, 2022.0, row["year"])
}

func TestInflationMomentumHandlerRejectsBadFromYear(t *testing.T) {
	api := createTestApi(t)

	router := newTestRouter(api)
	resp := getWithRouter(t, router, "/api/v1/reports/inflation-momentum.json?key=TEST&fromYear=abc")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "fieldErrors")
	assert.Contains(t, resp.Body.String(), "fromYear")
}
