package restapi

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShockFrequencyHandlerRequiresValidApiKey(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/reports/shock-frequency.json")

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "permission denied", model.Text)
	assert.Equal(t, 1, model.Version)
}

func TestShockFrequencyHandlerEndToEnd(t *testing.T) {
	_, resp, model := serveAndRetrieveEndpoint(t, "/api/v1/reports/shock-frequency.json?key=TEST")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, http.StatusOK, model.Code)
	assert.Equal(t, "OK", model.Text)
	assert.Equal(t, 2, model.Version)

	list := listFromResponse(t, model)
	require.Len(t, list, 2)

	first := list[0].(map[string]interface{})
	assert.Equal(t, "Germany", first["country"])
	assert.Equal(t, "G7", first["countryGroup"])
	assert.Equal(t, 1.0, first["shockEvents"])

	second := list[1].(map[string]interface{})
	assert.Equal(t, "Nigeria", second["country"])
	assert.Equal(t, "AFRICA_TOP5", second["countryGroup"])
	assert.Equal(t, 1.0, second["shockEvents"])
}
