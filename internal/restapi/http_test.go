package restapi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/require"

	"econpulse.openeconomics.org/internal/app"
	"econpulse.openeconomics.org/internal/appconf"
	"econpulse.openeconomics.org/internal/indicators"
	"econpulse.openeconomics.org/internal/logging"
	"econpulse.openeconomics.org/internal/models"
)

// createTestApi creates a new RestAPI instance backed by the labeled test
// dataset snapshot and an in-memory database.
func createTestApi(t *testing.T) *RestAPI {
	config := indicators.Config{
		Source: filepath.Join("../../testdata", "indicators.json"),
		DBPath: ":memory:",
		Env:    appconf.Test,
	}
	manager, err := indicators.InitManager(config, slog.Default(), nil, nil)
	require.NoError(t, err)
	t.Cleanup(manager.Shutdown)

	application := &app.Application{
		Config: app.Config{
			Env:     appconf.EnvFlagToEnvironment("test"),
			ApiKeys: []string{"TEST"},
		},
		Logger:           slog.Default(),
		IndicatorManager: manager,
	}

	return &RestAPI{Application: application}
}

// serveAndRetrieveEndpoint sets up a test server, makes a request to the
// specified endpoint, and returns the response and decoded model.
func serveAndRetrieveEndpoint(t *testing.T, endpoint string) (*RestAPI, *http.Response, models.ResponseModel) {
	api := createTestApi(t)
	resp, model := serveApiAndRetrieveEndpoint(t, api, endpoint)
	return api, resp, model
}

func serveApiAndRetrieveEndpoint(t *testing.T, api *RestAPI, endpoint string) (*http.Response, models.ResponseModel) {
	router := httprouter.New()
	api.SetRoutes(router)
	server := httptest.NewServer(router)
	defer server.Close()
	resp, err := http.Get(server.URL + endpoint)
	require.NoError(t, err)
	defer logging.SafeCloseWithLogging(resp.Body,
		slog.Default().With(slog.String("component", "test")),
		"http_response_body")

	var response models.ResponseModel
	err = json.NewDecoder(resp.Body).Decode(&response)
	require.NoError(t, err)

	return resp, response
}

// newTestRouter builds a router with the API's routes registered.
func newTestRouter(api *RestAPI) *httprouter.Router {
	router := httprouter.New()
	api.SetRoutes(router)
	return router
}

// getWithRouter performs a GET against the router without decoding the body.
func getWithRouter(t *testing.T, router *httprouter.Router, endpoint string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, endpoint, nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

// listFromResponse extracts the list payload from a decoded list response.
func listFromResponse(t *testing.T, model models.ResponseModel) []interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	list, ok := data["list"].([]interface{})
	require.True(t, ok, "response data should hold a list")
	return list
}

// entryFromResponse extracts the entry payload from a decoded entry response.
func entryFromResponse(t *testing.T, model models.ResponseModel) map[string]interface{} {
	data, ok := model.Data.(map[string]interface{})
	require.True(t, ok, "response data should be a map")
	entry, ok := data["entry"].(map[string]interface{})
	require.True(t, ok, "response data should hold an entry")
	return entry
}
