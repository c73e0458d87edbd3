package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"econpulse.openeconomics.org/internal/metrics"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers all API endpoints on the given router. The Prometheus
// scrape endpoint is not behind API key validation.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/api/v1/reports/shock-frequency.json", validateAPIKey(api, api.shockFrequencyHandler))
	router.Handler(http.MethodGet, "/api/v1/reports/stable-growth.json", validateAPIKey(api, api.stableGrowthHandler))
	router.Handler(http.MethodGet, "/api/v1/reports/debt-infrastructure.json", validateAPIKey(api, api.debtInfrastructureHandler))
	router.Handler(http.MethodGet, "/api/v1/reports/inflation-momentum.json", validateAPIKey(api, api.inflationMomentumHandler))
	router.Handler(http.MethodGet, "/api/v1/reports/trade-power.json", validateAPIKey(api, api.tradePowerHandler))
	router.Handler(http.MethodGet, "/api/v1/status.json", validateAPIKey(api, api.statusHandler))
	router.Handler(http.MethodGet, "/api/v1/countries/:id", validateAPIKey(api, api.countryHandler))

	if api.Metrics != nil {
		router.Handler(http.MethodGet, "/metrics", metrics.Handler(api.Metrics.Registry))
	}
}

// Routes builds the full handler chain: request logging wraps rate limiting,
// which wraps the security headers, which wrap compression and the router.
func (api *RestAPI) Routes() http.Handler {
	router := httprouter.New()
	api.SetRoutes(router)

	var handler http.Handler = router
	handler = CompressionMiddleware(handler)
	handler = api.WithSecurityHeaders(handler)
	if api.rateLimiter != nil {
		handler = api.rateLimiter(handler)
	}
	handler = NewRequestLoggingMiddleware(api.Logger)(handler)

	return handler
}
