package worldbank

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSeriesBody = `[
	{"page": 1, "pages": 1, "per_page": 100, "total": 3},
	[
		{"country": {"id": "USA", "value": "United States"}, "date": "2022", "value": 8.0},
		{"country": {"id": "USA", "value": "United States"}, "date": "2021", "value": 4.7},
		{"country": {"id": "USA", "value": "United States"}, "date": "2020", "value": null}
	]
]`

func TestFetchSeriesDecodesArrayWrapper(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/country/USA/indicator/FP.CPI.TOTL.ZG", r.URL.Path)
		assert.Equal(t, fmt.Sprintf("%d:%d", StartYear, EndYear), r.URL.Query().Get("date"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleSeriesBody))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	observations, err := client.FetchSeries(context.Background(), "USA", "FP.CPI.TOTL.ZG")
	require.NoError(t, err)

	// The null-valued 2020 observation is dropped during decoding.
	require.Len(t, observations, 2)
	assert.Equal(t, Observation{CountryName: "United States", CountryCode: "USA", Year: 2022, Value: 8.0}, observations[0])
	assert.Equal(t, Observation{CountryName: "United States", CountryCode: "USA", Year: 2021, Value: 4.7}, observations[1])
}

func TestFetchSeriesShortBodyMeansNoData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The API answers unknown series with a single-element body.
		_, _ = w.Write([]byte(`[{"message": [{"id": "120", "value": "no data"}]}]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	observations, err := client.FetchSeries(context.Background(), "XXX", "FP.CPI.TOTL.ZG")
	require.NoError(t, err)
	assert.Empty(t, observations)
}

func TestFetchSeriesNonOKStatusIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchSeries(context.Background(), "USA", "FP.CPI.TOTL.ZG")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestFetchSeriesMalformedBodyIsAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.FetchSeries(context.Background(), "USA", "FP.CPI.TOTL.ZG")
	require.Error(t, err)
}

func TestNewClientDefaultsToPublicEndpoint(t *testing.T) {
	client := NewClient("")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
