// Package worldbank fetches country-year indicator observations from the
// World Bank v2 API.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultBaseURL is the public World Bank v2 API endpoint.
const DefaultBaseURL = "https://api.worldbank.org/v2"

// Observation is a single decoded data point for one country, indicator and
// year. Observations with a null value are dropped during decoding, so Value
// is always present.
type Observation struct {
	CountryName string
	CountryCode string
	Year        int
	Value       float64
}

// Client is a World Bank v2 API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client for the given base URL. An empty baseURL falls
// back to the public API endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// seriesEntry mirrors one element of the observation array in the API
// response.
type seriesEntry struct {
	Country struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"country"`
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// FetchSeries retrieves all observations for one country and indicator over
// the configured year window. The API wraps its payload in a two-element
// array of [page info, observations]; a shorter body means no data, which is
// an empty result rather than an error.
func (c *Client) FetchSeries(ctx context.Context, countryCode, indicatorCode string) ([]Observation, error) {
	url := fmt.Sprintf("%s/country/%s/indicator/%s?date=%d:%d&format=json&per_page=100",
		c.baseURL, countryCode, indicatorCode, StartYear, EndYear)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error fetching %s for %s: %w", indicatorCode, countryCode, err)
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s for %s", resp.StatusCode, indicatorCode, countryCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	var pages []json.RawMessage
	if err := json.Unmarshal(body, &pages); err != nil {
		return nil, fmt.Errorf("error decoding response: %w", err)
	}
	if len(pages) < 2 {
		return nil, nil
	}

	var entries []seriesEntry
	if err := json.Unmarshal(pages[1], &entries); err != nil {
		return nil, fmt.Errorf("error decoding observations: %w", err)
	}

	var observations []Observation
	for _, entry := range entries {
		if entry.Value == nil {
			continue
		}
		year, err := strconv.Atoi(entry.Date)
		if err != nil {
			continue
		}
		observations = append(observations, Observation{
			CountryName: entry.Country.Value,
			CountryCode: entry.Country.ID,
			Year:        year,
			Value:       *entry.Value,
		})
	}

	return observations, nil
}
