package models

// StatusModel summarizes the currently loaded dataset for the status endpoint
type StatusModel struct {
	RecordCount  int64  `json:"recordCount"`
	OutlierCount int64  `json:"outlierCount"`
	CountryCount int    `json:"countryCount"`
	FirstYear    int64  `json:"firstYear"`
	LastYear     int64  `json:"lastYear"`
	LastUpdated  int64  `json:"lastUpdated"`
	Source       string `json:"source"`
}
