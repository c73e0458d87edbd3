package models

// CountryProfileModel describes the stored observations for a single country
type CountryProfileModel struct {
	Country      string `json:"country"`
	CountryCode  string `json:"countryCode"`
	CountryGroup string `json:"countryGroup"`
	Observations int64  `json:"observations"`
	FirstYear    int64  `json:"firstYear"`
	LastYear     int64  `json:"lastYear"`
}
