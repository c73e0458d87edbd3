package econdb

import "database/sql"

// EconomicIndicator is one stored country-year observation. Value is NULL
// when the observation arrived without a measurement.
type EconomicIndicator struct {
	Country       string
	CountryCode   string
	CountryGroup  string
	IndicatorCode string
	IndicatorName string
	Year          int64
	Value         sql.NullFloat64
	IsOutlier     int64
}

// Country is one distinct country present in the dataset.
type Country struct {
	Country      string
	CountryCode  string
	CountryGroup string
}

// YearSpan is the observed year range of the dataset.
type YearSpan struct {
	FirstYear int64
	LastYear  int64
}

// CountryObservationStats summarizes the stored observations for one country.
type CountryObservationStats struct {
	Country      string
	CountryCode  string
	CountryGroup string
	Observations int64
	FirstYear    int64
	LastYear     int64
}
