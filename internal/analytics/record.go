package analytics

// IndicatorRecord is a single country-year observation of an economic
// indicator. Records are immutable once loaded; the report functions in this
// package only ever read them.
type IndicatorRecord struct {
	Country       string   `json:"country"`
	CountryCode   string   `json:"country_code"`
	CountryGroup  string   `json:"country_group"`
	IndicatorCode string   `json:"indicator_code"`
	IndicatorName string   `json:"indicator_name"`
	Year          int      `json:"year"`
	Value         *float64 `json:"value"`
	IsOutlier     bool     `json:"is_outlier"`
}

// valid reports whether a record carries the required identifying fields.
// Rows missing them are skipped by every report rather than aborting the run.
func (r IndicatorRecord) valid() bool {
	return r.Country != "" && r.Year != 0
}

// Float64Ptr is a convenience helper for building records.
func Float64Ptr(v float64) *float64 {
	return &v
}
