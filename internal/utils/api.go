package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	// MinReportYear is the earliest year accepted by report endpoints. The
	// World Bank's annual series start in 1960.
	MinReportYear = 1960
	// MaxReportYear bounds obviously bogus year parameters.
	MaxReportYear = 2100
)

// ParseYearParam retrieves a year value from the provided URL query parameters.
// If the key is not present, it returns defaultYear. If the value is not an
// integer or falls outside the accepted range, it updates the fieldErrors map.
// Returns:
// - The parsed year (or defaultYear if the key is absent or invalid).
// - The updated fieldErrors map containing any validation errors.
func ParseYearParam(params url.Values, key string, defaultYear int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return defaultYear, fieldErrors
	}

	year, err := strconv.Atoi(val)
	if err != nil || year < MinReportYear || year > MaxReportYear {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return defaultYear, fieldErrors
	}

	return year, fieldErrors
}
