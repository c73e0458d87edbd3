package econdb

import (
	"context"
	"database/sql"
)

const createIndicator = `
INSERT INTO economic_indicators (
	country, country_code, country_group, indicator_code, indicator_name,
	year, value, is_outlier
) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
`

type CreateIndicatorParams struct {
	Country       string
	CountryCode   string
	CountryGroup  string
	IndicatorCode string
	IndicatorName string
	Year          int64
	Value         sql.NullFloat64
	IsOutlier     int64
}

func (q *Queries) CreateIndicator(ctx context.Context, arg CreateIndicatorParams) (sql.Result, error) {
	return q.db.ExecContext(ctx, createIndicator,
		arg.Country,
		arg.CountryCode,
		arg.CountryGroup,
		arg.IndicatorCode,
		arg.IndicatorName,
		arg.Year,
		arg.Value,
		arg.IsOutlier,
	)
}

const listIndicators = `
SELECT country, country_code, country_group, indicator_code, indicator_name,
	   year, value, is_outlier
FROM economic_indicators
ORDER BY country, indicator_code, year
`

// ListIndicators returns every stored observation in a deterministic order.
func (q *Queries) ListIndicators(ctx context.Context) ([]EconomicIndicator, error) {
	rows, err := q.db.QueryContext(ctx, listIndicators)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var indicators []EconomicIndicator
	for rows.Next() {
		var i EconomicIndicator
		err := rows.Scan(
			&i.Country,
			&i.CountryCode,
			&i.CountryGroup,
			&i.IndicatorCode,
			&i.IndicatorName,
			&i.Year,
			&i.Value,
			&i.IsOutlier,
		)
		if err != nil {
			return nil, err
		}
		indicators = append(indicators, i)
	}

	return indicators, rows.Err()
}

const countIndicators = `SELECT COUNT(*) FROM economic_indicators`

func (q *Queries) CountIndicators(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countIndicators).Scan(&count)
	return count, err
}

const countOutliers = `SELECT COUNT(*) FROM economic_indicators WHERE is_outlier = 1`

func (q *Queries) CountOutliers(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, countOutliers).Scan(&count)
	return count, err
}

const listCountries = `
SELECT DISTINCT country, country_code, country_group
FROM economic_indicators
ORDER BY country
`

func (q *Queries) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := q.db.QueryContext(ctx, listCountries)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var countries []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.Country, &c.CountryCode, &c.CountryGroup); err != nil {
			return nil, err
		}
		countries = append(countries, c)
	}

	return countries, rows.Err()
}

const getYearSpan = `
SELECT COALESCE(MIN(year), 0), COALESCE(MAX(year), 0)
FROM economic_indicators
`

func (q *Queries) GetYearSpan(ctx context.Context) (YearSpan, error) {
	var span YearSpan
	err := q.db.QueryRowContext(ctx, getYearSpan).Scan(&span.FirstYear, &span.LastYear)
	return span, err
}

const getCountryObservationStats = `
SELECT country, country_code, country_group, COUNT(*), MIN(year), MAX(year)
FROM economic_indicators
WHERE country_code = ?
GROUP BY country, country_code, country_group
`

// GetCountryObservationStats summarizes stored observations for one country
// identified by its ISO-3 code. Returns sql.ErrNoRows for unknown codes.
func (q *Queries) GetCountryObservationStats(ctx context.Context, countryCode string) (CountryObservationStats, error) {
	var stats CountryObservationStats
	err := q.db.QueryRowContext(ctx, getCountryObservationStats, countryCode).Scan(
		&stats.Country,
		&stats.CountryCode,
		&stats.CountryGroup,
		&stats.Observations,
		&stats.FirstYear,
		&stats.LastYear,
	)
	return stats, err
}
