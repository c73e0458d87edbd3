// Package analytics computes the five descriptive reports served by the API:
// shock frequency, stable growth averages, debt vs. infrastructure,
// inflation momentum and trade power rankings. Every report is a pure
// function over an immutable record slice; none of them mutate their input
// and all of them return an empty (non-nil) slice for empty input.
package analytics

import (
	"math"
	"sort"
)

// RoundTo2 rounds a value to two decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ShockFrequencyRow counts outlier-flagged observations for one country.
type ShockFrequencyRow struct {
	Country      string `json:"country"`
	CountryGroup string `json:"countryGroup"`
	ShockEvents  int    `json:"shockEvents"`
}

// GrowthAverageRow is the outlier-adjusted mean growth for one country group.
type GrowthAverageRow struct {
	CountryGroup string  `json:"countryGroup"`
	AvgGrowth    float64 `json:"avgGrowth"`
}

// DebtInfrastructureRow compares a country's mean debt ratio against its mean
// electricity access. AvgElectricityAccess is nil when the country has no
// electricity-access observations.
type DebtInfrastructureRow struct {
	Country              string   `json:"country"`
	CountryGroup         string   `json:"countryGroup"`
	AvgDebtGDP           float64  `json:"avgDebtGdp"`
	AvgElectricityAccess *float64 `json:"avgElectricityAccess"`
}

// InflationMomentumRow is one country-year inflation observation together
// with the previous observed value and the year-over-year change. Prev and
// YoYChange are nil on the first observation of a country's series.
type InflationMomentumRow struct {
	Country           string   `json:"country"`
	Year              int      `json:"year"`
	InflationRate     float64  `json:"inflationRate"`
	PrevYearInflation *float64 `json:"prevYearInflation"`
	YoYChange         *float64 `json:"yoyChange"`
}

// TradePowerRow ranks a country's export ratio within its (year, group)
// partition. Ranking is dense: ties share a rank and the next distinct value
// takes the immediately following integer.
type TradePowerRow struct {
	Year         int     `json:"year"`
	Country      string  `json:"country"`
	CountryGroup string  `json:"countryGroup"`
	ExportsGDP   float64 `json:"exportsGdp"`
	Rank         int     `json:"rank"`
}

type countryKey struct {
	country string
	group   string
}

// ShockFrequency counts outlier-flagged observations per (country, group),
// sorted by descending count. Ties keep first-seen input order.
func ShockFrequency(records []IndicatorRecord) []ShockFrequencyRow {
	counts := make(map[countryKey]int)
	var order []countryKey

	for _, r := range records {
		if !r.valid() || !r.IsOutlier {
			continue
		}
		key := countryKey{r.Country, r.CountryGroup}
		if _, seen := counts[key]; !seen {
			order = append(order, key)
		}
		counts[key]++
	}

	rows := make([]ShockFrequencyRow, 0, len(order))
	for _, key := range order {
		rows = append(rows, ShockFrequencyRow{
			Country:      key.country,
			CountryGroup: key.group,
			ShockEvents:  counts[key],
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].ShockEvents > rows[j].ShockEvents
	})

	return rows
}

type meanAccumulator struct {
	sum   float64
	count int
}

func (a *meanAccumulator) add(v *float64) {
	if v == nil {
		return
	}
	a.sum += *v
	a.count++
}

func (a meanAccumulator) mean() (float64, bool) {
	if a.count == 0 {
		return 0, false
	}
	return a.sum / float64(a.count), true
}

// StableGrowthAverage averages the given growth indicator per country group,
// excluding outlier-flagged rows and missing values. Groups with no
// qualifying observations emit no row. Output keeps first-seen group order.
func StableGrowthAverage(records []IndicatorRecord, growthCode string) []GrowthAverageRow {
	averages := make(map[string]*meanAccumulator)
	var order []string

	for _, r := range records {
		if !r.valid() || r.IndicatorCode != growthCode || r.IsOutlier {
			continue
		}
		acc, seen := averages[r.CountryGroup]
		if !seen {
			acc = &meanAccumulator{}
			averages[r.CountryGroup] = acc
			order = append(order, r.CountryGroup)
		}
		acc.add(r.Value)
	}

	rows := make([]GrowthAverageRow, 0, len(order))
	for _, group := range order {
		mean, ok := averages[group].mean()
		if !ok {
			continue
		}
		rows = append(rows, GrowthAverageRow{
			CountryGroup: group,
			AvgGrowth:    RoundTo2(mean),
		})
	}

	return rows
}

// DebtInfrastructure computes, per country, the mean debt ratio and the mean
// electricity access, each excluding missing values independently. Countries
// with no debt observations are dropped. Output is sorted by descending debt
// average; ties keep first-seen input order.
func DebtInfrastructure(records []IndicatorRecord, debtCode, electricityCode string) []DebtInfrastructureRow {
	type accumulators struct {
		debt        meanAccumulator
		electricity meanAccumulator
	}

	groups := make(map[countryKey]*accumulators)
	var order []countryKey

	for _, r := range records {
		if !r.valid() {
			continue
		}
		if r.IndicatorCode != debtCode && r.IndicatorCode != electricityCode {
			continue
		}
		key := countryKey{r.Country, r.CountryGroup}
		acc, seen := groups[key]
		if !seen {
			acc = &accumulators{}
			groups[key] = acc
			order = append(order, key)
		}
		if r.IndicatorCode == debtCode {
			acc.debt.add(r.Value)
		} else {
			acc.electricity.add(r.Value)
		}
	}

	rows := make([]DebtInfrastructureRow, 0, len(order))
	for _, key := range order {
		acc := groups[key]
		debtMean, ok := acc.debt.mean()
		if !ok {
			continue
		}
		row := DebtInfrastructureRow{
			Country:      key.country,
			CountryGroup: key.group,
			AvgDebtGDP:   RoundTo2(debtMean),
		}
		if electricityMean, ok := acc.electricity.mean(); ok {
			row.AvgElectricityAccess = Float64Ptr(RoundTo2(electricityMean))
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AvgDebtGDP > rows[j].AvgDebtGDP
	})

	return rows
}

// InflationMomentum computes year-over-year inflation changes per country.
// The lag is the previous observed year in the country's full series, so
// gaps in the series are bridged silently. The fromYear cut applies to
// output rows only, after the lag has been computed against the full series:
// a 2020 observation still feeds the 2021 row's previous value even when
// fromYear is 2021. Output is ordered by (country, year) ascending.
func InflationMomentum(records []IndicatorRecord, inflationCode string, fromYear int) []InflationMomentumRow {
	type observation struct {
		year  int
		value float64
	}

	series := make(map[string][]observation)
	var countries []string

	for _, r := range records {
		if !r.valid() || r.IndicatorCode != inflationCode || r.Value == nil {
			continue
		}
		if _, seen := series[r.Country]; !seen {
			countries = append(countries, r.Country)
		}
		series[r.Country] = append(series[r.Country], observation{r.Year, *r.Value})
	}
	sort.Strings(countries)

	rows := make([]InflationMomentumRow, 0, len(records))
	for _, country := range countries {
		observations := series[country]
		sort.Slice(observations, func(i, j int) bool {
			return observations[i].year < observations[j].year
		})

		var prev *float64
		for _, obs := range observations {
			if obs.year >= fromYear {
				row := InflationMomentumRow{
					Country:       country,
					Year:          obs.year,
					InflationRate: obs.value,
				}
				if prev != nil {
					row.PrevYearInflation = Float64Ptr(*prev)
					row.YoYChange = Float64Ptr(RoundTo2(obs.value - *prev))
				}
				rows = append(rows, row)
			}
			prev = Float64Ptr(obs.value)
		}
	}

	return rows
}

// TradePowerRanking ranks export ratios within each (year, country group)
// partition for years at or after fromYear, using dense ranking on
// descending value. Output is ordered by (year, group, rank, country) for a
// deterministic listing.
func TradePowerRanking(records []IndicatorRecord, exportsCode string, fromYear int) []TradePowerRow {
	rows := make([]TradePowerRow, 0, len(records))
	for _, r := range records {
		if !r.valid() || r.IndicatorCode != exportsCode || r.Value == nil {
			continue
		}
		if r.Year < fromYear {
			continue
		}
		rows = append(rows, TradePowerRow{
			Year:         r.Year,
			Country:      r.Country,
			CountryGroup: r.CountryGroup,
			ExportsGDP:   *r.Value,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		if a.CountryGroup != b.CountryGroup {
			return a.CountryGroup < b.CountryGroup
		}
		if a.ExportsGDP != b.ExportsGDP {
			return a.ExportsGDP > b.ExportsGDP
		}
		return a.Country < b.Country
	})

	// Single forward scan assigning dense ranks per partition.
	for i := range rows {
		switch {
		case i == 0, rows[i].Year != rows[i-1].Year, rows[i].CountryGroup != rows[i-1].CountryGroup:
			rows[i].Rank = 1
		case rows[i].ExportsGDP == rows[i-1].ExportsGDP:
			rows[i].Rank = rows[i-1].Rank
		default:
			rows[i].Rank = rows[i-1].Rank + 1
		}
	}

	return rows
}
