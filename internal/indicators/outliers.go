package indicators

import (
	"econpulse.openeconomics.org/internal/analytics"
	"econpulse.openeconomics.org/internal/stats"
)

// labelOutliers flags records whose value falls outside the IQR fences of
// their indicator's full value distribution. Labels are computed per
// indicator code so that, say, inflation spikes do not distort the debt
// fences. Returns the number of flagged records.
func labelOutliers(records []analytics.IndicatorRecord) int {
	valuesByIndicator := make(map[string][]float64)
	for _, r := range records {
		if r.Value == nil {
			continue
		}
		valuesByIndicator[r.IndicatorCode] = append(valuesByIndicator[r.IndicatorCode], *r.Value)
	}

	type fences struct {
		lower float64
		upper float64
	}
	fencesByIndicator := make(map[string]fences, len(valuesByIndicator))
	for code, values := range valuesByIndicator {
		lower, upper := stats.IQRFences(values)
		fencesByIndicator[code] = fences{lower: lower, upper: upper}
	}

	count := 0
	for i := range records {
		r := &records[i]
		if r.Value == nil {
			r.IsOutlier = false
			continue
		}
		f := fencesByIndicator[r.IndicatorCode]
		r.IsOutlier = *r.Value < f.lower || *r.Value > f.upper
		if r.IsOutlier {
			count++
		}
	}

	return count
}

// countOutliers counts already-labeled records, used for snapshot files
// whose labels were computed by a previous ingest run.
func countOutliers(records []analytics.IndicatorRecord) int {
	count := 0
	for _, r := range records {
		if r.IsOutlier {
			count++
		}
	}
	return count
}
