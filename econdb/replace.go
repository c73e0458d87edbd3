package econdb

import (
	"context"
	"fmt"
	"log"
	"time"

	"econpulse.openeconomics.org/internal/analytics"
)

// ReplaceAll atomically replaces the stored dataset with the given records
// in a single transaction: either the new dataset lands in full or the old
// one stays. Rows missing required identifying fields are skipped rather
// than aborting the load.
func (c *Client) ReplaceAll(ctx context.Context, records []analytics.IndicatorRecord) error {
	startTime := time.Now()
	defer func() {
		c.importRuntime = time.Since(startTime)

		if c.config.verbose {
			log.Println("Replacing indicator data took", c.importRuntime.String())
		}
	}()

	tx, err := c.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback() // nolint:errcheck

	if _, err := tx.ExecContext(ctx, `DELETE FROM economic_indicators`); err != nil {
		return fmt.Errorf("error clearing indicator table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, createIndicator)
	if err != nil {
		return fmt.Errorf("error preparing insert statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, record := range records {
		if record.Country == "" || record.Year == 0 {
			if c.config.verbose {
				log.Printf("skipping malformed indicator row: %+v", record)
			}
			continue
		}

		_, err := stmt.ExecContext(ctx,
			record.Country,
			record.CountryCode,
			record.CountryGroup,
			record.IndicatorCode,
			record.IndicatorName,
			int64(record.Year),
			toNullFloat64(record.Value),
			boolToInt(record.IsOutlier),
		)
		if err != nil {
			return fmt.Errorf("error inserting indicator row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// LoadRecords reads the stored dataset back as analytics records. Rows with
// missing identifying fields are skipped.
func (c *Client) LoadRecords(ctx context.Context) ([]analytics.IndicatorRecord, error) {
	stored, err := c.Queries.ListIndicators(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing indicators: %w", err)
	}

	records := make([]analytics.IndicatorRecord, 0, len(stored))
	for _, row := range stored {
		if row.Country == "" || row.Year == 0 {
			continue
		}
		record := analytics.IndicatorRecord{
			Country:       row.Country,
			CountryCode:   row.CountryCode,
			CountryGroup:  row.CountryGroup,
			IndicatorCode: row.IndicatorCode,
			IndicatorName: row.IndicatorName,
			Year:          int(row.Year),
			IsOutlier:     row.IsOutlier != 0,
		}
		if row.Value.Valid {
			record.Value = analytics.Float64Ptr(row.Value.Float64)
		}
		records = append(records, record)
	}

	return records, nil
}
