package worldbank

import (
	"context"
	"log/slog"
	"sync"

	"econpulse.openeconomics.org/internal/analytics"
)

// fetchWorkers bounds the number of concurrent API requests.
const fetchWorkers = 5

type fetchTask struct {
	countryCode   string
	countryGroup  string
	indicatorCode string
}

// FetchAll retrieves the full dataset for every tracked country group and
// indicator, fanning the country×indicator task list out over a fixed worker
// pool. Failed tasks are logged and skipped; a partial dataset is preferred
// over an aborted run.
func (c *Client) FetchAll(ctx context.Context, logger *slog.Logger) ([]analytics.IndicatorRecord, error) {
	var tasks []fetchTask
	for _, group := range GroupNames() {
		for _, countryCode := range CountryGroups[group] {
			for _, indicatorCode := range IndicatorCodes() {
				tasks = append(tasks, fetchTask{
					countryCode:   countryCode,
					countryGroup:  group,
					indicatorCode: indicatorCode,
				})
			}
		}
	}

	taskChan := make(chan fetchTask)
	var mu sync.Mutex
	var records []analytics.IndicatorRecord

	var wg sync.WaitGroup
	for i := 0; i < fetchWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskChan {
				observations, err := c.FetchSeries(ctx, task.countryCode, task.indicatorCode)
				if err != nil {
					logger.Warn("failed to fetch indicator series",
						"country", task.countryCode,
						"indicator", task.indicatorCode,
						"error", err)
					continue
				}

				mu.Lock()
				for _, obs := range observations {
					value := obs.Value
					records = append(records, analytics.IndicatorRecord{
						Country:       obs.CountryName,
						CountryCode:   obs.CountryCode,
						CountryGroup:  task.countryGroup,
						IndicatorCode: task.indicatorCode,
						IndicatorName: Indicators[task.indicatorCode],
						Year:          obs.Year,
						Value:         &value,
					})
				}
				mu.Unlock()
			}
		}()
	}

	for _, task := range tasks {
		if ctx.Err() != nil {
			close(taskChan)
			wg.Wait()
			return nil, ctx.Err()
		}
		taskChan <- task
	}
	close(taskChan)
	wg.Wait()

	return records, nil
}
