// Package indicators manages the labeled indicator dataset: loading it from
// the World Bank API or a local snapshot file, labeling outliers, persisting
// it to SQLite and keeping an immutable in-memory snapshot for the report
// handlers.
package indicators

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"econpulse.openeconomics.org/econdb"
	"econpulse.openeconomics.org/internal/analytics"
	"econpulse.openeconomics.org/internal/logging"
	"econpulse.openeconomics.org/internal/metrics"
	"econpulse.openeconomics.org/internal/worldbank"
)

// Manager manages the indicator dataset and provides read access to it
type Manager struct {
	source       string
	isLocalFile  bool
	config       Config
	logger       *slog.Logger
	clock        clockwork.Clock
	metrics      *metrics.Metrics
	EconDB       *econdb.Client
	records      []analytics.IndicatorRecord
	outlierCount int
	lastUpdated  time.Time
	mu           sync.RWMutex
	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager initializes the Manager with the dataset from the configured
// source. The source can be either the World Bank API base URL or a local
// JSON snapshot file path. Remote sources are refreshed periodically in the
// background; local files are loaded once.
func InitManager(config Config, logger *slog.Logger, clock clockwork.Clock, mtr *metrics.Metrics) (*Manager, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	isLocalFile := !strings.HasPrefix(config.Source, "http://") && !strings.HasPrefix(config.Source, "https://")

	econDB, err := econdb.NewClient(econdb.NewConfig(config.DBPath, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("error building indicator database: %w", err)
	}

	manager := &Manager{
		source:       config.Source,
		isLocalFile:  isLocalFile,
		config:       config,
		logger:       logger,
		clock:        clock,
		metrics:      mtr,
		EconDB:       econDB,
		shutdownChan: make(chan struct{}),
	}

	if err := manager.ingest(context.Background(), uuid.NewString()); err != nil {
		logging.SafeCloseWithLogging(econDB, logger, "econdb_close")
		return nil, err
	}

	if !isLocalFile && config.RefreshInterval > 0 {
		manager.wg.Add(1)
		go manager.refreshPeriodically()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.EconDB != nil {
			logging.SafeCloseWithLogging(manager.EconDB, manager.logger, "econdb_close")
		}
	})
}

// Records returns the current immutable dataset snapshot. Callers must not
// mutate the returned slice.
func (manager *Manager) Records() []analytics.IndicatorRecord {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.records
}

// RecordCount returns the size of the current snapshot.
func (manager *Manager) RecordCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.records)
}

// OutlierCount returns the number of outlier-flagged records in the current
// snapshot.
func (manager *Manager) OutlierCount() int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.outlierCount
}

// LastUpdated returns when the current snapshot was installed.
func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

// Source returns the configured dataset source.
func (manager *Manager) Source() string {
	return manager.source
}

// ingest loads the dataset from the configured source, persists it and swaps
// the in-memory snapshot. A failed ingest leaves the previous snapshot and
// the previous stored dataset untouched.
func (manager *Manager) ingest(ctx context.Context, runID string) error {
	startTime := manager.clock.Now()

	records, outlierCount, err := manager.loadDataset(ctx)
	if err != nil {
		manager.observeIngest("failure", 0, 0, 0)
		return fmt.Errorf("error loading dataset: %w", err)
	}

	if err := manager.EconDB.ReplaceAll(ctx, records); err != nil {
		manager.observeIngest("failure", 0, 0, 0)
		return fmt.Errorf("error storing dataset: %w", err)
	}

	manager.setRecords(records, outlierCount)

	duration := manager.clock.Since(startTime)
	logging.LogOperation(manager.logger, "dataset_ingested",
		slog.String("run_id", runID),
		slog.String("source", manager.source),
		slog.Int("record_count", len(records)),
		slog.Int("outlier_count", outlierCount),
		slog.Duration("duration", duration))
	manager.observeIngest("success", len(records), outlierCount, duration)

	return nil
}

// loadDataset reads the dataset from the configured source. Remote data
// arrives unlabeled and gets its outlier flags computed here; snapshot files
// already carry labels from the run that wrote them.
func (manager *Manager) loadDataset(ctx context.Context) ([]analytics.IndicatorRecord, int, error) {
	if manager.isLocalFile {
		records, err := loadSnapshotFile(manager.source)
		if err != nil {
			return nil, 0, err
		}
		return records, countOutliers(records), nil
	}

	client := worldbank.NewClient(manager.source)
	records, err := client.FetchAll(ctx, manager.logger)
	if err != nil {
		return nil, 0, err
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("no records fetched from %s", manager.source)
	}

	return records, labelOutliers(records), nil
}

// loadSnapshotFile reads a labeled dataset from a local JSON snapshot file
func loadSnapshotFile(path string) ([]analytics.IndicatorRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading snapshot file: %w", err)
	}

	var records []analytics.IndicatorRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("error parsing snapshot file: %w", err)
	}

	return records, nil
}

func (manager *Manager) setRecords(records []analytics.IndicatorRecord, outlierCount int) {
	manager.mu.Lock()
	defer manager.mu.Unlock()
	manager.records = records
	manager.outlierCount = outlierCount
	manager.lastUpdated = manager.clock.Now()
}

// refreshPeriodically re-ingests the remote dataset on a fixed interval.
// A failed refresh keeps serving the previous snapshot.
func (manager *Manager) refreshPeriodically() {
	defer manager.wg.Done()

	ticker := manager.clock.NewTicker(manager.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			runID := uuid.NewString()
			if err := manager.ingest(context.Background(), runID); err != nil {
				logging.LogError(manager.logger, "dataset refresh failed, keeping previous snapshot", err,
					slog.String("run_id", runID))
				continue
			}
		case <-manager.shutdownChan:
			manager.logger.Info("shutting down dataset refresh")
			return
		}
	}
}

func (manager *Manager) observeIngest(outcome string, recordCount, outlierCount int, duration time.Duration) {
	if manager.metrics == nil {
		return
	}
	manager.metrics.IngestRuns.WithLabelValues(outcome).Inc()
	if outcome != "success" {
		return
	}
	manager.metrics.IngestRecords.Set(float64(recordCount))
	manager.metrics.IngestOutliers.Set(float64(outlierCount))
	manager.metrics.IngestDuration.Observe(duration.Seconds())
}
