package indicators

import (
	"time"

	"econpulse.openeconomics.org/internal/appconf"
)

// Config holds the dataset manager's configuration. Source is either the
// World Bank API base URL or a path to a local JSON snapshot file; local
// snapshots are never refreshed.
type Config struct {
	Source          string
	DBPath          string
	Env             appconf.Environment
	Verbose         bool
	RefreshInterval time.Duration
}

// DefaultRefreshInterval is how often the remote dataset is re-fetched.
const DefaultRefreshInterval = 24 * time.Hour
