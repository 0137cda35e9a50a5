package jobs

import (
	"context"
	"log"
	"time"

	"cvnapi/internal/db"
	"cvnapi/internal/metrics"
)

// FreshnessWatcher periodically republishes the data file's
// modification time as a gauge. It never touches the request path; a
// stale gauge only means a stale dashboard.
type FreshnessWatcher struct {
	db       *db.DB
	interval time.Duration
}

// NewFreshnessWatcher creates a new freshness watcher.
func NewFreshnessWatcher(database *db.DB, interval time.Duration) *FreshnessWatcher {
	return &FreshnessWatcher{db: database, interval: interval}
}

// Start begins the background refresh loop.
func (w *FreshnessWatcher) Start(ctx context.Context) {
	log.Printf("Freshness watcher started (interval: %v)", w.interval)

	// Run immediately on start
	w.update()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Freshness watcher stopped")
			return
		case <-ticker.C:
			w.update()
		}
	}
}

func (w *FreshnessWatcher) update() {
	ts, err := w.db.LastModified()
	if err != nil {
		log.Printf("Freshness watcher: %v", err)
		return
	}
	metrics.SetStoreLastUpdate(ts)
}
