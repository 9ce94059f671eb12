package jobs

import (
	"context"
	"log/slog"
	"time"

	"futsalbook/internal/metrics"
	"futsalbook/internal/repository"
)

// StalePendingThreshold is how long a transaction may sit in pending
// before it counts as stale on the monitoring side. Pending never
// expires automatically; only an admin decision moves it on.
const StalePendingThreshold = 24 * time.Hour

const checkInterval = 5 * time.Minute

// StalePendingMonitor periodically counts pending transactions older
// than the threshold and exports the number as a gauge. It observes,
// it does not mutate.
type StalePendingMonitor struct {
	transactions *repository.TransactionRepository
	ticker       *time.Ticker
	done         chan bool
}

func NewStalePendingMonitor(transactions *repository.TransactionRepository) *StalePendingMonitor {
	return &StalePendingMonitor{
		transactions: transactions,
		done:         make(chan bool),
	}
}

func (j *StalePendingMonitor) Start(ctx context.Context) {
	slog.Info("Starting stale pending monitor",
		"check_interval", checkInterval, "threshold", StalePendingThreshold)

	j.ticker = time.NewTicker(checkInterval)

	go j.check(ctx)

	go func() {
		for {
			select {
			case <-j.ticker.C:
				go j.check(ctx)
			case <-j.done:
				slog.Info("Stale pending monitor stopped")
				return
			}
		}
	}()
}

func (j *StalePendingMonitor) Stop() {
	if j.ticker != nil {
		j.ticker.Stop()
	}
	close(j.done)
}

func (j *StalePendingMonitor) check(ctx context.Context) {
	cutoff := time.Now().Add(-StalePendingThreshold)

	count, err := j.transactions.CountPendingOlderThan(ctx, cutoff)
	if err != nil {
		slog.Error("Failed to count stale pending transactions", "error", err)
		return
	}

	metrics.SetStalePending(count)

	if count > 0 {
		slog.Warn("Pending transactions awaiting admin review", "count", count, "older_than", StalePendingThreshold)
	} else {
		slog.Debug("No stale pending transactions")
	}
}
