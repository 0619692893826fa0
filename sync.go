package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// runPeriodicRefresh starts a background loop that rebuilds the caches at the
// given interval, for deployments where the docs tree changes underneath the
// server and watch mode is unavailable. It runs until stop is closed.
func runPeriodicRefresh(
	intervalSeconds int,
	store *docs.Store,
	rankedIndex *docs.RankedIndex,
	logger *slog.Logger,
	stop <-chan struct{},
) {
	interval := time.Duration(intervalSeconds) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("periodic refresh started", "intervalSeconds", intervalSeconds)

	for {
		select {
		case <-stop:
			logger.Info("periodic refresh stopped")
			return
		case <-ticker.C:
			docCount, elapsed, err := refreshAll(context.Background(), store, rankedIndex, logger)
			if err != nil {
				logger.Warn("periodic refresh failed", "error", err)
				continue
			}
			logger.Debug("periodic refresh complete", "docs", docCount, "elapsed", elapsed)
		}
	}
}
