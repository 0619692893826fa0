package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// buildRankedIndex feeds every indexed document into the ranked index.
// Returns the number of documents indexed. Unreadable documents are logged
// and skipped, matching the per-file policy of the literal search.
func buildRankedIndex(
	ctx context.Context,
	store *docs.Store,
	rankedIndex *docs.RankedIndex,
	logger *slog.Logger,
) (int, error) {
	entries, err := store.Scan(ctx)
	if err != nil {
		return 0, fmt.Errorf("scanning documents: %w", err)
	}

	indexed := 0
	for _, doc := range entries {
		content, err := store.ReadDoc(ctx, doc.RelativePath)
		if err != nil {
			logger.Warn("skipping document in ranked index", "path", doc.RelativePath, "error", err)
			continue
		}
		if err := rankedIndex.IndexDoc(doc.RelativePath, content); err != nil {
			logger.Warn("failed to rank-index document", "path", doc.RelativePath, "error", err)
			continue
		}
		indexed++
	}
	return indexed, nil
}

// refreshAll invalidates the store caches and rebuilds the ranked index from
// scratch. Shared by the refresh tool, the watcher, and the periodic sync.
func refreshAll(
	ctx context.Context,
	store *docs.Store,
	rankedIndex *docs.RankedIndex,
	logger *slog.Logger,
) (int, string, error) {
	start := time.Now()

	store.Refresh()
	if err := rankedIndex.Clear(); err != nil {
		return 0, "", fmt.Errorf("clearing ranked index: %w", err)
	}

	indexed, err := buildRankedIndex(ctx, store, rankedIndex, logger)
	if err != nil {
		return 0, "", err
	}

	elapsed := time.Since(start).Round(time.Millisecond).String()
	return indexed, elapsed, nil
}
