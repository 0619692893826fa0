package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

func Test_runPeriodicRefresh_StopsWhenSignaled(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "quick-start.md"), []byte("# Quick start"), 0644); err != nil {
		t.Fatalf("writing doc: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := docs.NewStore(docs.StoreOptions{RootDir: root, Logger: logger})
	rankedIndex, err := docs.NewRankedIndex()
	if err != nil {
		t.Fatalf("creating ranked index: %v", err)
	}
	t.Cleanup(func() { rankedIndex.Close() })

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		runPeriodicRefresh(3600, store, rankedIndex, logger, stop)
		close(done)
	}()

	close(stop)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("expected the refresh loop to stop")
	}
}
