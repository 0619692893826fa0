package tools

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestStore builds a document store over a temp docs tree.
func newTestStore(t *testing.T, files map[string]string) *docs.Store {
	t.Helper()
	root := t.TempDir()
	for relPath, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("creating %s: %v", fullPath, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", fullPath, err)
		}
	}
	return docs.NewStore(docs.StoreOptions{RootDir: root, Logger: discardLogger()})
}

// newMissingRootStore builds a store whose root does not exist, so every
// scan fails.
func newMissingRootStore(t *testing.T) *docs.Store {
	t.Helper()
	return docs.NewStore(docs.StoreOptions{
		RootDir: filepath.Join(t.TempDir(), "missing"),
		Logger:  discardLogger(),
	})
}
