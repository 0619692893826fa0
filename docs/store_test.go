package docs

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// writeTree creates a docs tree from relative path -> content pairs.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for relPath, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(relPath))
		if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
			t.Fatalf("creating %s: %v", fullPath, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
			t.Fatalf("writing %s: %v", fullPath, err)
		}
	}
}

func newTestStore(t *testing.T, files map[string]string) *Store {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, files)
	return NewStore(StoreOptions{
		RootDir: root,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func Test_Store_Scan_FindsMarkdownRecursively(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"quick-start.md":          "# Quick start",
		"components/button.md":    "# Button",
		"theming/color.md":        "# Color",
		"components/notes.txt":    "not markdown",
		"deep/nested/dir/file.md": "# Deep",
	})

	entries, err := s.Scan(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 documents, got %d", len(entries))
	}
	for _, doc := range entries {
		if filepath.Ext(doc.RelativePath) != ".md" {
			t.Errorf("non-markdown file indexed: %s", doc.RelativePath)
		}
	}
}

func Test_Store_Scan_MissingRootFails(t *testing.T) {
	s := NewStore(StoreOptions{RootDir: filepath.Join(t.TempDir(), "does-not-exist")})

	if _, err := s.Scan(context.Background()); err == nil {
		t.Fatal("expected error for missing root")
	}
}

func Test_Store_Scan_CachesUntilRefresh(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"components/button.md": "# Button",
	})
	ctx := context.Background()

	first, err := s.Scan(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 document, got %d", len(first))
	}

	// A file added after population must be invisible until refresh.
	writeTree(t, s.Root(), map[string]string{"components/checkbox.md": "# Checkbox"})

	second, err := s.Scan(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second) != 1 {
		t.Errorf("expected stale cache with 1 document, got %d", len(second))
	}

	s.Refresh()

	third, err := s.Scan(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(third) != 2 {
		t.Errorf("expected 2 documents after refresh, got %d", len(third))
	}
}

func Test_Store_Resolve_RejectsTraversal(t *testing.T) {
	s := newTestStore(t, nil)

	for _, identifier := range []string{"../secret.md", "components/../../etc/passwd", "..", "a/..\\../b.md"} {
		if _, err := s.Resolve(identifier); !errors.Is(err, ErrAccessDenied) {
			t.Errorf("Resolve(%q): expected ErrAccessDenied, got %v", identifier, err)
		}
	}

	if _, err := s.Resolve("components/button.md"); err != nil {
		t.Errorf("unexpected error for clean path: %v", err)
	}
}

func Test_Store_ReadDoc(t *testing.T) {
	s := newTestStore(t, map[string]string{
		"components/button.md": "# Button docs",
	})
	ctx := context.Background()

	content, err := s.ReadDoc(ctx, "components/button.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "# Button docs" {
		t.Errorf("unexpected content: %q", content)
	}

	if _, err := s.ReadDoc(ctx, "components/missing.md"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got %v", err)
	}

	if _, err := s.ReadDoc(ctx, "../outside.md"); !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}
