// Package docs maintains an in-memory index of the Material Web Markdown
// documentation tree and answers searches, component lookups, and API
// extractions against it.
package docs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const markdownExt = ".md"

var (
	// ErrAccessDenied is returned when a document identifier tries to
	// escape the documentation root.
	ErrAccessDenied = errors.New("access denied")

	// ErrTimeout is returned when a filesystem operation exceeds the
	// configured read timeout.
	ErrTimeout = errors.New("filesystem operation timed out")
)

// Document represents one Markdown file under the documentation root.
type Document struct {
	Path         string // Absolute file path
	RelativePath string // Path relative to the docs root (forward slashes)
}

// IgnoreChecker is used by the store to exclude paths during scanning.
type IgnoreChecker interface {
	ShouldIgnoreDir(absolutePath string) bool
	ShouldIgnore(absolutePath string) bool
}

// StoreOptions configures a Store.
type StoreOptions struct {
	RootDir     string
	ReadTimeout time.Duration // defaults to 5s
	Ignore      IgnoreChecker // optional
	Logger      *slog.Logger  // optional, defaults to a discard logger
}

// Store owns the cached document list and the per-component API descriptor
// cache. The document list is populated lazily on first scan and discarded
// wholesale by Refresh; there is no per-file invalidation.
type Store struct {
	rootDir   string
	timeout   time.Duration
	ignore    IgnoreChecker
	logger    *slog.Logger
	startTime time.Time

	mu        sync.RWMutex
	documents []Document // nil means not yet populated

	apiMu sync.Mutex
	api   map[string]*APIDescriptor
}

// NewStore creates a store over the given documentation root. No scanning
// happens until the first operation needs the index.
func NewStore(options StoreOptions) *Store {
	timeout := options.ReadTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	rootDir, err := filepath.Abs(options.RootDir)
	if err != nil {
		rootDir = options.RootDir
	}
	return &Store{
		rootDir:   rootDir,
		timeout:   timeout,
		ignore:    options.Ignore,
		logger:    logger,
		startTime: time.Now(),
		api:       make(map[string]*APIDescriptor),
	}
}

// Root returns the absolute documentation root directory.
func (s *Store) Root() string {
	return s.rootDir
}

// Scan returns all Markdown documents under the root. The result is memoized:
// after the first successful scan no filesystem access happens until Refresh
// is called. Any directory listing failure (including a timeout) aborts the
// whole scan; partial results are never cached or returned.
func (s *Store) Scan(ctx context.Context) ([]Document, error) {
	s.mu.RLock()
	cached := s.documents
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}

	found, err := s.walk(ctx, s.rootDir)
	if err != nil {
		return nil, err
	}
	if found == nil {
		// An empty tree is still a populated cache.
		found = []Document{}
	}

	s.mu.Lock()
	s.documents = found
	s.mu.Unlock()
	return found, nil
}

// walk recursively lists dir, descending into subdirectories and collecting
// Markdown files in directory-read order. Each individual listing is bounded
// by the read timeout.
func (s *Store) walk(ctx context.Context, dir string) ([]Document, error) {
	entries, err := withTimeout(ctx, s.timeout, func() ([]os.DirEntry, error) {
		return os.ReadDir(dir)
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var found []Document
	for _, entry := range entries {
		entryPath := filepath.Join(dir, entry.Name())
		if entry.IsDir() {
			if s.ignore != nil && s.ignore.ShouldIgnoreDir(entryPath) {
				continue
			}
			nested, err := s.walk(ctx, entryPath)
			if err != nil {
				return nil, err
			}
			found = append(found, nested...)
			continue
		}
		if !strings.HasSuffix(entry.Name(), markdownExt) {
			continue
		}
		if s.ignore != nil && s.ignore.ShouldIgnore(entryPath) {
			continue
		}
		relativePath, err := filepath.Rel(s.rootDir, entryPath)
		if err != nil {
			continue
		}
		found = append(found, Document{
			Path:         entryPath,
			RelativePath: filepath.ToSlash(relativePath),
		})
	}
	return found, nil
}

// Refresh discards the cached document list and the API descriptor cache.
// It does not rescan; the next caller pays the scan cost.
func (s *Store) Refresh() {
	s.mu.Lock()
	s.documents = nil
	s.mu.Unlock()

	s.apiMu.Lock()
	s.api = make(map[string]*APIDescriptor)
	s.apiMu.Unlock()
}

// Resolve converts a caller-supplied relative identifier into an absolute
// path under the root. Identifiers containing a parent-directory segment are
// rejected with ErrAccessDenied.
func (s *Store) Resolve(relativePath string) (string, error) {
	normalized := strings.ReplaceAll(relativePath, "\\", "/")
	for _, segment := range strings.Split(normalized, "/") {
		if segment == ".." {
			return "", fmt.Errorf("%w: %s", ErrAccessDenied, relativePath)
		}
	}
	return filepath.Join(s.rootDir, filepath.FromSlash(normalized)), nil
}

// ReadDoc reads a single document by its relative identifier, subject to the
// Resolve traversal check. Missing files surface as fs.ErrNotExist wrapped in
// the returned error.
func (s *Store) ReadDoc(ctx context.Context, relativePath string) (string, error) {
	absolutePath, err := s.Resolve(relativePath)
	if err != nil {
		return "", err
	}
	return s.readFile(ctx, absolutePath)
}

// readFile reads one file's full content, bounded by the read timeout.
func (s *Store) readFile(ctx context.Context, path string) (string, error) {
	data, err := withTimeout(ctx, s.timeout, func() ([]byte, error) {
		return os.ReadFile(path)
	})
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
