// Package ignore decides which paths are excluded from documentation
// indexing. It combines a small set of always-skipped directories, an
// optional .docsignore file (gitignore syntax) at the docs root, and custom
// CLI patterns.
package ignore

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	gitignore "github.com/denormal/go-gitignore"
)

// docsIgnoreFile is the gitignore-syntax exclusion file honored at the
// documentation root.
const docsIgnoreFile = ".docsignore"

// Matcher determines whether a path should be ignored during scanning.
// Thread-safe: Reload acquires the write lock, the Should* methods the read
// lock.
type Matcher struct {
	mu             sync.RWMutex
	rootDir        string
	customPatterns []string
	docsIgnore     gitignore.GitIgnore
}

// MatcherOptions configures the matcher.
type MatcherOptions struct {
	RootDir        string
	CustomPatterns []string // doublestar patterns matched against relative paths
}

// NewMatcher creates a matcher and loads .docsignore from the root if present.
func NewMatcher(options MatcherOptions) *Matcher {
	matcher := &Matcher{
		rootDir:        options.RootDir,
		customPatterns: options.CustomPatterns,
	}
	matcher.docsIgnore = loadIgnoreFile(filepath.Join(options.RootDir, docsIgnoreFile), options.RootDir)
	return matcher
}

// ShouldIgnoreDir returns true if a directory should be skipped entirely.
func (m *Matcher) ShouldIgnoreDir(absolutePath string) bool {
	switch filepath.Base(absolutePath) {
	case ".git", ".svn", ".hg", "node_modules", ".obsidian", ".idea", ".vscode":
		return true
	}
	return m.shouldIgnore(absolutePath, true)
}

// ShouldIgnore returns true if a file should be excluded from indexing.
func (m *Matcher) ShouldIgnore(absolutePath string) bool {
	return m.shouldIgnore(absolutePath, false)
}

func (m *Matcher) shouldIgnore(absolutePath string, isDir bool) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	relativePath, err := filepath.Rel(m.rootDir, absolutePath)
	if err != nil {
		relativePath = absolutePath
	}
	relativePath = filepath.ToSlash(relativePath)

	for _, pattern := range m.customPatterns {
		if matched, err := doublestar.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, filepath.Base(relativePath)); err == nil && matched {
			return true
		}
	}

	if m.docsIgnore != nil {
		// Relative() matches against the rules without requiring the path
		// to exist on disk.
		if match := m.docsIgnore.Relative(relativePath, isDir); match != nil && match.Ignore() {
			return true
		}
	}

	return false
}

// Reload re-reads .docsignore from disk. Called when the watcher sees the
// file change.
func (m *Matcher) Reload() {
	reloaded := loadIgnoreFile(filepath.Join(m.rootDir, docsIgnoreFile), m.rootDir)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docsIgnore = reloaded
}

// loadIgnoreFile parses an ignore file into a GitIgnore matcher, or returns
// nil if the file cannot be read.
func loadIgnoreFile(filePath string, baseDir string) gitignore.GitIgnore {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	return gitignore.New(f, baseDir, nil)
}
