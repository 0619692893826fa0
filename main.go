package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
	"github.com/shantoislamdev/material-web-mcp/ignore"
	"github.com/shantoislamdev/material-web-mcp/register"
	"github.com/shantoislamdev/material-web-mcp/server"
	"github.com/shantoislamdev/material-web-mcp/tools"
	"github.com/shantoislamdev/material-web-mcp/validator"
	"github.com/shantoislamdev/material-web-mcp/watcher"
)

// excludePatterns is a repeatable CLI flag for custom exclude patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "register" {
		register.Run("material-web", os.Args[2:])
		return
	}

	// Parse CLI flags
	var docsDir string
	var readTimeoutSeconds int
	var watchMode bool
	var syncIntervalSeconds int
	var logLevel string
	var logFile string
	var excludes excludePatterns

	flag.StringVar(&docsDir, "docs", "docs", "Documentation root directory")
	flag.Var(&excludes, "exclude", "Extra exclude pattern (repeatable)")
	flag.IntVar(&readTimeoutSeconds, "read-timeout", 5, "Per-read filesystem timeout in seconds")
	flag.BoolVar(&watchMode, "watch", false, "Refresh the index automatically when documentation files change")
	flag.IntVar(&syncIntervalSeconds, "sync-interval", 0, "Periodic refresh interval in seconds (0 = disabled)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: stderr)")
	flag.Parse()

	docsDir, err := filepath.Abs(docsDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving docs directory: %v\n", err)
		os.Exit(1)
	}

	// Setup logger (to file or stderr, never stdout - stdout is for MCP stdio)
	logger := setupLogger(logLevel, logFile)

	logger.Info("starting material-web-mcp",
		"docs", docsDir,
		"readTimeout", readTimeoutSeconds,
		"watch", watchMode,
	)

	startTime := time.Now()

	ignoreMatcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:        docsDir,
		CustomPatterns: excludes,
	})

	store := docs.NewStore(docs.StoreOptions{
		RootDir:     docsDir,
		ReadTimeout: time.Duration(readTimeoutSeconds) * time.Second,
		Ignore:      ignoreMatcher,
		Logger:      logger,
	})

	rankedIndex, err := docs.NewRankedIndex()
	if err != nil {
		logger.Error("failed to create ranked index", "error", err)
		os.Exit(1)
	}
	defer rankedIndex.Close()

	// Initial indexing. A missing or unreadable docs tree degrades the
	// individual operations instead of killing the process.
	docCount, err := buildRankedIndex(context.Background(), store, rankedIndex, logger)
	if err != nil {
		logger.Warn("initial indexing failed, continuing degraded", "error", err)
	} else {
		logger.Info("initial indexing complete", "docs", docCount, "duration", time.Since(startTime))
	}

	// Start file watcher
	if watchMode {
		docsWatcher, err := watcher.NewWatcher(docsDir, ignoreMatcher, logger)
		if err != nil {
			logger.Warn("failed to start file watcher, continuing without live refresh", "error", err)
		} else {
			go docsWatcher.Start()
			go handleWatcherTriggers(docsWatcher, store, rankedIndex, ignoreMatcher, logger)
			defer docsWatcher.Close()
		}
	}

	// Start periodic refresh
	if syncIntervalSeconds > 0 {
		stop := make(chan struct{})
		defer close(stop)
		go runPeriodicRefresh(syncIntervalSeconds, store, rankedIndex, logger, stop)
	}

	websiteValidator := validator.New(store, logger)

	handlers := server.Handlers{
		Components: &tools.ComponentsHandler{Store: store, Logger: logger},
		Search:     &tools.SearchHandler{Store: store, Logger: logger},
		Doc:        &tools.DocHandler{Store: store, Logger: logger},
		Theming:    &tools.ThemingHandler{Store: store, Logger: logger},
		Install:    &tools.InstallHandler{Store: store, Logger: logger},
		Query:      &tools.QueryHandler{RankedIndex: rankedIndex, Logger: logger},
		Validate:   &tools.ValidateHandler{Validator: websiteValidator, Logger: logger},
		Health:     &tools.HealthHandler{Store: store, Logger: logger},
		Refresh: &tools.RefreshHandler{
			Logger: logger,
			DoRefresh: func(ctx context.Context) (int, string, error) {
				ignoreMatcher.Reload()
				return refreshAll(ctx, store, rankedIndex, logger)
			},
		},
	}

	// Setup and run MCP server on stdio
	mcpServer := server.Setup(store, handlers)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// handleWatcherTriggers rebuilds the caches whenever the watcher reports a
// settled burst of filesystem changes.
func handleWatcherTriggers(
	docsWatcher *watcher.Watcher,
	store *docs.Store,
	rankedIndex *docs.RankedIndex,
	ignoreMatcher *ignore.Matcher,
	logger *slog.Logger,
) {
	for range docsWatcher.Triggers() {
		ignoreMatcher.Reload()
		docCount, elapsed, err := refreshAll(context.Background(), store, rankedIndex, logger)
		if err != nil {
			logger.Warn("watch refresh failed", "error", err)
			continue
		}
		logger.Info("watch refresh complete", "docs", docCount, "elapsed", elapsed)
	}
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
