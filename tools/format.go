package tools

import (
	"fmt"
	"strings"
	"time"

	"github.com/shantoislamdev/material-web-mcp/docs"
	"github.com/shantoislamdev/material-web-mcp/validator"
)

// FormatComponents formats the component catalog as a bulleted list.
func FormatComponents(names []string) string {
	if len(names) == 0 {
		return "No components found."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d components:\n\n", len(names)))
	for _, name := range names {
		builder.WriteString("  - " + name + "\n")
	}
	return builder.String()
}

// FormatSearchResults formats literal search results grouped by document
// with 1-based line numbers.
func FormatSearchResults(results []docs.SearchResult) string {
	if len(results) == 0 {
		return "No matches found."
	}

	totalMatches := 0
	for _, result := range results {
		totalMatches += len(result.Matches)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d matches in %d documents:\n\n", totalMatches, len(results)))

	for i, result := range results {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("── %s ──\n", result.RelativePath))
		for _, match := range result.Matches {
			builder.WriteString(fmt.Sprintf("  %d: %s\n", match.Line, match.Text))
		}
	}
	return builder.String()
}

// FormatRankedHits formats scored query hits with their excerpts.
func FormatRankedHits(hits []docs.RankedHit) string {
	if len(hits) == 0 {
		return "No matching documents."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Found %d relevant documents:\n\n", len(hits)))

	for i, hit := range hits {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(fmt.Sprintf("── %s (score %.3f) ──\n", hit.RelativePath, hit.Score))
		for _, fragment := range hit.Fragments {
			builder.WriteString("  " + strings.TrimSpace(fragment) + "\n")
		}
	}
	return builder.String()
}

// FormatValidationReport formats a validation report as readable text.
func FormatValidationReport(report *validator.Report) string {
	var builder strings.Builder
	if report.Valid {
		builder.WriteString("Valid: all md-* components are documented.\n")
	} else {
		builder.WriteString("Invalid: unknown components found.\n")
	}

	if len(report.Errors) > 0 {
		builder.WriteString("\nErrors:\n")
		for _, message := range report.Errors {
			builder.WriteString("  - " + message + "\n")
		}
	}
	if len(report.Warnings) > 0 {
		builder.WriteString("\nWarnings:\n")
		for _, message := range report.Warnings {
			builder.WriteString("  - " + message + "\n")
		}
	}
	return builder.String()
}

// FormatHealthReport formats a health report as readable text.
func FormatHealthReport(report docs.HealthReport) string {
	var builder strings.Builder
	builder.WriteString("=== material-web-mcp Health ===\n\n")
	builder.WriteString(fmt.Sprintf("Status: %s\n", report.Status))
	builder.WriteString(fmt.Sprintf("Uptime: %s\n", formatDuration(report.Uptime)))
	builder.WriteString(fmt.Sprintf("Docs accessible: %t\n", report.DocsAccessible))
	builder.WriteString(fmt.Sprintf("Documents: %d\n", report.DocsCount))
	builder.WriteString(fmt.Sprintf("Components: %d\n", report.ComponentsCount))

	if len(report.Errors) > 0 {
		builder.WriteString("\nErrors:\n")
		for _, message := range report.Errors {
			builder.WriteString("  - " + message + "\n")
		}
	}
	return builder.String()
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	totalMinutes := totalSeconds / 60
	remainderSeconds := totalSeconds % 60
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm%ds", totalMinutes, remainderSeconds)
	}
	hours := totalMinutes / 60
	remainderMinutes := totalMinutes % 60
	return fmt.Sprintf("%dh%dm", hours, remainderMinutes)
}
