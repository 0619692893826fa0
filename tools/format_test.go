package tools

import (
	"strings"
	"testing"
	"time"

	"github.com/shantoislamdev/material-web-mcp/docs"
	"github.com/shantoislamdev/material-web-mcp/validator"
)

func Test_FormatSearchResults_Empty(t *testing.T) {
	if got := FormatSearchResults(nil); got != "No matches found." {
		t.Errorf("unexpected output: %s", got)
	}
}

func Test_FormatSearchResults_GroupsByDocument(t *testing.T) {
	results := []docs.SearchResult{
		{
			RelativePath: "components/button.md",
			Matches: []docs.LineMatch{
				{Line: 3, Text: "the button"},
				{Line: 9, Text: "another button"},
			},
		},
		{
			RelativePath: "quick-start.md",
			Matches:      []docs.LineMatch{{Line: 1, Text: "button install"}},
		},
	}

	output := FormatSearchResults(results)
	if !strings.Contains(output, "Found 3 matches in 2 documents") {
		t.Errorf("expected the totals header, got: %s", output)
	}
	if !strings.Contains(output, "── components/button.md ──") {
		t.Errorf("expected a per-document header, got: %s", output)
	}
	if !strings.Contains(output, "  9: another button") {
		t.Errorf("expected numbered lines, got: %s", output)
	}
}

func Test_FormatValidationReport(t *testing.T) {
	report := &validator.Report{
		Valid:    false,
		Errors:   []string{"Unknown component: md-ghost"},
		Warnings: []string{"Unknown attribute 'x' for md-filled-button"},
	}

	output := FormatValidationReport(report)
	if !strings.Contains(output, "Invalid") {
		t.Errorf("expected invalid verdict, got: %s", output)
	}
	if !strings.Contains(output, "md-ghost") || !strings.Contains(output, "'x'") {
		t.Errorf("expected errors and warnings listed, got: %s", output)
	}

	clean := FormatValidationReport(&validator.Report{Valid: true})
	if !strings.Contains(clean, "Valid") || strings.Contains(clean, "Errors") {
		t.Errorf("unexpected clean report output: %s", clean)
	}
}

func Test_FormatHealthReport(t *testing.T) {
	report := docs.HealthReport{
		Status:          docs.StatusDegraded,
		Uptime:          90 * time.Second,
		DocsAccessible:  false,
		DocsCount:       0,
		ComponentsCount: 0,
		Errors:          []string{"document scan failed: boom"},
	}

	output := FormatHealthReport(report)
	if !strings.Contains(output, "Status: degraded") {
		t.Errorf("expected status line, got: %s", output)
	}
	if !strings.Contains(output, "Uptime: 1m30s") {
		t.Errorf("expected formatted uptime, got: %s", output)
	}
	if !strings.Contains(output, "boom") {
		t.Errorf("expected the error detail, got: %s", output)
	}
}

func Test_FormatComponents(t *testing.T) {
	output := FormatComponents([]string{"button", "checkbox"})
	if !strings.Contains(output, "Found 2 components") {
		t.Errorf("expected the count header, got: %s", output)
	}
	if got := FormatComponents(nil); got != "No components found." {
		t.Errorf("unexpected empty output: %s", got)
	}
}
