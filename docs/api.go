package docs

import (
	"context"
	"strings"
)

// APIDescriptor holds the attribute names extracted from a component
// document's API table.
type APIDescriptor struct {
	Properties []string
}

const apiHeading = "## API"

// apiTableHeader is the exact column set identifying an API table.
var apiTableHeader = []string{"Property", "Attribute", "Type", "Default", "Description"}

// ExtractAPI parses a component's API section into a descriptor. It returns
// nil when the name is blank, the document is missing, or the document has no
// "## API" heading. Successful extractions are cached per component; the
// cache is dropped by Refresh.
func (s *Store) ExtractAPI(ctx context.Context, name string) *APIDescriptor {
	if strings.TrimSpace(name) == "" {
		return nil
	}

	s.apiMu.Lock()
	cached, ok := s.api[name]
	s.apiMu.Unlock()
	if ok {
		return cached
	}

	content, found := s.ComponentDoc(ctx, name)
	if !found {
		return nil
	}

	descriptor := parseAPISection(content)
	if descriptor == nil {
		return nil
	}

	s.apiMu.Lock()
	s.api[name] = descriptor
	s.apiMu.Unlock()
	return descriptor
}

// parseAPISection locates the "## API" section and collects the Attribute
// column of every qualifying table row. The section runs until the next
// second-level heading, an HTML comment marker, or end of document. Multiple
// qualifying tables all feed one flat list. A present section with no data
// rows yields an empty (non-nil) descriptor.
func parseAPISection(content string) *APIDescriptor {
	lines := strings.Split(content, "\n")

	start := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == apiHeading {
			start = i + 1
			break
		}
	}
	if start == -1 {
		return nil
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if strings.HasPrefix(trimmed, "## ") || strings.HasPrefix(trimmed, "<!--") {
			end = i
			break
		}
	}

	descriptor := &APIDescriptor{Properties: []string{}}
	inTable := false
	for i := start; i < end; i++ {
		trimmed := strings.TrimSpace(lines[i])
		if !strings.HasPrefix(trimmed, "|") {
			inTable = false
			continue
		}

		cells := splitTableRow(trimmed)
		if isAPITableHeader(cells) {
			// Skip the dashed separator row under the header.
			if i+1 < end && isSeparatorRow(strings.TrimSpace(lines[i+1])) {
				i++
			}
			inTable = true
			continue
		}
		if !inTable || isSeparatorRow(trimmed) {
			continue
		}
		if len(cells) < 2 {
			continue
		}
		attribute := cells[1]
		if attribute == "" {
			continue
		}
		descriptor.Properties = append(descriptor.Properties, attribute)
	}
	return descriptor
}

// splitTableRow splits a pipe-delimited row into trimmed cells, dropping the
// leading and trailing pipe.
func splitTableRow(line string) []string {
	trimmed := strings.TrimPrefix(line, "|")
	trimmed = strings.TrimSuffix(trimmed, "|")
	parts := strings.Split(trimmed, "|")
	cells := make([]string, 0, len(parts))
	for _, part := range parts {
		cells = append(cells, strings.TrimSpace(part))
	}
	return cells
}

func isAPITableHeader(cells []string) bool {
	if len(cells) != len(apiTableHeader) {
		return false
	}
	for i, want := range apiTableHeader {
		if cells[i] != want {
			return false
		}
	}
	return true
}

// isSeparatorRow reports whether a pipe-delimited row contains only dashes,
// colons, and whitespace (the Markdown table header separator).
func isSeparatorRow(line string) bool {
	if !strings.HasPrefix(line, "|") {
		return false
	}
	sawDash := false
	for _, cell := range splitTableRow(line) {
		if strings.Trim(cell, "-: ") != "" {
			return false
		}
		if strings.Contains(cell, "-") {
			sawDash = true
		}
	}
	return sawDash
}
