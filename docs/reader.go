package docs

import (
	"context"
	"path"
	"strings"
)

const (
	themingDir    = "theming"
	quickStartDoc = "quick-start.md"
)

// themingFiles is the fixed, ordered list of theming guides that make up the
// aggregated theming documentation.
var themingFiles = []string{"README.md", "color.md", "shape.md", "typography.md"}

// ComponentDoc reads the documentation for a single component. Any failure
// (missing file, permission, timeout) yields ok=false, never an error.
func (s *Store) ComponentDoc(ctx context.Context, name string) (string, bool) {
	if strings.TrimSpace(name) == "" {
		return "", false
	}

	absolutePath, err := s.Resolve(path.Join(componentsDir, name+markdownExt))
	if err != nil {
		s.logger.Warn("rejected component name", "component", name, "error", err)
		return "", false
	}

	content, err := s.readFile(ctx, absolutePath)
	if err != nil {
		s.logger.Debug("component doc not readable", "component", name, "error", err)
		return "", false
	}
	return content, true
}

// ThemingDocs concatenates the theming guides in their fixed order, each
// under a heading naming its source file. Guides that fail to read are
// logged and skipped; if all fail the result is an empty string.
func (s *Store) ThemingDocs(ctx context.Context) string {
	var builder strings.Builder
	for _, name := range themingFiles {
		relativePath := path.Join(themingDir, name)
		content, err := s.ReadDoc(ctx, relativePath)
		if err != nil {
			s.logger.Warn("skipping theming doc", "path", relativePath, "error", err)
			continue
		}
		builder.WriteString("## " + relativePath + "\n\n")
		builder.WriteString(content)
		builder.WriteString("\n\n")
	}
	return builder.String()
}

// InstallationDocs reads the quick-start guide. Any failure yields ok=false.
func (s *Store) InstallationDocs(ctx context.Context) (string, bool) {
	content, err := s.ReadDoc(ctx, quickStartDoc)
	if err != nil {
		s.logger.Debug("installation doc not readable", "error", err)
		return "", false
	}
	return content, true
}
