package docs

import (
	"context"
	"fmt"
	"path"
	"strings"
)

const componentsDir = "components"

// ListComponents derives the component catalog from the cached index: every
// Markdown file directly inside the components/ subdirectory contributes its
// filename (without extension) as a component name, in index order. Files in
// deeper subdirectories are not components.
func (s *Store) ListComponents(ctx context.Context) ([]string, error) {
	entries, err := s.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing components: %w", err)
	}

	var names []string
	for _, doc := range entries {
		dir, file := path.Split(doc.RelativePath)
		if path.Clean(dir) != componentsDir {
			continue
		}
		names = append(names, strings.TrimSuffix(file, markdownExt))
	}
	return names, nil
}
