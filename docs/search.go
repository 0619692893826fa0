package docs

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// LineMatch is a single matching line within a document.
type LineMatch struct {
	Line int    // 1-based line number
	Text string // line text with surrounding whitespace trimmed
}

// SearchResult holds all matches within one document.
type SearchResult struct {
	RelativePath string
	Matches      []LineMatch
}

// SearchOptions configures a documentation search.
type SearchOptions struct {
	Keyword    string
	PathGlob   string // optional doublestar filter on relative paths
	MaxResults int    // maximum number of documents returned, 0 = unlimited
}

// Search scans every indexed document line by line for a literal,
// case-insensitive occurrence of the keyword. A blank keyword is a no-op and
// returns an empty result without touching the filesystem. Documents that
// fail to read are logged and skipped; a failure of the index scan itself
// propagates.
func (s *Store) Search(ctx context.Context, options SearchOptions) ([]SearchResult, error) {
	keyword := strings.TrimSpace(options.Keyword)
	if keyword == "" {
		return []SearchResult{}, nil
	}

	// QuoteMeta keeps the keyword a literal substring: regex metacharacters
	// in caller input never become pattern syntax.
	matcher := regexp.MustCompile("(?i)" + regexp.QuoteMeta(keyword))

	entries, err := s.Scan(ctx)
	if err != nil {
		return nil, err
	}

	results := []SearchResult{}
	for _, doc := range entries {
		if options.PathGlob != "" {
			matched, err := doublestar.Match(options.PathGlob, doc.RelativePath)
			if err != nil {
				return nil, fmt.Errorf("invalid path glob %q: %w", options.PathGlob, err)
			}
			if !matched {
				continue
			}
		}

		content, err := s.readFile(ctx, doc.Path)
		if err != nil {
			s.logger.Warn("skipping unreadable document", "path", doc.RelativePath, "error", err)
			continue
		}

		var matches []LineMatch
		for lineIdx, line := range strings.Split(content, "\n") {
			if !matcher.MatchString(line) {
				continue
			}
			matches = append(matches, LineMatch{
				Line: lineIdx + 1,
				Text: strings.TrimSpace(line),
			})
		}
		if len(matches) == 0 {
			continue
		}

		results = append(results, SearchResult{
			RelativePath: doc.RelativePath,
			Matches:      matches,
		})
		if options.MaxResults > 0 && len(results) >= options.MaxResults {
			break
		}
	}
	return results, nil
}
