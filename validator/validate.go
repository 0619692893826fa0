// Package validator checks arbitrary HTML markup against the documented
// Material Web component catalog and each component's extracted API.
package validator

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// tagPrefix is the reserved tag namespace subject to validation. Elements
// outside it are never inspected.
const tagPrefix = "md-"

// Report is the outcome of validating one HTML document. Unknown components
// are errors and make the report invalid; unknown attributes on known
// components are warnings and do not affect validity.
type Report struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validator validates markup against a document store's catalog.
type Validator struct {
	Store  *docs.Store
	Logger *slog.Logger
}

// New creates a validator over the given store.
func New(store *docs.Store, logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Validator{Store: store, Logger: logger}
}

// Validate parses the markup leniently (malformed HTML produces a best-effort
// tree, never an error) and checks every md-* element against the catalog.
// Only a catalog listing failure propagates as an error.
func (v *Validator) Validate(ctx context.Context, html string) (*Report, error) {
	report := &Report{Valid: true, Errors: []string{}, Warnings: []string{}}

	document, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		// The underlying parser auto-corrects broken markup; a hard parse
		// failure leaves nothing to validate.
		v.Logger.Warn("unparseable markup", "error", err)
		return report, nil
	}

	names, err := v.Store.ListComponents(ctx)
	if err != nil {
		return nil, err
	}

	// One case-insensitive alternation over all catalog names, each escaped
	// so names are matched literally. An empty catalog matches nothing.
	var known *regexp.Regexp
	if len(names) > 0 {
		escaped := make([]string, len(names))
		for i, name := range names {
			escaped[i] = regexp.QuoteMeta(name)
		}
		known = regexp.MustCompile("(?i)(" + strings.Join(escaped, "|") + ")")
	}

	document.Find("*").Each(func(_ int, sel *goquery.Selection) {
		node := sel.Get(0)
		tagName := node.Data
		if !strings.HasPrefix(tagName, tagPrefix) {
			return
		}

		stripped := strings.TrimPrefix(tagName, tagPrefix)
		if known == nil || !known.MatchString(stripped) {
			report.Errors = append(report.Errors, "Unknown component: "+tagName)
			return
		}

		// Substring association, first hit in catalog order wins. This is
		// deliberately crude: md-outlined-text-field associates with
		// whichever of "field" or "text-field" the catalog lists first,
		// not the most specific name.
		component := pickComponent(names, stripped)
		if component == "" {
			report.Errors = append(report.Errors, "Unknown component: "+tagName)
			return
		}

		descriptor := v.Store.ExtractAPI(ctx, component)
		if descriptor == nil {
			// No documented API section: attributes are accepted silently.
			return
		}
		for _, attr := range node.Attr {
			if slices.Contains(descriptor.Properties, attr.Key) {
				continue
			}
			report.Warnings = append(report.Warnings,
				"Unknown attribute '"+attr.Key+"' for "+tagName)
		}
	})

	report.Valid = len(report.Errors) == 0
	return report, nil
}

// pickComponent returns the first catalog name occurring as a
// case-insensitive substring of the stripped tag name.
func pickComponent(names []string, stripped string) string {
	lowered := strings.ToLower(stripped)
	for _, name := range names {
		if strings.Contains(lowered, strings.ToLower(name)) {
			return name
		}
	}
	return ""
}
