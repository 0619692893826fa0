package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// SearchArgs defines the input parameters for the material_search_docs tool.
type SearchArgs struct {
	Keyword    string `json:"keyword" jsonschema:"Literal text to search for (case-insensitive, regex metacharacters are matched literally)"`
	PathGlob   string `json:"pathGlob,omitempty" jsonschema:"Optional glob pattern to restrict searched documents (e.g. components/**)"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of documents to return (default: all)"`
}

// SearchHandler holds the dependencies for the search tool.
type SearchHandler struct {
	Store  *docs.Store
	Logger *slog.Logger
}

// Handle processes a material_search_docs request. A blank keyword is a
// deliberate no-op, not an input error.
func (h *SearchHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args SearchArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	results, err := h.Store.Search(ctx, docs.SearchOptions{
		Keyword:    args.Keyword,
		PathGlob:   args.PathGlob,
		MaxResults: args.MaxResults,
	})
	if err != nil {
		h.Logger.Error("material_search_docs failed", "keyword", args.Keyword, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Search error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("material_search_docs",
		"keyword", args.Keyword,
		"pathGlob", args.PathGlob,
		"files", len(results),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatSearchResults(results)}},
	}, nil, nil
}
