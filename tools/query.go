package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// QueryArgs defines the input parameters for the material_query_docs tool.
type QueryArgs struct {
	Query      string `json:"query" jsonschema:"Free-text query ranked by relevance across all documentation"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of documents to return (default 10)"`
}

// QueryHandler holds the dependencies for the ranked query tool.
type QueryHandler struct {
	RankedIndex *docs.RankedIndex
	Logger      *slog.Logger
}

// Handle processes a material_query_docs request.
func (h *QueryHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args QueryArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Query == "" {
		h.Logger.Warn("material_query_docs called with empty query")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: query parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	hits, err := h.RankedIndex.Query(args.Query, args.MaxResults)
	if err != nil {
		h.Logger.Error("material_query_docs failed", "query", args.Query, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Query error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("material_query_docs",
		"query", args.Query,
		"hits", len(hits),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatRankedHits(hits)}},
	}, nil, nil
}
