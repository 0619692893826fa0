package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RefreshArgs defines the input parameters for the material_refresh_index tool (none required).
type RefreshArgs struct{}

// RefreshFunc invalidates the caches and rebuilds the ranked index. It is
// provided by main to avoid circular dependencies.
type RefreshFunc func(ctx context.Context) (docCount int, elapsed string, err error)

// RefreshHandler holds the dependencies for the refresh tool.
type RefreshHandler struct {
	DoRefresh RefreshFunc
	Logger    *slog.Logger
}

// Handle processes a material_refresh_index request.
func (h *RefreshHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args RefreshArgs) (*mcp.CallToolResult, any, error) {
	h.Logger.Info("material_refresh_index started")

	docCount, elapsed, err := h.DoRefresh(ctx)
	if err != nil {
		h.Logger.Error("material_refresh_index failed", "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Refresh error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("material_refresh_index complete", "docs", docCount, "elapsed", elapsed)

	output := fmt.Sprintf("refreshed: %d documents in %s", docCount, elapsed)
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: output}},
	}, nil, nil
}
