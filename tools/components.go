package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// ComponentsArgs defines the input parameters for the material_list_components tool (none required).
type ComponentsArgs struct{}

// ComponentsHandler holds the dependencies for the component listing tool.
type ComponentsHandler struct {
	Store  *docs.Store
	Logger *slog.Logger
}

// Handle processes a material_list_components request.
func (h *ComponentsHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ComponentsArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	names, err := h.Store.ListComponents(ctx)
	if err != nil {
		h.Logger.Error("material_list_components failed", "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Listing error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("material_list_components", "components", len(names), "elapsed", time.Since(start))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatComponents(names)}},
	}, nil, nil
}
