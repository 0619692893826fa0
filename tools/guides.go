package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// ThemingArgs defines the input parameters for the material_get_theming_docs tool (none required).
type ThemingArgs struct{}

// ThemingHandler holds the dependencies for the theming documentation tool.
type ThemingHandler struct {
	Store  *docs.Store
	Logger *slog.Logger
}

// Handle processes a material_get_theming_docs request. Guides that fail to
// read are skipped inside the store; an empty result means none were
// readable.
func (h *ThemingHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ThemingArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	content := h.Store.ThemingDocs(ctx)
	if content == "" {
		h.Logger.Warn("material_get_theming_docs found no readable guides")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Documentation not found"}},
		}, nil, nil
	}

	h.Logger.Info("material_get_theming_docs", "bytes", len(content), "elapsed", time.Since(start))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: content}},
	}, nil, nil
}

// InstallArgs defines the input parameters for the material_get_installation_docs tool (none required).
type InstallArgs struct{}

// InstallHandler holds the dependencies for the installation documentation tool.
type InstallHandler struct {
	Store  *docs.Store
	Logger *slog.Logger
}

// Handle processes a material_get_installation_docs request.
func (h *InstallHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args InstallArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	content, ok := h.Store.InstallationDocs(ctx)
	if !ok {
		h.Logger.Info("material_get_installation_docs not found")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Documentation not found"}},
		}, nil, nil
	}

	h.Logger.Info("material_get_installation_docs", "bytes", len(content), "elapsed", time.Since(start))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: content}},
	}, nil, nil
}
