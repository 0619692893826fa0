package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// DocArgs defines the input parameters for the material_get_component_doc tool.
type DocArgs struct {
	Name string `json:"name" jsonschema:"Component name, e.g. button or checkbox (see material_list_components)"`
}

// DocHandler holds the dependencies for the component documentation tool.
type DocHandler struct {
	Store  *docs.Store
	Logger *slog.Logger
}

// Handle processes a material_get_component_doc request. A missing component
// yields a sentinel message, not an error result.
func (h *DocHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args DocArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Name == "" {
		h.Logger.Warn("material_get_component_doc called with empty name")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: name parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	content, ok := h.Store.ComponentDoc(ctx, args.Name)
	if !ok {
		h.Logger.Info("material_get_component_doc not found", "name", args.Name)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Component not found"}},
		}, nil, nil
	}

	h.Logger.Info("material_get_component_doc", "name", args.Name, "elapsed", time.Since(start))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: content}},
	}, nil, nil
}
