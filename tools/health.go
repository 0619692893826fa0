package tools

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// HealthArgs defines the input parameters for the material_health_check tool (none required).
type HealthArgs struct{}

// HealthHandler holds the dependencies for the health check tool.
type HealthHandler struct {
	Store  *docs.Store
	Logger *slog.Logger
}

// Handle processes a material_health_check request. The check never fails;
// underlying failures show up as a degraded report.
func (h *HealthHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args HealthArgs) (*mcp.CallToolResult, any, error) {
	report := h.Store.Check(ctx)

	h.Logger.Info("material_health_check",
		"status", report.Status,
		"docs", report.DocsCount,
		"components", report.ComponentsCount,
		"errors", len(report.Errors),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatHealthReport(report)}},
	}, report, nil
}
