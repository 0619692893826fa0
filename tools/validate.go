package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/validator"
)

// ValidateArgs defines the input parameters for the material_validate_website tool.
type ValidateArgs struct {
	HTML string `json:"html" jsonschema:"HTML markup to validate against the documented md-* components"`
}

// ValidateHandler holds the dependencies for the website validation tool.
type ValidateHandler struct {
	Validator *validator.Validator
	Logger    *slog.Logger
}

// Handle processes a material_validate_website request.
func (h *ValidateHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ValidateArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.HTML == "" {
		h.Logger.Warn("material_validate_website called with empty html")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: html parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	report, err := h.Validator.Validate(ctx, args.HTML)
	if err != nil {
		h.Logger.Error("material_validate_website failed", "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Validation error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	h.Logger.Info("material_validate_website",
		"valid", report.Valid,
		"errors", len(report.Errors),
		"warnings", len(report.Warnings),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatValidationReport(report)}},
	}, report, nil
}
