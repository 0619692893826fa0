package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
	"github.com/shantoislamdev/material-web-mcp/tools"
)

// Handlers bundles the tool handlers registered on the server.
type Handlers struct {
	Components *tools.ComponentsHandler
	Search     *tools.SearchHandler
	Doc        *tools.DocHandler
	Theming    *tools.ThemingHandler
	Install    *tools.InstallHandler
	Query      *tools.QueryHandler
	Validate   *tools.ValidateHandler
	Health     *tools.HealthHandler
	Refresh    *tools.RefreshHandler
}

// Setup creates and configures the MCP server with all tool and resource
// registrations.
func Setup(store *docs.Store, handlers Handlers) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "material-web-mcp",
			Version: "1.0.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server exposes the Material Web component documentation (components, theming, installation) and validates HTML that uses md-* custom elements.

Typical flow:
- material_list_components to discover component names
- material_get_component_doc for a component's full documentation, including its API table
- material_search_docs for exact text lookups, material_query_docs for relevance-ranked lookups
- material_validate_website to check md-* tags and attributes in HTML against the documented APIs
- every Markdown document is also addressable as a material-docs:// resource`,
		},
	)

	// Register material_list_components tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "material_list_components",
		Description: "List all documented Material Web component names.",
	}, handlers.Components.Handle)

	// Register material_search_docs tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "material_search_docs",
		Description: `Search the documentation for a literal keyword, case-insensitively. Returns matching lines with 1-based line numbers, grouped by document.

Optional filtering:
  - pathGlob: restrict the search to documents matching a glob (e.g. "components/**" or "theming/*.md").`,
	}, handlers.Search.Handle)

	// Register material_get_component_doc tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "material_get_component_doc",
		Description: "Get the full Markdown documentation for one component by name (e.g. \"button\").",
	}, handlers.Doc.Handle)

	// Register material_get_theming_docs tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "material_get_theming_docs",
		Description: "Get the combined theming guides (overview, color, shape, typography) as one document.",
	}, handlers.Theming.Handle)

	// Register material_get_installation_docs tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "material_get_installation_docs",
		Description: "Get the quick-start installation guide.",
	}, handlers.Install.Handle)

	// Register material_query_docs tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "material_query_docs",
		Description: "Relevance-ranked full-text search across all documentation. Use material_search_docs instead when you need exact literal matches with line numbers.",
	}, handlers.Query.Handle)

	// Register material_validate_website tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "material_validate_website",
		Description: `Validate HTML against the documented Material Web components. Reports unknown md-* components as errors and undocumented attributes on known components as warnings. Elements outside the md- namespace are ignored.`,
	}, handlers.Validate.Handle)

	// Register material_health_check tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "material_health_check",
		Description: "Report documentation index health: status, uptime, document and component counts.",
	}, handlers.Health.Handle)

	// Register material_refresh_index tool
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "material_refresh_index",
		Description: "Invalidate the documentation caches and rebuild the ranked index. Use after the documentation files change on disk.",
	}, handlers.Refresh.Handle)

	registerResources(mcpServer, store)

	return mcpServer
}
