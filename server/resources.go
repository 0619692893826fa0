package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shantoislamdev/material-web-mcp/docs"
)

// uriScheme is the custom URI scheme for documentation resources.
const uriScheme = "material-docs://"

// registerResources registers the resource handlers: a static catalog listing
// and a template addressing every Markdown document by relative path.
func registerResources(mcpServer *mcp.Server, store *docs.Store) {
	mcpServer.AddResource(&mcp.Resource{
		URI:         uriScheme + "components",
		Name:        "components",
		Description: "List of all documented Material Web components",
		MIMEType:    "application/json",
	}, componentsResourceHandler(store))

	mcpServer.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "{+path}",
		Name:        "document",
		Description: "A single Markdown documentation file, addressed by its path relative to the docs root",
		MIMEType:    "text/markdown",
	}, documentResourceHandler(store))
}

// componentsResourceHandler serves the component catalog as JSON.
func componentsResourceHandler(store *docs.Store) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		names, err := store.ListComponents(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing components: %w", err)
		}
		if names == nil {
			names = []string{}
		}

		data, err := json.MarshalIndent(names, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshalling components: %w", err)
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			}},
		}, nil
	}
}

// documentResourceHandler serves one Markdown document by relative path.
// Traversal attempts surface as errors; missing documents map to the
// protocol's resource-not-found error.
func documentResourceHandler(store *docs.Store) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		relativePath := strings.TrimPrefix(req.Params.URI, uriScheme)
		if relativePath == "" || relativePath == req.Params.URI {
			return nil, mcp.ResourceNotFoundError(req.Params.URI)
		}

		content, err := store.ReadDoc(ctx, relativePath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, mcp.ResourceNotFoundError(req.Params.URI)
			}
			return nil, err
		}

		return &mcp.ReadResourceResult{
			Contents: []*mcp.ResourceContents{{
				URI:      req.Params.URI,
				MIMEType: "text/markdown",
				Text:     content,
			}},
		}, nil
	}
}
