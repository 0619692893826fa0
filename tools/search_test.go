package tools

import (
	"context"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func Test_SearchHandler_BlankKeyword(t *testing.T) {
	h := &SearchHandler{Store: newTestStore(t, nil), Logger: discardLogger()}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Keyword: "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError {
		t.Fatal("a blank keyword is a no-op, not an error")
	}
	text := result.Content[0].(*mcp.TextContent).Text
	if text != "No matches found." {
		t.Errorf("expected empty result text, got: %s", text)
	}
}

func Test_SearchHandler_FormatsMatches(t *testing.T) {
	h := &SearchHandler{
		Store: newTestStore(t, map[string]string{
			"components/button.md": "# Button\n\nUse the button component.\n",
		}),
		Logger: discardLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Keyword: "button"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := result.Content[0].(*mcp.TextContent).Text
	if !strings.Contains(text, "components/button.md") {
		t.Errorf("expected the document path in the output, got: %s", text)
	}
	if !strings.Contains(text, "1: # Button") {
		t.Errorf("expected a numbered match line, got: %s", text)
	}
}

func Test_SearchHandler_InvalidGlob(t *testing.T) {
	h := &SearchHandler{
		Store:  newTestStore(t, map[string]string{"a.md": "keyword"}),
		Logger: discardLogger(),
	}

	result, _, err := h.Handle(context.Background(), nil, SearchArgs{Keyword: "keyword", PathGlob: "[invalid"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Fatal("expected IsError=true for an invalid glob")
	}
}
