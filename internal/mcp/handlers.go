package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/patternbook/internal/patterns"
)

// handleListPatterns lists the snippets in page order.
func (s *Server) handleListPatterns(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snippets, err := patterns.List(s.dir, s.opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing patterns failed: %v", err)), nil
	}

	if filter := strings.ToLower(request.GetString("filter", "")); filter != "" {
		kept := snippets[:0]
		for _, sn := range snippets {
			if strings.Contains(strings.ToLower(sn.Title()), filter) {
				kept = append(kept, sn)
			}
		}
		snippets = kept
	}

	if len(snippets) == 0 {
		return mcp.NewToolResultText("No patterns found."), nil
	}
	return mcp.NewToolResultText(formatPatterns(snippets)), nil
}

// handleGetPatternSource returns a snippet file exactly as it is on disk.
func (s *Server) handleGetPatternSource(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sn, errResult := s.findPattern(request)
	if errResult != nil {
		return errResult, nil
	}

	raw, err := patterns.ReadRawSource(sn)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to read source: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// handleGetPatternMarkup executes a snippet and returns its output.
func (s *Server) handleGetPatternMarkup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sn, errResult := s.findPattern(request)
	if errResult != nil {
		return errResult, nil
	}

	var sb strings.Builder
	if err := s.renderer.Include(&sb, sn); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering %s failed: %v", sn.Name, err)), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// handleGetMenu renders the pattern menu.
func (s *Server) handleGetMenu(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	snippets, err := patterns.List(s.dir, s.opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing patterns failed: %v", err)), nil
	}

	var sb strings.Builder
	if err := s.renderer.RenderMenu(&sb, snippets); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("rendering menu failed: %v", err)), nil
	}
	return mcp.NewToolResultText(sb.String()), nil
}

// findPattern resolves the required anchor argument. A non-nil result is
// the tool error to return.
func (s *Server) findPattern(request mcp.CallToolRequest) (patterns.Snippet, *mcp.CallToolResult) {
	anchor, err := request.RequireString("anchor")
	if err != nil {
		return patterns.Snippet{}, mcp.NewToolResultError("missing required parameter: anchor")
	}

	sn, err := patterns.Find(s.dir, s.opts, anchor)
	if errors.Is(err, patterns.ErrNotFound) {
		return patterns.Snippet{}, mcp.NewToolResultError(fmt.Sprintf(
			"No pattern with anchor %q. Use list_patterns to see the available anchors.",
			anchor,
		))
	}
	if err != nil {
		return patterns.Snippet{}, mcp.NewToolResultError(fmt.Sprintf("finding pattern failed: %v", err))
	}
	return sn, nil
}

// formatPatterns renders the listing as plain text for agent consumption.
func formatPatterns(snippets []patterns.Snippet) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d pattern(s):\n\n", len(snippets)))
	for i, sn := range snippets {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, sn.Title()))
		sb.WriteString(fmt.Sprintf("   File: %s\n", sn.Name))
		sb.WriteString(fmt.Sprintf("   Anchor: #%s\n", sn.Anchor))
	}
	return sb.String()
}
