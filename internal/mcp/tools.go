package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPatternsTool defines the list_patterns MCP tool.
var listPatternsTool = mcp.NewTool("list_patterns",
	mcp.WithDescription("List the markup patterns in the pattern book, in page order, with their titles and anchors."),
	mcp.WithString("filter",
		mcp.Description("Only return patterns whose title contains this text (case-insensitive)"),
	),
)

// getPatternSourceTool defines the get_pattern_source MCP tool.
var getPatternSourceTool = mcp.NewTool("get_pattern_source",
	mcp.WithDescription("Get the raw, unrendered source of a pattern file."),
	mcp.WithString("anchor",
		mcp.Required(),
		mcp.Description("Anchor of the pattern, as returned by list_patterns"),
	),
)

// getPatternMarkupTool defines the get_pattern_markup MCP tool.
var getPatternMarkupTool = mcp.NewTool("get_pattern_markup",
	mcp.WithDescription("Get the markup a pattern produces when it is rendered into the page."),
	mcp.WithString("anchor",
		mcp.Required(),
		mcp.Description("Anchor of the pattern, as returned by list_patterns"),
	),
)

// getMenuTool defines the get_menu MCP tool.
var getMenuTool = mcp.NewTool("get_menu",
	mcp.WithDescription("Get the HTML table of contents linking to every pattern on the page."),
)
