package mcp

import (
	"github.com/fwojciec/drawguide"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var searchTool = &mcp.Tool{
	Name:        drawguide.OpSearch,
	Description: "Search for drawing tutorials and guides from easydrawingguides.com",
	Annotations: &mcp.ToolAnnotations{Title: "Search Drawing Guides", ReadOnlyHint: true},
	InputSchema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Search query for drawing tutorials (e.g., 'cat', 'anime character', 'flower')",
			},
			"limit": map[string]any{
				"type":        "integer",
				"description": "Maximum number of search results to return (default: 10)",
				"default":     drawguide.DefaultSearchLimit,
				"minimum":     drawguide.MinSearchLimit,
				"maximum":     drawguide.MaxSearchLimit,
			},
			"source": map[string]any{
				"type":        "string",
				"description": "Which site to search (only easy is supported)",
				"enum":        []string{drawguide.SourceEasy},
				"default":     drawguide.SourceEasy,
			},
		},
		"required": []string{"query"},
	},
}

var getGuideTool = &mcp.Tool{
	Name:        drawguide.OpGetGuide,
	Description: "Get detailed content of a specific drawing guide from a URL",
	Annotations: &mcp.ToolAnnotations{Title: "Get Drawing Guide", ReadOnlyHint: true, IdempotentHint: true},
	InputSchema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"url": map[string]any{
				"type":        "string",
				"description": "URL of the drawing guide to retrieve",
			},
		},
		"required": []string{"url"},
	},
}

var listCategoriesTool = &mcp.Tool{
	Name:        drawguide.OpListCategories,
	Description: "List available drawing categories from Easy Drawing Guides",
	Annotations: &mcp.ToolAnnotations{Title: "List Drawing Categories", ReadOnlyHint: true},
	InputSchema: map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	},
}
