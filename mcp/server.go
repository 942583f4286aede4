// Package mcp exposes a drawguide.GuideService as Model Context Protocol
// tools using github.com/modelcontextprotocol/go-sdk.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fwojciec/drawguide"
	"github.com/fwojciec/drawguide/tool"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ServerName is the implementation name announced to clients.
const ServerName = "drawing-guides"

// Server registers the drawguide tools on an MCP server.
type Server struct {
	server  *mcp.Server
	service drawguide.GuideService
}

// NewServer creates a Server exposing service as the search, get_guide
// and list_categories tools.
func NewServer(service drawguide.GuideService, version string) *Server {
	s := &Server{
		server:  mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, nil),
		service: service,
	}
	s.server.AddTool(searchTool, s.handle(drawguide.OpSearch, s.search))
	s.server.AddTool(getGuideTool, s.handle(drawguide.OpGetGuide, s.getGuide))
	s.server.AddTool(listCategoriesTool, s.handle(drawguide.OpListCategories, s.listCategories))
	return s
}

// Run serves the tools over stdin/stdout until ctx is done or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves the tools over an arbitrary transport.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}

// Handler returns an http.Handler serving the tools over streamable HTTP.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// operation runs one tool call on decoded arguments and returns the
// document to send back.
type operation func(ctx context.Context, args json.RawMessage) (any, error)

// handle adapts an operation to a tool handler. Errors and panics become
// error results so the session stays usable.
func (s *Server) handle(op string, fn operation) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = errorResult(op, drawguide.Errorf(drawguide.EINTERNAL, "%v", r))
				err = nil
			}
		}()

		var args json.RawMessage
		if req != nil && req.Params != nil {
			args = req.Params.Arguments
		}

		doc, err := fn(ctx, args)
		if err != nil {
			return errorResult(op, err), nil
		}
		return documentResult(doc)
	}
}

func (s *Server) search(ctx context.Context, args json.RawMessage) (any, error) {
	var query drawguide.SearchQuery
	if err := decodeArgs(args, &query); err != nil {
		return nil, err
	}
	return s.service.Search(ctx, query)
}

// guideDocument is the get_guide result shape.
type guideDocument struct {
	Metadata guideMetadata `json:"metadata"`
	Content  string        `json:"content"`
}

type guideMetadata struct {
	Title         string `json:"title"`
	Source        string `json:"source"`
	URL           string `json:"url"`
	ContentLength int    `json:"contentLength"`
	ContentHash   string `json:"contentHash"`
}

func (s *Server) getGuide(ctx context.Context, args json.RawMessage) (any, error) {
	var req drawguide.GuideRequest
	if err := decodeArgs(args, &req); err != nil {
		return nil, err
	}
	guide, err := s.service.GetGuide(ctx, req)
	if err != nil {
		return nil, err
	}
	return &guideDocument{
		Metadata: guideMetadata{
			Title:         guide.Title,
			Source:        guide.Source,
			URL:           guide.URL,
			ContentLength: guide.ContentLength,
			ContentHash:   guide.ContentHash,
		},
		Content: guide.Content,
	}, nil
}

func (s *Server) listCategories(ctx context.Context, _ json.RawMessage) (any, error) {
	return s.service.ListCategories(ctx)
}

// decodeArgs unmarshals tool arguments into v. Absent arguments leave v
// at its zero value.
func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 || string(args) == "null" {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return drawguide.Errorf(drawguide.EINVALID, "invalid arguments: %v", err)
	}
	return nil
}

// documentResult returns doc as structured content and as an indented
// JSON text block for clients that only read text.
func documentResult(doc any) (*mcp.CallToolResult, error) {
	text, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{&mcp.TextContent{Text: string(text)}},
		StructuredContent: doc,
	}, nil
}

func errorResult(op string, err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: tool.Report(op, err)}},
		IsError: true,
	}
}
