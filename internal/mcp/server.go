// ABOUTME: MCP server implementation for headlines
// ABOUTME: Exposes news search tools, the topic presets resource, and a briefing prompt to AI agents

package mcp

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/feed"
)

// Options configures a Server.
type Options struct {
	Searcher  feed.Searcher
	Renderer  *card.Renderer
	Nav       []feed.NavItem
	SeedTopic string
	Version   string
	Logger    *log.Logger
}

// Server wraps the MCP server with the news search pipeline
type Server struct {
	mcpServer *server.MCPServer
	opts      Options
}

// NewServer creates a new MCP server instance
func NewServer(opts Options) *Server {
	if opts.Version == "" {
		opts.Version = "dev"
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Renderer == nil {
		opts.Renderer = card.NewRenderer(nil, nil)
	}

	s := &Server{opts: opts}
	s.mcpServer = server.NewMCPServer(
		"headlines",
		opts.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
		server.WithPromptCapabilities(true),
	)

	s.registerTools()
	s.registerResources()
	s.registerPrompts()

	return s
}

// ServeStdio starts the MCP server on stdio
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// session builds a controller with its own status line and board, so
// concurrent tool calls never share rendered cards.
func (s *Server) session() (*feed.Controller, *feed.Board) {
	return feed.NewSession(feed.Options{
		Searcher:  s.opts.Searcher,
		Renderer:  s.opts.Renderer,
		SeedTopic: s.opts.SeedTopic,
		Logger:    s.opts.Logger,
	}, s.opts.Nav)
}
