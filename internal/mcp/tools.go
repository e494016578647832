// ABOUTME: MCP tool definitions and handlers for news search
// ABOUTME: Runs the controller cycle per call and returns rendered cards as JSON

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/feed"
)

type SearchNewsInput struct {
	Topic string `json:"topic"`
}

type BrowseTopicInput struct {
	Topic string `json:"topic"`
}

// SearchOutput is the JSON body of every successful tool call.
type SearchOutput struct {
	Query     string       `json:"query"`
	ActiveTab string       `json:"active_tab,omitempty"`
	Status    string       `json:"status,omitempty"`
	Count     int          `json:"count"`
	Cards     []*card.Card `json:"cards"`
}

func (s *Server) registerTools() {
	s.registerSearchNewsTool()
	s.registerBrowseTopicTool()
	s.registerTopHeadlinesTool()
}

func (s *Server) registerSearchNewsTool() {
	tool := mcp.Tool{
		Name:        "search_news",
		Description: "Search recent English-language news articles for a keyword, newest first. Returns up to 20 cards with title, url, image, description, and a source line of the form 'Source • date'. An empty result carries the status 'No results found. Try different keywords.'",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": map[string]interface{}{
					"type":        "string",
					"description": "Keyword or phrase to search for. Example: 'electric vehicles'",
				},
			},
			Required: []string{"topic"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleSearchNews)
}

func (s *Server) registerBrowseTopicTool() {
	tool := mcp.Tool{
		Name:        "browse_topic",
		Description: "Load one of the preset navigation topics (see headlines://topics) by label or query, exactly as selecting its tab would. Returns the same card list as search_news.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"topic": map[string]interface{}{
					"type":        "string",
					"description": "Preset label or query, case-insensitive. Example: 'Technology'",
				},
			},
			Required: []string{"topic"},
		},
	}
	s.mcpServer.AddTool(tool, s.handleBrowseTopic)
}

func (s *Server) registerTopHeadlinesTool() {
	tool := mcp.Tool{
		Name:        "top_headlines",
		Description: "Load the home view: the configured seed topic with its preset tab marked active.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
	s.mcpServer.AddTool(tool, s.handleTopHeadlines)
}

func (s *Server) handleSearchNews(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input SearchNewsInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	ctrl, board := s.session()
	out := ctrl.Submit(ctx, input.Topic)
	return s.result(ctrl, board, out)
}

func (s *Server) handleBrowseTopic(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var input BrowseTopicInput
	if err := req.BindArguments(&input); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	ctrl, board := s.session()
	item := findTab(ctrl.Nav(), input.Topic)
	if item == nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown topic %q, see headlines://topics", input.Topic)), nil
	}

	out := ctrl.ActivateTab(ctx, item)
	return s.result(ctrl, board, out)
}

func (s *Server) handleTopHeadlines(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ctrl, board := s.session()
	out := ctrl.Home(ctx)
	return s.result(ctrl, board, out)
}

// result turns a finished cycle into a tool result. Failures and blank
// input surface the status text as an error result.
func (s *Server) result(ctrl *feed.Controller, board *feed.Board, out feed.Outcome) (*mcp.CallToolResult, error) {
	msg := ctrl.Status().Message()
	if out.Phase == feed.Failed || out.Phase == feed.Idle {
		return mcp.NewToolResultError(msg.Text), nil
	}

	cards := board.Cards()
	output := SearchOutput{
		Query:  ctrl.State().LastQuery,
		Status: msg.Text,
		Count:  len(cards),
		Cards:  cards,
	}
	if active := ctrl.State().ActiveNav; active != nil {
		output.ActiveTab = active.Label
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal output: %w", err)
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}

// findTab matches a preset by label first, then by query
func findTab(nav *feed.NavList, topic string) *feed.NavItem {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil
	}
	for _, it := range nav.Items() {
		if strings.EqualFold(it.Label, topic) {
			return it
		}
	}
	return nav.Match(topic)
}
