// ABOUTME: MCP prompt definitions and handlers
// ABOUTME: Provides a news briefing workflow built on the search tools

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(
		mcp.Prompt{
			Name:        "news-briefing",
			Description: "Summarize the latest coverage of a topic, or of the home topic when none is given",
			Arguments: []mcp.PromptArgument{
				{
					Name:        "topic",
					Description: "Topic to brief on (defaults to the seed topic)",
					Required:    false,
				},
			},
		},
		s.handleNewsBriefing,
	)
}

func (s *Server) handleNewsBriefing(_ context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	topic := ""
	if req.Params.Arguments != nil {
		topic = strings.TrimSpace(req.Params.Arguments["topic"])
	}

	step := "Call `top_headlines` to load the home topic."
	subject := "today's home topic"
	if topic != "" {
		step = fmt.Sprintf("Call `search_news` with topic %q. If it matches a preset in headlines://topics, `browse_topic` gives the same result with the tab marked.", topic)
		subject = topic
	}

	template := fmt.Sprintf(`# News Briefing: %s

## Step 1: Load articles
%s

## Step 2: Read the cards
Each card has a title, a source line ("Source • date"), a description and a url.
Cards are ordered newest first. Untitled or unlinked articles are already dropped.

## Step 3: Summarize
- Group the cards into 3-5 storylines
- Cite each storyline with its card titles and urls
- Note when several sources cover the same event

If the tool returns an error, report the status text verbatim instead of guessing.
`, subject, step)

	return &mcp.GetPromptResult{
		Description: "News briefing workflow",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.TextContent{
					Type: "text",
					Text: template,
				},
			},
		},
	}, nil
}
