// ABOUTME: MCP resource definitions for headlines
// ABOUTME: Publishes the navigation presets so agents know which topics browse_topic accepts

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

const topicsURI = "headlines://topics"

// ResourceData is the standard response format for all resources.
type ResourceData struct {
	Metadata ResourceMetadata  `json:"metadata"`
	Data     interface{}       `json:"data"`
	Links    map[string]string `json:"links,omitempty"`
}

// ResourceMetadata contains metadata about the resource response.
type ResourceMetadata struct {
	Timestamp   time.Time `json:"timestamp"`
	Count       int       `json:"count"`
	ResourceURI string    `json:"resource_uri"`
}

type topicOutput struct {
	Label string `json:"label"`
	Query string `json:"query"`
	Seed  bool   `json:"seed"`
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(
		mcp.Resource{
			URI:         topicsURI,
			Name:        "Topic Presets",
			Description: "Navigation presets (label and query) accepted by browse_topic, with the seed topic flagged",
			MIMEType:    "application/json",
		},
		s.handleTopics,
	)
}

func (s *Server) handleTopics(_ context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	ctrl, _ := s.session()
	seed := ctrl.Nav().Match(ctrl.SeedTopic())

	items := ctrl.Nav().Items()
	topics := make([]topicOutput, 0, len(items))
	for _, it := range items {
		topics = append(topics, topicOutput{
			Label: it.Label,
			Query: it.Query,
			Seed:  it == seed,
		})
	}

	jsonBytes, err := json.MarshalIndent(ResourceData{
		Metadata: ResourceMetadata{
			Timestamp:   time.Now(),
			Count:       len(topics),
			ResourceURI: topicsURI,
		},
		Data: topics,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource data: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonBytes),
		},
	}, nil
}
