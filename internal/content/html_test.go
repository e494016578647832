// ABOUTME: Tests for HTML detection and HTML-to-text reduction
// ABOUTME: Covers provider snippets with links, entities, and inline formatting

package content

import "testing"

func TestIsHTML(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{input: "Plain summary", expected: false},
		{input: "Rates < 5% and > 2%", expected: false},
		{input: `<a href="https://example.com">Story</a>`, expected: true},
		{input: `<font color="#6f6f6f">Wire</font>`, expected: true},
		{input: "Story&nbsp;Wire", expected: true},
		{input: "<!DOCTYPE html><html></html>", expected: true},
	}

	for _, tt := range tests {
		if got := IsHTML(tt.input); got != tt.expected {
			t.Errorf("IsHTML(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestFromHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "news aggregator snippet",
			input:    `<a href="https://example.com/s" target="_blank">Story</a>&nbsp;&nbsp;<font color="#6f6f6f">Wire</font>`,
			expected: "Story Wire",
		},
		{
			name:     "paragraphs and emphasis",
			input:    "<p>Markets <strong>rally</strong> on <em>rate</em> news.</p><p>Second line.</p>",
			expected: "Markets rally on rate news. Second line.",
		},
		{
			name:     "entities decoded",
			input:    "Tom &amp; Jerry &#8211; reunited",
			expected: "Tom & Jerry – reunited",
		},
		{
			name:     "image keeps alt text",
			input:    `<p><img src="https://example.com/a.jpg" alt="Flooded street"> Rain</p>`,
			expected: "Flooded street Rain",
		},
		{
			name:     "plain text unchanged",
			input:    "Just text, no markup",
			expected: "Just text, no markup",
		},
		{
			name:     "empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHTML(tt.input); got != tt.expected {
				t.Errorf("FromHTML(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
