// ABOUTME: Tests for provider selection, presets, and card printing
// ABOUTME: Covers the helpers every command builds its pipeline from

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/config"
	"github.com/harper/headlines/internal/newsapi"
	"github.com/harper/headlines/internal/rss"
)

func TestNewSearcher(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "")

	tests := []struct {
		name    string
		cfg     *config.Config
		wantErr bool
		check   func(t *testing.T, s interface{})
	}{
		{
			name: "newsapi by default",
			cfg:  &config.Config{APIKey: "k"},
			check: func(t *testing.T, s interface{}) {
				if _, ok := s.(*newsapi.Client); !ok {
					t.Errorf("expected *newsapi.Client, got %T", s)
				}
			},
		},
		{
			name: "rss needs no key",
			cfg:  &config.Config{Provider: config.ProviderRSS},
			check: func(t *testing.T, s interface{}) {
				if _, ok := s.(*rss.Provider); !ok {
					t.Errorf("expected *rss.Provider, got %T", s)
				}
			},
		},
		{name: "missing key", cfg: &config.Config{}, wantErr: true},
		{name: "unknown provider", cfg: &config.Config{APIKey: "k", Provider: "gopher"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := newSearcher(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, s)
		})
	}
}

func TestNewSearcher_EnvKey(t *testing.T) {
	t.Setenv(config.APIKeyEnv, "from-env")

	if _, err := newSearcher(&config.Config{}); err != nil {
		t.Errorf("expected env key to satisfy validation: %v", err)
	}
}

func TestNavPresets(t *testing.T) {
	items := navPresets(&config.Config{})
	if len(items) != len(config.DefaultNav()) {
		t.Fatalf("expected default presets, got %d", len(items))
	}
	if items[0].Label != "Today News" || items[0].Query != "india" || items[0].Active {
		t.Errorf("unexpected first preset %+v", items[0])
	}

	items = navPresets(&config.Config{Nav: []config.NavItem{{Query: "golf"}, {Label: "Empty"}}})
	if len(items) != 1 || items[0].Label != "golf" {
		t.Errorf("expected blank presets dropped and label defaulted, got %+v", items)
	}
}

func TestPrintCards(t *testing.T) {
	color.NoColor = true

	cards := []*card.Card{
		{Title: "First", Source: "Wire • Mar 5, 2024, 9:07 PM", Description: "Short", URL: "https://example.com/1"},
		{Title: "Second", Source: "Unknown source • ", Description: strings.Repeat("long ", 40), URL: "https://example.com/2"},
	}

	var buf bytes.Buffer
	printCards(&buf, cards, 40)
	out := buf.String()

	for _, want := range []string{
		" 1. First\n",
		"    Wire • Mar 5, 2024, 9:07 PM\n",
		"    https://example.com/1\n",
		" 2. Second\n",
		"    Unknown source • \n",
		strings.Repeat("─", config.SeparatorWidth),
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "First") > strings.Index(out, "Second") {
		t.Error("expected cards in rendered order")
	}
	if !strings.Contains(out, "…") {
		t.Error("expected long description truncated")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{in: "hello", width: 10, want: "hello"},
		{in: "hello world", width: 6, want: "hello…"},
		{in: "日本語テキスト", width: 7, want: "日本語…"},
		{in: "anything", width: 0, want: "anything"},
	}

	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
