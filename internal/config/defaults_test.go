// ABOUTME: Tests for configuration defaults
// ABOUTME: Verifies constants and stock navigation presets are properly defined

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultHTTPTimeout(t *testing.T) {
	if DefaultHTTPTimeout != 30*time.Second {
		t.Errorf("expected 30s, got %v", DefaultHTTPTimeout)
	}
}

func TestQueryConstants(t *testing.T) {
	if PageSize != 20 {
		t.Errorf("expected page size 20, got %d", PageSize)
	}
	if QueryLanguage != "en" {
		t.Errorf("expected language 'en', got %q", QueryLanguage)
	}
	if QuerySortBy != "publishedAt" {
		t.Errorf("expected sortBy 'publishedAt', got %q", QuerySortBy)
	}
}

func TestDefaultNav_ContainsSeed(t *testing.T) {
	found := false
	for _, item := range DefaultNav() {
		if item.Query == "" {
			t.Errorf("nav item %q has no query", item.Label)
		}
		if strings.EqualFold(item.Query, DefaultSeedTopic) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a nav item matching seed topic %q", DefaultSeedTopic)
	}
}
