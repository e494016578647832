// ABOUTME: Builds the search pipeline shared by every command
// ABOUTME: Selects the provider, the card renderer, nav presets, and loggers from config

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/harper/headlines/internal/browser"
	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/config"
	"github.com/harper/headlines/internal/feed"
	"github.com/harper/headlines/internal/newsapi"
	"github.com/harper/headlines/internal/rss"
	"github.com/harper/headlines/internal/timeutil"
)

// newSearcher returns the configured provider.
func newSearcher(c *config.Config) (feed.Searcher, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: config.DefaultHTTPTimeout}
	switch c.GetProvider() {
	case config.ProviderRSS:
		return rss.NewProvider(c.GetRSSEndpoint(), httpClient), nil
	default:
		return newsapi.NewClient(newsapi.Options{
			Endpoint:   c.GetEndpoint(),
			APIKey:     c.GetAPIKey(),
			HTTPClient: httpClient,
		}), nil
	}
}

func newRenderer(c *config.Config) *card.Renderer {
	return card.NewRenderer(browser.Opener{}, timeutil.LoadZone(c.GetTimeZone()))
}

func navPresets(c *config.Config) []feed.NavItem {
	presets := c.GetNav()
	items := make([]feed.NavItem, 0, len(presets))
	for _, p := range presets {
		items = append(items, feed.NavItem{Label: p.Label, Query: p.Query})
	}
	return items
}

func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "headlines",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// fileLogger logs to path for commands that own the terminal or stdio.
func fileLogger(path string) (*log.Logger, func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) //nolint:gosec // path comes from config
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return newLogger(f), func() { _ = f.Close() }, nil
}
