// ABOUTME: RSS/Atom search provider using the gofeed library
// ABOUTME: Maps feed items onto article records with the same result and error contract as the NewsAPI client

package rss

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/harper/headlines/internal/config"
	"github.com/harper/headlines/internal/content"
	"github.com/harper/headlines/internal/models"
	"github.com/harper/headlines/internal/newsapi"
)

// Provider searches an RSS endpoint that takes the topic as its q parameter.
type Provider struct {
	endpoint   string
	httpClient *http.Client
}

// NewProvider creates a Provider for endpoint. A nil client gets the default timeout.
func NewProvider(endpoint string, httpClient *http.Client) *Provider {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.DefaultHTTPTimeout}
	}
	return &Provider{endpoint: endpoint, httpClient: httpClient}
}

// Search fetches and parses the feed for topic.
// At most config.PageSize items are returned, in feed order.
func (p *Provider) Search(ctx context.Context, topic string) (*newsapi.Result, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, newsapi.ErrBlankInput
	}

	u, err := url.Parse(p.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint: %w", err)
	}
	q := u.Query()
	q.Set("q", topic)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/rss+xml, application/atom+xml, application/xml;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("User-Agent", config.UserAgent)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &newsapi.HTTPError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, newsapi.MaxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &newsapi.DecodeError{Err: err}
	}

	articles := Articles(feed)
	if len(articles) == 0 {
		return &newsapi.Result{Empty: true}, nil
	}
	return &newsapi.Result{Articles: articles}, nil
}

// Articles converts parsed feed items to article records
func Articles(feed *gofeed.Feed) []models.Article {
	articles := make([]models.Article, 0, len(feed.Items))

	for _, item := range feed.Items {
		if len(articles) == config.PageSize {
			break
		}

		article := models.Article{
			URL: item.Link,
		}
		if title := strings.TrimSpace(item.Title); title != "" {
			article.Title = &title
		}
		// Search feeds wrap summaries in links and font tags
		if desc := content.FromHTML(strings.TrimSpace(item.Description)); desc != "" {
			article.Description = &desc
		}

		// Prefer the item image, then the first image enclosure
		if item.Image != nil && item.Image.URL != "" {
			img := item.Image.URL
			article.URLToImage = &img
		} else {
			for _, enc := range item.Enclosures {
				if enc != nil && enc.URL != "" && strings.HasPrefix(enc.Type, "image/") {
					img := enc.URL
					article.URLToImage = &img
					break
				}
			}
		}

		// Use PublishedParsed or fallback to UpdatedParsed, then the raw string
		switch {
		case item.PublishedParsed != nil:
			article.PublishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
		case item.UpdatedParsed != nil:
			article.PublishedAt = item.UpdatedParsed.UTC().Format(time.RFC3339)
		default:
			article.PublishedAt = item.Published
		}

		if item.Author != nil && item.Author.Name != "" {
			name := item.Author.Name
			article.Author = &name
		}
		switch {
		case feed.Title != "":
			name := feed.Title
			article.Source.Name = &name
		case article.Author != nil:
			article.Source.Name = article.Author
		}

		articles = append(articles, article)
	}

	return articles
}
