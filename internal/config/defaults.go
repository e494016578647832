// ABOUTME: Centralized configuration defaults for headlines
// ABOUTME: Contains provider endpoints, fixed query parameters, and display constants

package config

import "time"

// HTTP settings
const (
	DefaultHTTPTimeout = 30 * time.Second
	UserAgent          = "headlines/1.0"
)

// Provider settings
const (
	ProviderNewsAPI = "newsapi"
	ProviderRSS     = "rss"

	DefaultEndpoint    = "https://newsapi.org/v2/everything"
	DefaultRSSEndpoint = "https://news.google.com/rss/search?hl=en-US&gl=US&ceid=US:en"
	APIKeyEnv          = "NEWSAPI_KEY"
)

// Fixed query parameters
const (
	QueryLanguage = "en"
	QuerySortBy   = "publishedAt"
	PageSize      = 20
)

// Display settings
const (
	DefaultSeedTopic = "India"
	DefaultTimeZone  = "Asia/Jakarta"
	SeparatorWidth   = 60
	DefaultServeAddr = ":8080"
)

// NavItem is a preset navigation tab carrying the topic it queries.
type NavItem struct {
	Label string `json:"label"`
	Query string `json:"query"`
}

// DefaultNav returns the stock navigation tabs
func DefaultNav() []NavItem {
	return []NavItem{
		{Label: "Today News", Query: "india"},
		{Label: "Technology", Query: "technology"},
		{Label: "Finance", Query: "finance"},
		{Label: "Politics", Query: "politics"},
		{Label: "Sports", Query: "sports"},
		{Label: "Science", Query: "science"},
	}
}
