// ABOUTME: Article model mirroring a news search API record
// ABOUTME: Optional fields are pointers; PublishedAt stays raw so malformed values survive

package models

// Source identifies the publisher of an article
type Source struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Article represents a single article as returned by the provider
type Article struct {
	Source      Source  `json:"source"`
	Author      *string `json:"author,omitempty"`
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	URL         string  `json:"url"`
	URLToImage  *string `json:"urlToImage,omitempty"`
	PublishedAt string  `json:"publishedAt,omitempty"`
	Content     *string `json:"content,omitempty"`
}

// Renderable reports whether the article carries both a title and a URL.
// Records without either are dropped before rendering. Whitespace-only
// values count as present.
func (a Article) Renderable() bool {
	return a.Title != nil && *a.Title != "" && a.URL != ""
}

// SourceName returns the publisher name, or "" when the provider omitted it
func (a Article) SourceName() string {
	if a.Source.Name == nil {
		return ""
	}
	return *a.Source.Name
}

// Response is the body of a search response.
// Code and Message are only populated on provider error bodies.
type Response struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
	Code         string    `json:"code,omitempty"`
	Message      string    `json:"message,omitempty"`
}
