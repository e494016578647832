// ABOUTME: Tests for article card rendering
// ABOUTME: Covers field fallbacks, source line composition, filtering, and activation

package card

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harper/headlines/internal/models"
)

type recordingOpener struct {
	opened []string
	err    error
}

func (o *recordingOpener) Open(url string) error {
	o.opened = append(o.opened, url)
	return o.err
}

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	return loc
}

func TestRender_AllFieldsPresent(t *testing.T) {
	opener := &recordingOpener{}
	r := NewRenderer(opener, jakarta(t))

	article := models.Article{
		Title:       stringPtr("Monsoon arrives early"),
		Description: stringPtr("Forecasters revise outlook."),
		URL:         "https://example.com/monsoon",
		URLToImage:  stringPtr("https://example.com/monsoon.jpg"),
		PublishedAt: "2024-06-01T03:15:00Z",
		Source:      models.Source{Name: stringPtr("Example Times")},
	}

	c := r.Render(article, CardTemplate{}).(*Card)

	if c.Image != "https://example.com/monsoon.jpg" {
		t.Errorf("expected image verbatim, got %q", c.Image)
	}
	if c.ImageAlt != "Monsoon arrives early" {
		t.Errorf("expected alt from title, got %q", c.ImageAlt)
	}
	if c.Title != "Monsoon arrives early" {
		t.Errorf("unexpected title %q", c.Title)
	}
	if c.Description != "Forecasters revise outlook." {
		t.Errorf("unexpected description %q", c.Description)
	}
	if c.Source != "Example Times • Jun 1, 2024, 10:15 AM" {
		t.Errorf("unexpected source line %q", c.Source)
	}
	if c.URL != "https://example.com/monsoon" {
		t.Errorf("unexpected link %q", c.URL)
	}
}

func TestRender_Fallbacks(t *testing.T) {
	r := NewRenderer(&recordingOpener{}, time.UTC)

	c := r.Render(models.Article{URL: "https://example.com/a", URLToImage: stringPtr("")}, CardTemplate{}).(*Card)

	if c.Image != PlaceholderImage {
		t.Errorf("expected placeholder image, got %q", c.Image)
	}
	if c.ImageAlt != FallbackAlt {
		t.Errorf("expected fallback alt, got %q", c.ImageAlt)
	}
	if c.Title != "Untitled" {
		t.Errorf("expected 'Untitled', got %q", c.Title)
	}
	if c.Description != FallbackDesc {
		t.Errorf("expected fallback description, got %q", c.Description)
	}
	if c.Source != "Unknown source • " {
		t.Errorf("expected unknown source with empty date, got %q", c.Source)
	}
}

func TestRender_UnparsableDateShownVerbatim(t *testing.T) {
	r := NewRenderer(nil, time.UTC)
	article := models.Article{
		Title:       stringPtr("A"),
		URL:         "https://example.com/a",
		PublishedAt: "sometime last week",
		Source:      models.Source{Name: stringPtr("Wire")},
	}

	c := r.Render(article, CardTemplate{}).(*Card)
	if c.Source != "Wire • sometime last week" {
		t.Errorf("unexpected source line %q", c.Source)
	}
}

func TestRender_TextIsPlain(t *testing.T) {
	r := NewRenderer(nil, time.UTC)
	article := models.Article{
		Title:       stringPtr("\x1b[2J<script>alert(1)</script>"),
		Description: stringPtr("line\nbreak"),
		URL:         "https://example.com/a",
	}

	c := r.Render(article, CardTemplate{}).(*Card)
	if strings.Contains(c.Title, "\x1b") {
		t.Errorf("escape sequence leaked into title: %q", c.Title)
	}
	if c.Title != "<script>alert(1)</script>" {
		t.Errorf("expected markup kept as literal text, got %q", c.Title)
	}
	if c.Description != "line break" {
		t.Errorf("unexpected description %q", c.Description)
	}
}

func TestActivation_ClickAndEnter(t *testing.T) {
	opener := &recordingOpener{}
	r := NewRenderer(opener, time.UTC)

	c := r.Render(models.Article{Title: stringPtr("A"), URL: "https://example.com/a"}, CardTemplate{}).(*Card)

	c.Click()
	if !c.Key("enter") {
		t.Error("expected enter to activate")
	}
	if c.Key("space") {
		t.Error("expected other keys to be ignored")
	}

	if len(opener.opened) != 2 {
		t.Fatalf("expected 2 opens, got %d", len(opener.opened))
	}
	for _, u := range opener.opened {
		if u != "https://example.com/a" {
			t.Errorf("expected exact url, got %q", u)
		}
	}
}

func TestActivation_OpenErrorReported(t *testing.T) {
	opener := &recordingOpener{err: errors.New("no browser")}
	r := NewRenderer(opener, time.UTC)

	var gotURL string
	r.OnOpenError(func(url string, err error) { gotURL = url })

	c := r.Render(models.Article{Title: stringPtr("A"), URL: "https://example.com/a"}, CardTemplate{}).(*Card)
	c.Click()

	if gotURL != "https://example.com/a" {
		t.Errorf("expected open error callback for url, got %q", gotURL)
	}
}

func TestRenderAll_FiltersInvalidRecords(t *testing.T) {
	r := NewRenderer(nil, time.UTC)
	articles := []models.Article{
		{Title: stringPtr("First"), URL: "https://example.com/1"},
		{URL: "https://example.com/untitled"},
		{Title: stringPtr("No link")},
		{Title: stringPtr("Second"), URL: "https://example.com/2"},
	}

	cards := Cards(r.RenderAll(articles, CardTemplate{}))
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(cards))
	}
	if cards[0].Title != "First" || cards[1].Title != "Second" {
		t.Errorf("expected order preserved, got %q, %q", cards[0].Title, cards[1].Title)
	}
}

func TestRenderAll_AllInvalid(t *testing.T) {
	r := NewRenderer(nil, time.UTC)
	views := r.RenderAll([]models.Article{{URL: "https://example.com/x"}, {}}, CardTemplate{})
	if len(views) != 0 {
		t.Errorf("expected no views, got %d", len(views))
	}
}

func TestRenderAll_KeepsWhitespaceTitle(t *testing.T) {
	r := NewRenderer(nil, time.UTC)
	views := r.RenderAll([]models.Article{{Title: stringPtr("  "), URL: "https://example.com/a"}}, CardTemplate{})
	if len(views) != 1 {
		t.Fatalf("expected whitespace title rendered, got %d views", len(views))
	}
	if c := views[0].(*Card); c.Title != " " || c.ImageAlt != " " {
		t.Errorf("expected title kept as-is, got %q / %q", c.Title, c.ImageAlt)
	}
}

func TestTemplate_ClonesFreshViews(t *testing.T) {
	a := CardTemplate{}.Clone()
	b := CardTemplate{}.Clone()
	a.SetTitle("changed")
	if b.(*Card).Title != "" {
		t.Error("expected clones to be independent")
	}
}

func stringPtr(s string) *string {
	return &s
}
