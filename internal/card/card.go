// ABOUTME: Article card rendering from a reusable template
// ABOUTME: Applies field fallbacks, the source/date line, and wires activation to open the article URL

package card

import (
	"time"

	"github.com/samber/lo"

	"github.com/harper/headlines/internal/models"
	"github.com/harper/headlines/internal/timeutil"
)

// Fallback values for missing article fields
const (
	PlaceholderImage   = "https://via.placeholder.com/800x400?text=No+Image+Available"
	FallbackAlt        = "news image"
	FallbackTitle      = "Untitled"
	FallbackDesc       = "No description provided. Click to read more."
	FallbackSourceName = "Unknown source"
	SourceSeparator    = " • "
)

// View is the rendering surface for one card.
// Implementations store text as plain text and never interpret it as markup.
type View interface {
	SetImage(src, alt string)
	SetTitle(title string)
	SetSource(line string)
	SetDescription(desc string)
	OnActivate(fn func())
}

// Linker is implemented by views that can expose the article URL directly,
// such as an HTML anchor.
type Linker interface {
	SetLink(url string)
}

// Template produces a fresh, detached View per article.
type Template interface {
	Clone() View
}

// Opener opens a URL in a new browsing context that has no handle back to the viewer.
type Opener interface {
	Open(url string) error
}

// Renderer fills views from article records.
type Renderer struct {
	opener   Opener
	loc      *time.Location
	onFailed func(url string, err error)
}

// NewRenderer creates a Renderer that formats dates in loc and opens links through opener.
func NewRenderer(opener Opener, loc *time.Location) *Renderer {
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{opener: opener, loc: loc}
}

// OnOpenError registers a callback for failed activations.
func (r *Renderer) OnOpenError(fn func(url string, err error)) {
	r.onFailed = fn
}

// Render fills one view cloned from tmpl with article.
func (r *Renderer) Render(article models.Article, tmpl Template) View {
	view := tmpl.Clone()

	title := deref(article.Title)

	img := deref(article.URLToImage)
	if img == "" {
		img = PlaceholderImage
	}
	alt := title
	if alt == "" {
		alt = FallbackAlt
	}
	view.SetImage(img, alt)

	if title == "" {
		title = FallbackTitle
	}
	view.SetTitle(title)

	desc := deref(article.Description)
	if desc == "" {
		desc = FallbackDesc
	}
	view.SetDescription(desc)

	view.SetSource(SourceLine(article, r.loc))

	url := article.URL
	if l, ok := view.(Linker); ok {
		l.SetLink(url)
	}
	view.OnActivate(func() {
		if r.opener == nil {
			return
		}
		if err := r.opener.Open(url); err != nil && r.onFailed != nil {
			r.onFailed(url, err)
		}
	})

	return view
}

// RenderAll drops records without a title or URL and renders the rest in order.
func (r *Renderer) RenderAll(articles []models.Article, tmpl Template) []View {
	valid := lo.Filter(articles, func(a models.Article, _ int) bool {
		return a.Renderable()
	})
	return lo.Map(valid, func(a models.Article, _ int) View {
		return r.Render(a, tmpl)
	})
}

// SourceLine composes "<source> • <date>" with fallbacks for missing values.
func SourceLine(article models.Article, loc *time.Location) string {
	name := article.SourceName()
	if name == "" {
		name = FallbackSourceName
	}
	return name + SourceSeparator + timeutil.FormatPublished(article.PublishedAt, loc)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
