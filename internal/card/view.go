// ABOUTME: Stock card view used by the terminal, CLI, web, and MCP surfaces
// ABOUTME: Holds rendered fields and fires activation on click or Enter only

package card

import "github.com/harper/headlines/internal/content"

// Card is a View that keeps its fields as plain text.
type Card struct {
	Image       string `json:"image"`
	ImageAlt    string `json:"image_alt"`
	Title       string `json:"title"`
	Source      string `json:"source"`
	Description string `json:"description"`
	URL         string `json:"url"`

	activate func()
}

func (c *Card) SetImage(src, alt string) {
	c.Image = src
	c.ImageAlt = content.PlainText(alt)
}

func (c *Card) SetTitle(title string)      { c.Title = content.PlainText(title) }
func (c *Card) SetSource(line string)      { c.Source = content.PlainText(line) }
func (c *Card) SetDescription(desc string) { c.Description = content.PlainText(desc) }
func (c *Card) OnActivate(fn func())       { c.activate = fn }
func (c *Card) SetLink(url string)         { c.URL = url }

// Click activates the card.
func (c *Card) Click() {
	if c.activate != nil {
		c.activate()
	}
}

// Key activates the card when key is Enter and reports whether it did.
func (c *Card) Key(key string) bool {
	if key != "enter" {
		return false
	}
	c.Click()
	return true
}

// CardTemplate clones empty *Card views.
type CardTemplate struct{}

func (CardTemplate) Clone() View {
	return &Card{}
}

// Cards narrows views to *Card, skipping other implementations.
func Cards(views []View) []*Card {
	cards := make([]*Card, 0, len(views))
	for _, v := range views {
		if c, ok := v.(*Card); ok {
			cards = append(cards, c)
		}
	}
	return cards
}
