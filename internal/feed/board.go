// ABOUTME: In-memory card container shared by the viewer surfaces
// ABOUTME: Cleared wholesale before every render, no incremental diffing

package feed

import (
	"sync"

	"github.com/harper/headlines/internal/card"
	"github.com/harper/headlines/internal/status"
)

// Board is a Container backed by a slice.
type Board struct {
	mu    sync.RWMutex
	views []card.View
}

func (b *Board) Clear() {
	b.mu.Lock()
	b.views = nil
	b.mu.Unlock()
}

func (b *Board) Append(views ...card.View) {
	b.mu.Lock()
	b.views = append(b.views, views...)
	b.mu.Unlock()
}

// Views returns a snapshot of the rendered views
func (b *Board) Views() []card.View {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]card.View, len(b.views))
	copy(out, b.views)
	return out
}

// Cards returns the views that are stock cards
func (b *Board) Cards() []*card.Card {
	return card.Cards(b.Views())
}

// Len returns the number of rendered views
func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.views)
}

// NewSession returns a controller rendering into a fresh Board, with its own
// status line and copy of presets. Surfaces that serve many independent
// requests build one per request.
func NewSession(opts Options, presets []NavItem) (*Controller, *Board) {
	board := &Board{}
	opts.Container = board
	opts.Status = status.New()
	opts.Nav = NewNavList(presets)
	return New(opts), board
}
