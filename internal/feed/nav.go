// ABOUTME: Navigation tab list with single active selection
// ABOUTME: Looks up tabs by query and guarantees at most one tab is marked active

package feed

import (
	"strings"

	"github.com/samber/lo"
)

// NavItem is one navigation tab.
type NavItem struct {
	Label  string
	Query  string
	Active bool
}

// NavList owns the tabs and their active markers.
type NavList struct {
	items  []*NavItem
	active *NavItem
}

// NewNavList creates a list from items, all inactive.
func NewNavList(items []NavItem) *NavList {
	l := &NavList{items: make([]*NavItem, 0, len(items))}
	for _, item := range items {
		item.Active = false
		it := item
		l.items = append(l.items, &it)
	}
	return l
}

// Items returns the tabs in display order
func (l *NavList) Items() []*NavItem {
	return l.items
}

// Active returns the active tab or nil
func (l *NavList) Active() *NavItem {
	return l.active
}

// Match returns the tab whose query equals topic case-insensitively, or nil.
func (l *NavList) Match(topic string) *NavItem {
	topic = strings.TrimSpace(topic)
	item, ok := lo.Find(l.items, func(it *NavItem) bool {
		return strings.EqualFold(strings.TrimSpace(it.Query), topic)
	})
	if !ok {
		return nil
	}
	return item
}

// Select removes the marker from the active tab before marking item.
// Passing nil, or an item not in the list, leaves nothing active.
func (l *NavList) Select(item *NavItem) *NavItem {
	if l.active != nil {
		l.active.Active = false
	}
	l.active = nil

	if item == nil || !lo.Contains(l.items, item) {
		return nil
	}
	item.Active = true
	l.active = item
	return item
}

// ActiveCount returns how many tabs carry the active marker
func (l *NavList) ActiveCount() int {
	return lo.CountBy(l.items, func(it *NavItem) bool { return it.Active })
}
