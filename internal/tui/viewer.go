// ABOUTME: Interactive news viewer built on bubbletea
// ABOUTME: Binds tabs, the search box, and Home to the feed controller and shows cards plus one status line

package tui

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/headlines/internal/feed"
	"github.com/harper/headlines/internal/newsapi"
)

//go:embed help.md
var helpMarkdown string

type focus int

const (
	focusCards focus = iota
	focusNav
	focusSearch
)

// resultMsg carries a finished search back to the model
type resultMsg struct {
	ticket feed.Ticket
	result *newsapi.Result
	err    error
}

// Viewer is the bubbletea model for the news viewer.
type Viewer struct {
	ctx   context.Context
	ctrl  *feed.Controller
	board *feed.Board

	focus      focus
	navCursor  int
	cardCursor int
	search     textinput.Model
	showHelp   bool
	width      int
	height     int
}

// NewViewer creates a viewer over ctrl, whose container must be board.
func NewViewer(ctx context.Context, ctrl *feed.Controller, board *feed.Board) Viewer {
	search := textinput.New()
	search.Placeholder = "Search news..."
	search.Prompt = "/ "
	search.CharLimit = 200
	search.Width = 40

	return Viewer{
		ctx:    ctx,
		ctrl:   ctrl,
		board:  board,
		focus:  focusCards,
		search: search,
	}
}

// Init issues the seed request.
func (m Viewer) Init() tea.Cmd {
	ticket, ok := m.ctrl.BeginInit()
	if !ok {
		return nil
	}
	return m.searchCmd(ticket)
}

func (m Viewer) searchCmd(ticket feed.Ticket) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		result, err := ctrl.Search(ctx, ticket)
		return resultMsg{ticket: ticket, result: result, err: err}
	}
}

// Update implements tea.Model.
func (m Viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case resultMsg:
		out := m.ctrl.Finish(msg.ticket, msg.result, msg.err)
		if !out.Stale {
			m.cardCursor = 0
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Viewer) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.search.Blur()
		m.focus = focusCards
		return m, nil
	case tea.KeyEnter:
		ticket, ok := m.ctrl.BeginSubmit(m.search.Value())
		if !ok {
			return m, nil
		}
		m.search.Blur()
		m.focus = focusCards
		return m, m.searchCmd(ticket)
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Viewer) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "/":
		m.focus = focusSearch
		cmd := m.search.Focus()
		return m, cmd
	case "H":
		m.search.SetValue("")
		m.navCursor = m.seedIndex()
		ticket, ok := m.ctrl.BeginHome()
		if !ok {
			return m, nil
		}
		return m, m.searchCmd(ticket)
	case "tab", "shift+tab":
		if m.focus == focusNav {
			m.focus = focusCards
		} else {
			m.focus = focusNav
		}
		return m, nil
	}

	if m.focus == focusNav {
		return m.updateNav(msg)
	}
	return m.updateCards(msg)
}

func (m Viewer) updateNav(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.ctrl.Nav().Items()
	if len(items) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "left", "h":
		m.navCursor = (m.navCursor - 1 + len(items)) % len(items)
	case "right", "l":
		m.navCursor = (m.navCursor + 1) % len(items)
	case "enter":
		ticket, ok := m.ctrl.BeginTab(items[m.navCursor])
		if !ok {
			return m, nil
		}
		return m, m.searchCmd(ticket)
	}
	return m, nil
}

func (m Viewer) updateCards(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cards := m.board.Cards()
	if len(cards) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		if m.cardCursor > 0 {
			m.cardCursor--
		}
	case "down", "j":
		if m.cardCursor < len(cards)-1 {
			m.cardCursor++
		}
	case "enter":
		if m.cardCursor < len(cards) {
			cards[m.cardCursor].Key("enter")
		}
	}
	return m, nil
}

// seedIndex returns the tab matching the seed topic, or the current cursor
func (m Viewer) seedIndex() int {
	match := m.ctrl.Nav().Match(m.ctrl.SeedTopic())
	for i, it := range m.ctrl.Nav().Items() {
		if it == match {
			return i
		}
	}
	return m.navCursor
}

// View implements tea.Model.
func (m Viewer) View() string {
	var b strings.Builder

	b.WriteString(brandStyle.Render("HEADLINES"))
	b.WriteString("  ")
	b.WriteString(faintStyle.Render(m.ctrl.State().LastQuery))
	b.WriteString("\n\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n")

	if status := m.ctrl.Status().Render(m.width); status != "" {
		b.WriteString(status)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.showHelp {
		b.WriteString(m.renderHelp())
		return b.String()
	}

	b.WriteString(m.renderCards())
	b.WriteString("\n")
	b.WriteString(faintStyle.Render("tab focus • / search • H home • enter open • ? help • q quit"))
	return b.String()
}

func (m Viewer) renderTabs() string {
	items := m.ctrl.Nav().Items()
	tabs := make([]string, 0, len(items))
	for i, it := range items {
		style := tabStyle
		if it.Active {
			style = activeTabStyle
		}
		label := style.Render(it.Label)
		if m.focus == focusNav && i == m.navCursor {
			label = focusTabStyle.Render(label)
		}
		tabs = append(tabs, label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Viewer) renderCards() string {
	cards := m.board.Cards()
	if len(cards) == 0 {
		return ""
	}

	// Each card takes four lines plus a gap
	visible := len(cards)
	if m.height > 0 {
		visible = max(1, (m.height-10)/5)
	}
	start := 0
	if m.cardCursor >= visible {
		start = m.cardCursor - visible + 1
	}
	end := min(len(cards), start+visible)

	width := m.width - 4
	if width < 20 {
		width = 76
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		c := cards[i]
		body := strings.Join([]string{
			cardTitleStyle.Render(c.Title),
			faintStyle.Render(c.Source),
			c.Description,
			faintStyle.Render(c.Image),
		}, "\n")

		style := cardStyle
		if i == m.cardCursor && m.focus == focusCards {
			style = selectedCardStyle
		}
		b.WriteString(style.Width(width).Render(body))
		b.WriteString("\n\n")
	}
	b.WriteString(faintStyle.Render(fmt.Sprintf("%d/%d", m.cardCursor+1, len(cards))))
	return b.String()
}

func (m Viewer) renderHelp() string {
	rendered, err := glamour.Render(helpMarkdown, "dark")
	if err != nil {
		return helpMarkdown
	}
	return rendered
}
