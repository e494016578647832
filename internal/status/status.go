// ABOUTME: Single status message with a severity, shown above the card list
// ABOUTME: Owns the message text and the per-severity visual treatment for terminal and web

package status

import (
	"github.com/charmbracelet/lipgloss"
)

// Severity classifies a status message.
type Severity int

const (
	Info Severity = iota
	Loading
	Error
)

func (s Severity) String() string {
	switch s {
	case Loading:
		return "loading"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Message is the current status text and severity.
type Message struct {
	Text     string
	Severity Severity
	Visible  bool
}

// Presenter shows or clears one status message.
type Presenter struct {
	msg Message
}

// New returns a hidden presenter.
func New() *Presenter {
	return &Presenter{}
}

// Set replaces the message and makes it visible.
func (p *Presenter) Set(text string, sev Severity) {
	p.msg = Message{Text: text, Severity: sev, Visible: true}
}

// Clear empties and hides the message.
func (p *Presenter) Clear() {
	p.msg = Message{}
}

func (p *Presenter) Message() Message { return p.msg }
func (p *Presenter) Visible() bool    { return p.msg.Visible }

var (
	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0b3d91")).
			Background(lipgloss.Color("#eef6ff")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#cfe3ff")).
			Padding(0, 1)
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8a1f11")).
			Background(lipgloss.Color("#fdecea")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#f5c6c2")).
			Padding(0, 1)
)

// Style returns the terminal style for sev. Info and Loading share one treatment.
func Style(sev Severity) lipgloss.Style {
	if sev == Error {
		return errorStyle
	}
	return infoStyle
}

// CSSClass returns the web class for sev.
func CSSClass(sev Severity) string {
	if sev == Error {
		return "status-error"
	}
	return "status-info"
}

// Render draws the message boxed to width, or "" when hidden.
func (p *Presenter) Render(width int) string {
	if !p.msg.Visible {
		return ""
	}
	style := Style(p.msg.Severity)
	if width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}
	return style.Render(p.msg.Text)
}
