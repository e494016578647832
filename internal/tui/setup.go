// ABOUTME: Interactive TUI wizard for configuring the news provider credential and seed topic.
// ABOUTME: 2-step bubbletea model collecting the API key and the topic shown on start and Home.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/harper/headlines/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepAPIKey Step = iota
	StepSeedTopic
	StepDone
)

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step     Step
	inputs   [2]textinput.Model
	quitting bool
}

// NewSetupModel creates a new setup wizard model, pre-filling with existing config values.
func NewSetupModel(apiKey, seedTopic string) SetupModel {
	keyInput := textinput.New()
	keyInput.Placeholder = "newsapi.org key"
	keyInput.EchoMode = textinput.EchoPassword
	keyInput.EchoCharacter = '•'
	keyInput.Focus()
	keyInput.Width = 50
	if apiKey != "" {
		keyInput.SetValue(apiKey)
	}

	seedInput := textinput.New()
	seedInput.Placeholder = config.DefaultSeedTopic
	seedInput.Width = 50
	if seedTopic != "" {
		seedInput.SetValue(seedTopic)
	}

	return SetupModel{
		step:   StepAPIKey,
		inputs: [2]textinput.Model{keyInput, seedInput},
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		}

		if m.step == StepAPIKey || m.step == StepSeedTopic {
			return m.updateInput(msg)
		}
	default:
		// Forward other messages (e.g. cursor blink) to the active input
		if m.step == StepAPIKey || m.step == StepSeedTopic {
			idx := int(m.step)
			var cmd tea.Cmd
			m.inputs[idx], cmd = m.inputs[idx].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.handleEnter()
	}

	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m SetupModel) handleEnter() (tea.Model, tea.Cmd) {
	idx := int(m.step)

	if m.step == StepAPIKey {
		val := strings.TrimSpace(m.inputs[0].Value())
		if val == "" {
			return m, nil
		}
		m.inputs[0].SetValue(val)
	}

	if m.step == StepSeedTopic {
		val := strings.TrimSpace(m.inputs[1].Value())
		if val == "" {
			val = config.DefaultSeedTopic
		}
		m.inputs[1].SetValue(val)
	}

	m.inputs[idx].Blur()

	switch m.step {
	case StepAPIKey:
		m.step = StepSeedTopic
		m.inputs[1].Focus()
		return m, textinput.Blink
	case StepSeedTopic:
		m.step = StepDone
		return m, tea.Quit
	}

	return m, nil
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   HEADLINES"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Configure the news provider.\n\n")

	switch m.step {
	case StepAPIKey:
		b.WriteString(stepStyle.Render("Step 1 of 2: API Key"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(get one at https://newsapi.org/register)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")

	case StepSeedTopic:
		b.WriteString(fmt.Sprintf("  API key: %s\n\n", maskKey(m.inputs[0].Value())))
		b.WriteString(stepStyle.Render("Step 2 of 2: Seed Topic"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(press Enter for default: %s)", config.DefaultSeedTopic)))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("Setup complete! Config will be saved."))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  API key:     %s\n", maskKey(m.inputs[0].Value())))
		b.WriteString(fmt.Sprintf("  Seed topic:  %s\n", m.inputs[1].Value()))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered values.
func (m SetupModel) Result() (apiKey, seedTopic string) {
	return m.inputs[0].Value(), m.inputs[1].Value()
}

// ShouldSave returns true if the wizard completed and the user did not cancel.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}

// maskKey hides all but the last four characters of a credential
func maskKey(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("•", len(key))
	}
	return strings.Repeat("•", len(key)-4) + key[len(key)-4:]
}
