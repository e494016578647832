// ABOUTME: Unit tests for the headlines setup TUI wizard bubbletea model.
// ABOUTME: Uses synthetic tea.Msg values to test state machine transitions.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNewSetupModel_DefaultValues(t *testing.T) {
	m := NewSetupModel("", "")
	if m.step != StepAPIKey {
		t.Errorf("expected initial step StepAPIKey, got %d", m.step)
	}
	if m.inputs[0].Value() != "" {
		t.Error("expected empty key input for new config")
	}
	if m.inputs[1].Value() != "" {
		t.Error("expected empty seed input for new config")
	}
}

func TestNewSetupModel_ExistingConfig(t *testing.T) {
	m := NewSetupModel("abcd1234", "Jakarta")
	if m.inputs[0].Value() != "abcd1234" {
		t.Errorf("expected pre-filled key, got %q", m.inputs[0].Value())
	}
	if m.inputs[1].Value() != "Jakarta" {
		t.Errorf("expected pre-filled seed, got %q", m.inputs[1].Value())
	}
}

func TestSetupModel_EmptyKeyStaysOnStep(t *testing.T) {
	m := NewSetupModel("", "")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepAPIKey {
		t.Errorf("expected to stay on StepAPIKey without a key, got %d", m.step)
	}
}

func TestSetupModel_StepTransitions(t *testing.T) {
	m := NewSetupModel("", "")
	m.inputs[0].SetValue("  key-123  ")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepSeedTopic {
		t.Errorf("expected StepSeedTopic after Enter on key, got %d", m.step)
	}
	if m.inputs[0].Value() != "key-123" {
		t.Errorf("expected trimmed key, got %q", m.inputs[0].Value())
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(SetupModel)
	if m.step != StepDone {
		t.Errorf("expected StepDone after Enter on seed, got %d", m.step)
	}
	if m.inputs[1].Value() != "India" {
		t.Errorf("expected default seed 'India', got %q", m.inputs[1].Value())
	}
}

func TestSetupModel_QuitOnCtrlC(t *testing.T) {
	m := NewSetupModel("", "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(SetupModel)
	if cmd == nil {
		t.Error("expected quit cmd on ctrl+c")
	}
	if !m.quitting {
		t.Error("expected quitting to be true")
	}
	if m.ShouldSave() {
		t.Error("expected ShouldSave false after ctrl+c")
	}
}

func TestSetupModel_QuitOnEsc(t *testing.T) {
	m := NewSetupModel("", "")
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEscape})
	m = updated.(SetupModel)
	if cmd == nil {
		t.Error("expected quit cmd on escape")
	}
	if !m.quitting {
		t.Error("expected quitting to be true")
	}
}

func TestSetupModel_Result(t *testing.T) {
	m := NewSetupModel("", "")
	m.inputs[0].SetValue("key")
	m.inputs[1].SetValue("Finance")
	m.step = StepDone

	key, seed := m.Result()
	if key != "key" {
		t.Errorf("expected key from result, got %q", key)
	}
	if seed != "Finance" {
		t.Errorf("expected seed from result, got %q", seed)
	}
}

func TestSetupModel_ViewMasksKey(t *testing.T) {
	m := NewSetupModel("supersecretkey", "India")
	m.step = StepDone
	view := m.View()
	if strings.Contains(view, "supersecretkey") {
		t.Error("expected key to be masked in view")
	}
	if !strings.Contains(view, "tkey") {
		t.Error("expected last four characters of key in view")
	}
}

func TestSetupModel_ViewShowsCurrentStep(t *testing.T) {
	m := NewSetupModel("", "")

	m.step = StepAPIKey
	if !strings.Contains(m.View(), "API Key") {
		t.Error("expected StepAPIKey view to mention API Key")
	}

	m.step = StepSeedTopic
	if !strings.Contains(m.View(), "Seed Topic") {
		t.Error("expected StepSeedTopic view to mention Seed Topic")
	}
}

func TestMaskKey(t *testing.T) {
	if got := maskKey("abc"); got != "•••" {
		t.Errorf("expected short key fully masked, got %q", got)
	}
	if got := maskKey("abcdefgh"); got != "••••efgh" {
		t.Errorf("unexpected mask %q", got)
	}
}
