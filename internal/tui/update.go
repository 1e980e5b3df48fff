package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil

	case ProfileLoadedMsg:
		m.profile = *msg.Profile
		m.fillInputs()
		m.err = nil
		return m, nil

	case CalculationCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.summary = msg.Summary
		m.scene = SceneResults
		return m, nil
	}

	return m.updateInputs(msg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Back):
		if m.scene == SceneResults {
			m.scene = SceneForm
			return m, nil
		}
		return m, tea.Quit
	}

	if m.scene != SceneForm {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Calculate):
		profile, err := m.readInputs()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.profile = profile
		return m, calculateCmd(profile)

	case key.Matches(msg, keys.Next):
		return m.setFocus((m.focus + 1) % fieldCount)

	case key.Matches(msg, keys.Prev):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	}

	return m.updateInputs(msg)
}

func (m Model) setFocus(i int) (tea.Model, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m, m.inputs[i].Focus()
}

// updateInputs forwards the message to the focused text input
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scene != SceneForm {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}
