package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/iitax/internal/output"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.scene {
	case SceneResults:
		content = m.renderResults()
	default:
		content = m.renderForm()
	}

	parts := []string{m.renderTitleBar(), content}
	if m.err != nil {
		parts = append(parts, ErrorStyle.Render("Error: "+m.err.Error()))
	}
	parts = append(parts, m.renderStatusBar())
	return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("IITAX - Income Tax Calculator")
	crumb := m.scene.String()
	if m.profile.Name != "" {
		crumb = m.profile.Name + " / " + crumb
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(crumb))
}

func (m Model) renderForm() string {
	rows := make([]string, len(m.inputs))
	for i, in := range m.inputs {
		label := LabelStyle
		if i == m.focus {
			label = FocusedLabelStyle
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, label.Render(fieldLabels[i]), in.View())
	}
	hint := SubtitleStyle.Render("Bonuses: month counts (e.g. 2,3,4) or amounts when the last value exceeds 100")
	return FormStyle.Render(lipgloss.JoinVertical(lipgloss.Left, append(rows, "", hint)...))
}

func (m Model) renderResults() string {
	if m.summary == nil {
		return ""
	}
	var b strings.Builder
	if err := output.PrintYearly(&b, m.summary); err != nil {
		return ErrorStyle.Render(err.Error())
	}
	return b.String()
}

func (m Model) renderStatusBar() string {
	var bindings []string
	if m.scene == SceneForm {
		bindings = []string{help(keys.Next), help(keys.Prev), help(keys.Calculate), help(keys.Quit)}
	} else {
		bindings = []string{help(keys.Back), help(keys.Quit)}
	}
	return StatusBarStyle.Render(strings.Join(bindings, "  "))
}

func help(b key.Binding) string {
	h := b.Help()
	return HelpKeyStyle.Render(h.Key) + " " + h.Desc
}
