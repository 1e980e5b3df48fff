package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/iitax/internal/calculation"
	"github.com/rgehrsitz/iitax/internal/config"
	"github.com/rgehrsitz/iitax/internal/domain"
)

// Form fields, in tab order
const (
	fieldIncome = iota
	fieldPeriods
	fieldBonuses
	fieldSpecial
	fieldCount
)

var fieldLabels = [fieldCount]string{
	fieldIncome:  "Pretax income",
	fieldPeriods: "Periods",
	fieldBonuses: "Bonuses",
	fieldSpecial: "Special deduction",
}

// Model represents the entire application state
type Model struct {
	scene Scene

	// Terminal dimensions
	width  int
	height int

	profilePath string
	profile     domain.Profile

	inputs []textinput.Model
	focus  int

	summary *domain.YearlySummary
	err     error
}

// NewModel creates a new application model. When profilePath is empty the
// form starts from the built-in example profile.
func NewModel(profilePath string) Model {
	m := Model{
		scene:       SceneForm,
		profilePath: profilePath,
		profile:     config.ExampleProfile(),
		width:       100,
		height:      40,
	}
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 30
		m.inputs[i] = ti
	}
	m.inputs[fieldIncome].Placeholder = "27000"
	m.inputs[fieldPeriods].Placeholder = "12"
	m.inputs[fieldBonuses].Placeholder = "2,3,4"
	m.inputs[fieldSpecial].Placeholder = "0"
	m.fillInputs()
	m.inputs[fieldIncome].Focus()
	return m
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	if m.profilePath == "" {
		return textinput.Blink
	}
	return tea.Batch(textinput.Blink, loadProfileCmd(m.profilePath))
}

// loadProfileCmd returns a command that loads the profile file
func loadProfileCmd(path string) tea.Cmd {
	return func() tea.Msg {
		profile, err := config.NewInputParser().LoadFromFile(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ProfileLoadedMsg{Profile: profile}
	}
}

// calculateCmd returns a command that runs the yearly calculation
func calculateCmd(profile domain.Profile) tea.Cmd {
	return func() tea.Msg {
		engine := calculation.NewCalculationEngineWithConfig(profile.Rules)
		summary, err := engine.CalculateYearly(profile.YearlyInput())
		return CalculationCompleteMsg{Summary: summary, Err: err}
	}
}

func (m *Model) fillInputs() {
	m.inputs[fieldIncome].SetValue(m.profile.PretaxIncome.String())
	m.inputs[fieldPeriods].SetValue(strconv.Itoa(m.profile.Periods))
	bonuses := make([]string, len(m.profile.Bonuses))
	for i, b := range m.profile.Bonuses {
		bonuses[i] = b.String()
	}
	m.inputs[fieldBonuses].SetValue(strings.Join(bonuses, ","))
	m.inputs[fieldSpecial].SetValue(m.profile.SpecialDeduction.String())
}

// readInputs builds a validated profile from the form, keeping the loaded
// profile's rates and rules.
func (m Model) readInputs() (domain.Profile, error) {
	p := m.profile
	income, err := decimal.NewFromString(strings.TrimSpace(m.inputs[fieldIncome].Value()))
	if err != nil {
		return p, fmt.Errorf("invalid pretax income: %w", err)
	}
	periods, err := strconv.Atoi(strings.TrimSpace(m.inputs[fieldPeriods].Value()))
	if err != nil {
		return p, fmt.Errorf("invalid periods: %w", err)
	}
	bonuses, err := config.ParseBonusList(m.inputs[fieldBonuses].Value())
	if err != nil {
		return p, err
	}
	special := decimal.Zero
	if s := strings.TrimSpace(m.inputs[fieldSpecial].Value()); s != "" {
		if special, err = decimal.NewFromString(s); err != nil {
			return p, fmt.Errorf("invalid special deduction: %w", err)
		}
	}

	p.PretaxIncome = income
	p.Periods = periods
	p.Bonuses = bonuses
	p.SpecialDeduction = special
	if err := config.NewInputParser().ValidateProfile(&p); err != nil {
		return p, err
	}
	return p, nil
}
