package tui

import "github.com/rgehrsitz/iitax/internal/domain"

// Scene represents the screens of the TUI
type Scene int

const (
	SceneForm Scene = iota
	SceneResults
)

func (s Scene) String() string {
	switch s {
	case SceneForm:
		return "Input"
	case SceneResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ProfileLoadedMsg carries the profile the form is seeded from
type ProfileLoadedMsg struct {
	Profile *domain.Profile
}

// CalculationCompleteMsg carries the result of a yearly calculation
type CalculationCompleteMsg struct {
	Summary *domain.YearlySummary
	Err     error
}
