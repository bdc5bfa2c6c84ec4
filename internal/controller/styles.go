package controller

import "github.com/charmbracelet/lipgloss"

type styles struct {
	covered lipgloss.Style
	missed  lipgloss.Style
	passed  lipgloss.Style
	failed  lipgloss.Style
}

// newStyles returns colored styles, or no-op styles when color is off.
func newStyles(color bool) styles {
	if !color {
		plain := lipgloss.NewStyle()
		return styles{covered: plain, missed: plain, passed: plain, failed: plain}
	}

	green := lipgloss.Color("2")
	red := lipgloss.Color("1")

	return styles{
		covered: lipgloss.NewStyle().Foreground(green),
		missed:  lipgloss.NewStyle().Foreground(red),
		passed:  lipgloss.NewStyle().Foreground(green).Bold(true),
		failed:  lipgloss.NewStyle().Foreground(red).Bold(true),
	}
}

func (s styles) result(passed bool) lipgloss.Style {
	if passed {
		return s.passed
	}

	return s.failed
}
