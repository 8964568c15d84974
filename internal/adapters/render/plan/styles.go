package plan

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	phase      lipgloss.Style
	phaseMeta  lipgloss.Style
	offset     lipgloss.Style
	text       lipgloss.Style
	terminal   lipgloss.Style
	cue        lipgloss.Style
	section    lipgloss.Style
	empty      lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		phase:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		phaseMeta:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		offset:     lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		text:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		terminal:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		cue:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		section:    lipgloss.NewStyle().MarginTop(1),
		empty:      lipgloss.NewStyle().Faint(true),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
