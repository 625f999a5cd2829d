package chooser

import "github.com/charmbracelet/lipgloss"

var (
	colorWhite  = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim    = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
	colorOrange = lipgloss.AdaptiveColor{Light: "166", Dark: "208"}
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorOrange).
			MarginBottom(1)

	selectedItemStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorWhite)

	itemStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	frameStyle = lipgloss.NewStyle().
			Padding(1, 2)
)
