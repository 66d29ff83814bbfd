package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorGreen     = lipgloss.Color("#00FF00")
	colorRed       = lipgloss.Color("#FF5555")
	colorYellow    = lipgloss.Color("#FFFF00")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			Align(lipgloss.Center).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			Align(lipgloss.Center).
			MarginBottom(2)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	menuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				PaddingLeft(2)

	cardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(1, 2)

	answerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorDarkGray).
			Foreground(colorLightGray).
			Padding(1, 2)

	correctStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	wrongStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	progressStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)
)

const logo = `
  ███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗██████╗ ██╗██╗      ██████╗ ████████╗
  ██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝██╔══██╗██║██║     ██╔═══██╗╚══██╔══╝
  ███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝ ██████╔╝██║██║     ██║   ██║   ██║
  ╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝  ██╔═══╝ ██║██║     ██║   ██║   ██║
  ███████║   ██║   ╚██████╔╝██████╔╝   ██║   ██║     ██║███████╗╚██████╔╝   ██║
  ╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝   ╚═╝     ╚═╝╚══════╝ ╚═════╝    ╚═╝
`
