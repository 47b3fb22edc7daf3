package tui

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the editor.
var (
	colorAccent  = lipgloss.Color("212")
	colorText    = lipgloss.Color("252")
	colorDim     = lipgloss.Color("243")
	colorFaint   = lipgloss.Color("238")
	colorError   = lipgloss.Color("196")
	colorOK      = lipgloss.Color("114")
	colorPlay    = lipgloss.Color("203")
	colorGuide   = lipgloss.Color("226")
	colorRulerFg = lipgloss.Color("246")
)

// Base styles reused by the editor views.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	headerInfoStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	rulerStyle = lipgloss.NewStyle().
			Foreground(colorRulerFg)

	trackLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	playheadStyle = lipgloss.NewStyle().
			Foreground(colorPlay).
			Bold(true)

	guideStyle = lipgloss.NewStyle().
			Foreground(colorGuide).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(colorText)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	panelTitleActiveStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(colorOK)

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorError)

	footerKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	footerDescStyle = lipgloss.NewStyle().
			Foreground(colorFaint)

	promptStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// speakerStyle renders a segment block in the speaker's palette color.
func speakerStyle(hex string, selected bool) lipgloss.Style {
	st := lipgloss.NewStyle().
		Background(lipgloss.Color("#" + hex)).
		Foreground(lipgloss.Color("235"))
	if selected {
		st = st.Bold(true).Underline(true)
	}
	return st
}

// speakerDotStyle colors a speaker swatch in panel listings.
func speakerDotStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#" + hex))
}
