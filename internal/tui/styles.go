package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette.
const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
)

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
)

var (
	brandStyle    = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	headlineStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(colorText).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(colorOverlay1)
	textStyle     = lipgloss.NewStyle().Foreground(colorText)

	loginCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface2).
			Padding(1, 3).
			Width(44)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorSurface2).
			Padding(0, 1)
	buttonFocusedStyle = buttonStyle.
				BorderForeground(colorFocus).
				Foreground(colorFocus).
				Bold(true)
	primaryButtonStyle = buttonStyle.
				Background(colorBlue).
				Foreground(colorBase)

	headerButtonStyle = lipgloss.NewStyle().
				Background(colorBlue).
				Foreground(colorBase).
				Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText).
			Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Foreground(colorSubtext0).Padding(0, 2)
	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorBrand).
			Bold(true).
			Underline(true).
			Padding(0, 2)
	tabBarStyle = lipgloss.NewStyle().Background(colorSurface0)

	menuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFocus).
			Padding(0, 1)
	menuItemStyle     = lipgloss.NewStyle().Foreground(colorText)
	menuSelectedStyle = lipgloss.NewStyle().Foreground(colorBase).Background(colorFocus)

	navCurrentStyle = lipgloss.NewStyle().Foreground(colorBrand).Bold(true)
	railStyle       = lipgloss.NewStyle().Foreground(colorMauve)
	chartStyle      = lipgloss.NewStyle().Foreground(colorPeach)
	axisStyle       = lipgloss.NewStyle().Foreground(colorSurface2)

	statusInfoStyle  = lipgloss.NewStyle().Foreground(colorInfo)
	statusErrorStyle = lipgloss.NewStyle().Foreground(colorError)
	statusWarnStyle  = lipgloss.NewStyle().Foreground(colorWarning)
	statusOKStyle    = lipgloss.NewStyle().Foreground(colorSuccess)
)

func statusStyle(k statusKind) lipgloss.Style {
	switch k {
	case statusError:
		return statusErrorStyle
	case statusWarn:
		return statusWarnStyle
	case statusOK:
		return statusOKStyle
	default:
		return statusInfoStyle
	}
}
