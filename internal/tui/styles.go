package tui

import "github.com/charmbracelet/lipgloss"

var (
	convoyOrange     = lipgloss.Color("#EB5A2D")
	neonViolet       = lipgloss.Color("#A13BF1")
	midnightAsphalt  = lipgloss.Color("#0F0C1A")
	twilightSurface  = lipgloss.Color("#1E1B2E")
	routeGlow        = lipgloss.Color("#FF9C00")
	liveSignalGreen  = lipgloss.Color("#00E28A")
	heroTextColor    = lipgloss.Color("#fff4d0")
	mutedTextColor   = lipgloss.Color("244")
	errorTextColor   = lipgloss.Color("9")
	shadowTextColor  = lipgloss.Color("#110600")
	statusTextColor  = lipgloss.Color("#0f0f0f")
	keyDescTextColor = lipgloss.Color("#e0def4")

	sectionHeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(routeGlow)
	blockHeadingStyle    = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor)
	errorStyle           = lipgloss.NewStyle().Foreground(errorTextColor)
	successStyle         = lipgloss.NewStyle().Foreground(liveSignalGreen)
	helperStyle          = lipgloss.NewStyle().Foreground(mutedTextColor)
	searchHighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("190"))
	searchCurrentStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("229"))

	heroBadgeStyle = lipgloss.NewStyle().Bold(true).Foreground(midnightAsphalt).Background(routeGlow).Padding(0, 1)
	heroTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(convoyOrange)
	taglineStyle   = lipgloss.NewStyle().Foreground(neonViolet).Italic(true)

	metricValueStyle = lipgloss.NewStyle().Bold(true).Foreground(convoyOrange)
	metricLabelStyle = lipgloss.NewStyle().Foreground(heroTextColor)
	metricsBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(neonViolet).Padding(0, 1)

	formBoxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(convoyOrange).Background(twilightSurface).Padding(0, 1)
	formLabelStyle     = lipgloss.NewStyle().Foreground(heroTextColor)
	formFocusedStyle   = lipgloss.NewStyle().Bold(true).Foreground(routeGlow)
	formRequiredMarker = lipgloss.NewStyle().Foreground(convoyOrange).Render("*")

	statusBarStyle = lipgloss.NewStyle().Foreground(statusTextColor).Background(lipgloss.Color("#8ecae6")).Padding(0, 1)
	keyStyle       = lipgloss.NewStyle().Bold(true).Foreground(statusTextColor).Background(lipgloss.Color("#ffd166")).Padding(0, 1)
	keyDescStyle   = lipgloss.NewStyle().Foreground(keyDescTextColor)
	legendBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#56526e")).Padding(1, 2)
	helpBoxStyle   = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(neonViolet).Padding(1, 2)

	logoFaceStyle      = lipgloss.NewStyle().Bold(true).Foreground(heroTextColor).Background(convoyOrange)
	logoShadowStyle    = lipgloss.NewStyle().Foreground(shadowTextColor)
	logoContainerStyle = lipgloss.NewStyle().Padding(0, 1)
	logoArtLines       = []string{
		" ██████╗   ██████╗   ███╗   ██╗  ██╗   ██╗   ██████╗   ██╗   ██╗  ",
		"██╔════╝  ██╔═══██╗  ████╗  ██║  ██║   ██║  ██╔═══██╗  ╚██╗ ██╔╝  ",
		"██║       ██║   ██║  ██╔██╗ ██║  ██║   ██║  ██║   ██║   ╚████╔╝   ",
		"██║       ██║   ██║  ██║╚██╗██║  ╚██╗ ██╔╝  ██║   ██║    ╚██╔╝    ",
		"╚██████╗  ╚██████╔╝  ██║ ╚████║   ╚████╔╝   ╚██████╔╝     ██║     ",
		" ╚═════╝   ╚═════╝   ╚═╝  ╚═══╝    ╚═══╝     ╚═════╝      ╚═╝     ",
	}
)
