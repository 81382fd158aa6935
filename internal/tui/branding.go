package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

const AppName = "elide"

// ASCII art logo lines for elide - canonical definition
var LogoLines = []string{
	"       ██   ██       ██",
	" ▄███▄ ██   ▄▄ ▄███▄ ██ ▄███▄",
	" ██▄██ ██   ██ ██ ██ ██ ██▄██",
	" ██▄▄▄ ██▄▄ ██ ██▄██ ██ ██▄▄▄",
	"  ▀▀▀   ▀▀▀ ▀▀  ▀▀▀  ▀▀  ▀▀▀",
}

const CompactLogo = "elide ›"

// Banner gradient colors
var BannerColors = []lipgloss.Color{
	lipgloss.Color("#FF6B6B"),
	lipgloss.Color("#FFA86B"),
	lipgloss.Color("#95E1D3"),
	lipgloss.Color("#4ECDC4"),
	lipgloss.Color("#FF6B6B"),
}

// Brand colors inspired by time progression
// Dawn -> Day -> Dusk -> Night
var (
	// Primary colors - gradient from dawn to day
	PrimaryColor   = lipgloss.Color("#FF6B6B") // Warm coral - dawn
	SecondaryColor = lipgloss.Color("#4ECDC4") // Teal - morning
	AccentColor    = lipgloss.Color("#95E1D3") // Mint - fresh start

	// UI colors
	BackgroundColor = lipgloss.Color("#1A1A2E") // Deep night
	SurfaceColor    = lipgloss.Color("#16213E") // Midnight blue
	TextColor       = lipgloss.Color("#EAEAEA") // Soft white
	MutedColor      = lipgloss.Color("#94A3B8") // Muted gray-blue

	// Status colors
	HighlightColor = lipgloss.Color("#FFE66D") // Bright yellow - emphasis
	ErrorColor     = lipgloss.Color("#EF4444") // Red
	SuccessColor   = lipgloss.Color("#10B981") // Green
)

// Styled components
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Bold(true).
			Padding(0, 2)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 1)

	HelpStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	StatusSuccessStyle = lipgloss.NewStyle().
				Foreground(SuccessColor)

	StatusWarnStyle = lipgloss.NewStyle().
			Foreground(HighlightColor)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor).
				Bold(true)

	// Document list styles
	DocTitleStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)

	// The interactive "show more / show less" control under a preview
	ToggleControlStyle = lipgloss.NewStyle().
				Foreground(AccentColor).
				Bold(true).
				Underline(true)

	// Empty style for resetting
	EmptyStyle = lipgloss.NewStyle()
)

// ContentWrapper returns a style for wrapping content with width and height constraints
func ContentWrapper(width, height int) lipgloss.Style {
	return EmptyStyle.Width(width).Height(height).MaxHeight(height)
}

func GetWelcomeMessage() string {
	return GetCompactBanner("Press ctrl+n to add your first document")
}

func GetCompactBanner(message string) string {
	// Use the canonical logo lines
	var coloredLines []string
	for _, line := range LogoLines {
		coloredLines = append(coloredLines, LogoStyle.Render(line))
	}

	logo := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		logo,
		"",
		HelpStyle.Render(message),
	)
}

func ShowBanner(version string) string {
	// Start with the canonical logo lines and add empty line
	lines := make([]string, len(LogoLines)+1)
	copy(lines, LogoLines)
	lines[len(LogoLines)] = ""

	// Dynamic version tagline
	versionTag := version
	if versionTag != "" && versionTag != "dev" {
		// prefix with 'v' if not already prefixed
		if versionTag[0] != 'v' && versionTag[0] != 'V' {
			versionTag = "v" + versionTag
		}
		lines = append(lines, fmt.Sprintf("   Document viewer %s", versionTag))
	} else {
		lines = append(lines, "   Document viewer")
	}

	// Apply gradient coloring to each line
	var coloredLines []string
	for i, line := range lines {
		if line == "" {
			coloredLines = append(coloredLines, line)
			continue
		}

		// Pick color based on line index
		colorIdx := i % len(BannerColors)
		style := lipgloss.NewStyle().
			Foreground(BannerColors[colorIdx]).
			Bold(i < len(LogoLines))

		coloredLines = append(coloredLines, style.Render(line))
	}

	banner := lipgloss.JoinVertical(lipgloss.Center, coloredLines...)

	return lipgloss.NewStyle().
		Width(70).
		Align(lipgloss.Center).
		MarginBottom(1).
		Render(banner)
}
