package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style a roadmap node is drawn with.
func StatusStyle(status domain.StatusClass) lipgloss.Style {
	switch status {
	case domain.StatusCompleted, domain.StatusTrainingCompleted:
		return StyleGreen
	case domain.StatusTrainingPending:
		return StyleYellow
	default:
		return StyleFg
	}
}

// StatusIcon returns the marker drawn in front of a roadmap node.
func StatusIcon(status domain.StatusClass) string {
	switch status {
	case domain.StatusCompleted, domain.StatusTrainingCompleted:
		return StyleGreen.Render("✔")
	case domain.StatusTrainingPending:
		return StyleYellow.Render("◐")
	default:
		return StyleDim.Render("○")
	}
}

// KindBadge labels a project kind.
func KindBadge(kind domain.ProjectKind) string {
	if kind == domain.KindTraining {
		return StylePurple.Render("training")
	}
	return StyleBlue.Render("ordinary")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
