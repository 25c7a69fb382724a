package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/trailmap/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		return boxStyle.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay describes day relative to today, e.g. "Today", "In 3d", "2d ago".
func RelativeDay(day, today domain.Date) string {
	days := day.DaysSince(today)
	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0:
		return fmt.Sprintf("In %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// RelativeDayStyled colors RelativeDay: red when due or overdue, yellow
// within a week.
func RelativeDayStyled(day, today domain.Date) string {
	text := RelativeDay(day, today)
	days := day.DaysSince(today)
	switch {
	case days <= 0:
		return StyleRed.Render(text)
	case days <= 7:
		return StyleYellow.Render(text)
	default:
		return StyleFg.Render(text)
	}
}

// Marks renders a repetition count as filled and empty pips.
func Marks(earned, stages int) string {
	if stages <= 0 {
		return ""
	}
	earned = min(max(earned, 0), stages)
	return StyleGreen.Render(strings.Repeat("●", earned)) + StyleDim.Render(strings.Repeat("○", stages-earned))
}
