package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░]  45%.
// Green from 67%, yellow from 34%, red below.
func RenderProgress(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if width < 2 {
		width = 2
	}

	filled := percent * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if percent < 34 {
		style = StyleRed
	} else if percent < 67 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), percent)
}
