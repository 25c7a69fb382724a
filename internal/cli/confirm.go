package cli

import (
	"errors"

	"github.com/alexanderramin/trailmap/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var errNeedsConfirmation = errors.New("refusing to continue without confirmation: pass --yes in non-interactive sessions")

// confirm asks a yes/no question. Non-interactive sessions never proceed.
func confirm(app *App, title string) (bool, error) {
	if !app.interactive() {
		return false, errNeedsConfirmation
	}
	if app.Confirm != nil {
		return app.Confirm(title)
	}
	return HuhConfirm(title)
}

// HuhConfirm runs a one-question huh form.
func HuhConfirm(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithTheme(trailmapHuhTheme()).WithShowHelp(false).Run()
	return ok, err
}

func trailmapHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorRed).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
