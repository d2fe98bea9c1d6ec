package tui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeanpaul/rolodex/internal/theme"
)

func newDelegate(th theme.Theme) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(th.Accent).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(th.Accent).
		PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(theme.LightGray)
	return d
}

func styleList(l *list.Model, th theme.Theme, title string) {
	l.Title = title
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.Styles.Title = th.Title.MarginLeft(2)
	// q and esc belong to the outer model
	l.KeyMap.Quit.SetEnabled(false)
}

// formTheme tints the register form to match the session theme.
func formTheme(th theme.Theme) *huh.Theme {
	if th.Name == "mono" {
		return huh.ThemeBase()
	}
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(th.Accent)
	t.Focused.Base = t.Focused.Base.BorderForeground(th.Accent)
	t.Focused.ErrorMessage = th.Error
	t.Focused.ErrorIndicator = th.Error
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(th.Accent)
	return t
}

// glamourStyle picks the markdown style for the details card.
func glamourStyle(th theme.Theme) string {
	if th.Name == "mono" {
		return "notty"
	}
	return "dark"
}
