package theme

import "github.com/charmbracelet/lipgloss"

var (
	// Green palette
	Green     = lipgloss.Color("#00FF41")
	MedGreen  = lipgloss.Color("#00C832")
	DarkGreen = lipgloss.Color("#008F11")
	DimGreen  = lipgloss.Color("#003B00")

	// Amber palette
	Amber     = lipgloss.Color("#FFB000")
	DarkAmber = lipgloss.Color("#B37400")
	DimAmber  = lipgloss.Color("#5C3C00")

	Cyan      = lipgloss.Color("#00D4AA")
	Red       = lipgloss.Color("#FF4136")
	Gold      = lipgloss.Color("#FFD700")
	LightGray = lipgloss.Color("#aaaaaa")
	White     = lipgloss.Color("#e0e0e0")
	Black     = lipgloss.Color("#0D0208")
)

// Theme bundles the styles both front ends render with.
type Theme struct {
	Name   string
	Accent lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor

	Title     lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Success   lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Help      lipgloss.Style
	Separator lipgloss.Style
	StatusBar lipgloss.Style
	Box       lipgloss.Style
}

// Named returns the theme for a config name. Unknown names get green.
func Named(name string) Theme {
	switch name {
	case "amber":
		return build("amber", Amber, DarkAmber, DimAmber)
	case "mono":
		return mono()
	default:
		return build("green", Green, DarkGreen, DimGreen)
	}
}

func build(name string, accent, mid, dim lipgloss.Color) Theme {
	return Theme{
		Name:   name,
		Accent: accent,
		Dim:    dim,

		Title: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(mid).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(White),

		Success: lipgloss.NewStyle().
			Foreground(accent).
			Bold(true),

		Warn: lipgloss.NewStyle().
			Foreground(Gold).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Help: lipgloss.NewStyle().
			Foreground(LightGray),

		Separator: lipgloss.NewStyle().
			Foreground(dim),

		StatusBar: lipgloss.NewStyle().
			Background(mid).
			Foreground(Black).
			Bold(true).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
	}
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	bold := lipgloss.NewStyle().Bold(true)
	return Theme{
		Name:      "mono",
		Accent:    lipgloss.NoColor{},
		Dim:       lipgloss.NoColor{},
		Title:     bold,
		Label:     bold,
		Value:     plain,
		Success:   bold,
		Warn:      bold,
		Error:     bold,
		Help:      plain.Faint(true),
		Separator: plain,
		StatusBar: bold.Reverse(true).Padding(0, 1),
		Box:       plain.Border(lipgloss.NormalBorder()).Padding(0, 1),
	}
}
