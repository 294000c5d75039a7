package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette (green theme default)
	Accent       = lipgloss.Color("#00FF41")
	BrightAccent = lipgloss.Color("#39FF14")
	DarkAccent   = lipgloss.Color("#008F11")
	DimAccent    = lipgloss.Color("#003B00")
	Black        = lipgloss.Color("#0D0208")
	MidGray      = lipgloss.Color("#3a3a4e")
	LightGray    = lipgloss.Color("#aaaaaa")
	White        = lipgloss.Color("#e0e0e0")
	Red          = lipgloss.Color("#FF4136")
	Gold         = lipgloss.Color("#FFD700")
)

// SetTheme swaps the accent palette. Styles are rebuilt afterwards,
// so call it before constructing a model.
func SetTheme(name string) {
	switch name {
	case "amber":
		Accent = lipgloss.Color("#FFB000")
		BrightAccent = lipgloss.Color("#FFD000")
		DarkAccent = lipgloss.Color("#B87A00")
		DimAccent = lipgloss.Color("#4A3200")
	case "mono":
		Accent = lipgloss.Color("#CCCCCC")
		BrightAccent = lipgloss.Color("#FFFFFF")
		DarkAccent = lipgloss.Color("#888888")
		DimAccent = lipgloss.Color("#444444")
	}
	rebuildStyles()
}

var (
	TitleStyle    lipgloss.Style
	StatusStyle   lipgloss.Style
	StatusBarInfo lipgloss.Style
	LabelStyle    lipgloss.Style
	RowStyle      lipgloss.Style
	RowIDStyle    lipgloss.Style
	InputStyle    lipgloss.Style
	ConfirmStyle  lipgloss.Style
	ErrorStyle    lipgloss.Style
	WarnStyle     lipgloss.Style
	OKStyle       lipgloss.Style
	HelpStyle     lipgloss.Style
	BannerStyle   lipgloss.Style
)

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().
		Foreground(BrightAccent).
		Bold(true)

	StatusStyle = lipgloss.NewStyle().
		Background(DarkAccent).
		Foreground(Black).
		Bold(true).
		Padding(0, 1)

	StatusBarInfo = lipgloss.NewStyle().
		Foreground(LightGray)

	LabelStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)

	RowStyle = lipgloss.NewStyle().
		Foreground(White)

	RowIDStyle = lipgloss.NewStyle().
		Foreground(DarkAccent)

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Accent).
		Padding(0, 1)

	ConfirmStyle = lipgloss.NewStyle().
		Foreground(Gold).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(Red).
		Bold(true)

	WarnStyle = lipgloss.NewStyle().
		Foreground(Gold)

	OKStyle = lipgloss.NewStyle().
		Foreground(BrightAccent)

	HelpStyle = lipgloss.NewStyle().
		Foreground(DimAccent)

	BannerStyle = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
}

func init() { rebuildStyles() }

const Banner = `
  ██████╗  ██████╗ ██╗      ██████╗ ██████╗ ███████╗██╗  ██╗
  ██╔══██╗██╔═══██╗██║     ██╔═══██╗██╔══██╗██╔════╝╚██╗██╔╝
  ██████╔╝██║   ██║██║     ██║   ██║██║  ██║█████╗   ╚███╔╝
  ██╔══██╗██║   ██║██║     ██║   ██║██║  ██║██╔══╝   ██╔██╗
  ██║  ██║╚██████╔╝███████╗╚██████╔╝██████╔╝███████╗██╔╝ ██╗
  ╚═╝  ╚═╝ ╚═════╝ ╚══════╝ ╚═════╝ ╚═════╝ ╚══════╝╚═╝  ╚═╝
`
