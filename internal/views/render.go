package views

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Palette holds the per-theme colors the chrome styles derive from.
type Palette struct {
	Header lipgloss.Color
	Status lipgloss.Color
	Error  lipgloss.Color
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

var (
	lightPalette = Palette{
		Header: lipgloss.Color("4"),
		Status: lipgloss.Color("2"),
		Error:  lipgloss.Color("1"),
		Muted:  lipgloss.Color("8"),
		Accent: lipgloss.Color("5"),
	}
	darkPalette = Palette{
		Header: lipgloss.Color("12"),
		Status: lipgloss.Color("10"),
		Error:  lipgloss.Color("9"),
		Muted:  lipgloss.Color("8"),
		Accent: lipgloss.Color("13"),
	}
)

func PaletteFor(theme string) Palette {
	if theme == "dark" {
		return darkPalette
	}
	return lightPalette
}

type AppData struct {
	Theme       string
	Header      string
	LeftPane    string
	RightPane   string
	StatusLine  string
	StatusError bool
	Palette     string
	Footer      string
}

func RenderApp(data AppData) string {
	pal := PaletteFor(data.Theme)
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(pal.Header)
	statusStyle := lipgloss.NewStyle().Foreground(pal.Status)
	errorStyle := lipgloss.NewStyle().Foreground(pal.Error)
	panelStyle := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	footerStyle := lipgloss.NewStyle().Foreground(pal.Muted)

	left := panelStyle.Width(58).Render(data.LeftPane)
	right := panelStyle.Width(58).Render(data.RightPane)
	row := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	status := statusStyle.Render(data.StatusLine)
	if data.StatusError {
		status = errorStyle.Render(data.StatusLine)
	}

	lines := []string{
		headerStyle.Render(data.Header),
		row,
		status,
	}
	if data.Palette != "" {
		lines = append(lines, panelStyle.Render(data.Palette))
	}
	if data.Footer != "" {
		lines = append(lines, footerStyle.Render(data.Footer))
	}
	return strings.Join(lines, "\n")
}

// RenderMarkdown runs glamour over the advisor text. Render failures fall
// back to the plain string.
func RenderMarkdown(md string, theme string) string {
	if strings.TrimSpace(md) == "" {
		return ""
	}
	style := "light"
	if theme == "dark" {
		style = "dark"
	}
	out, err := glamour.Render(md, style)
	if err != nil {
		return md
	}
	return strings.TrimSpace(out)
}
