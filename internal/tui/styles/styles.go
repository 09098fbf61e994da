package styles

import "github.com/charmbracelet/lipgloss"

// Theme is one named color palette. The UI cycles through Themes at
// runtime and persists the selection to config.
type Theme struct {
	Name     string
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Dim      lipgloss.Color
	Selected lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Error    lipgloss.Color
}

// Themes is the registry of selectable palettes
var Themes = []Theme{
	{
		Name:     "default",
		Accent:   lipgloss.Color("205"),
		Text:     lipgloss.Color("252"),
		Dim:      lipgloss.Color("241"),
		Selected: lipgloss.Color("57"),
		Success:  lipgloss.Color("42"),
		Warning:  lipgloss.Color("214"),
		Error:    lipgloss.Color("196"),
	},
	{
		Name:     "ocean",
		Accent:   lipgloss.Color("39"),
		Text:     lipgloss.Color("253"),
		Dim:      lipgloss.Color("245"),
		Selected: lipgloss.Color("24"),
		Success:  lipgloss.Color("35"),
		Warning:  lipgloss.Color("220"),
		Error:    lipgloss.Color("160"),
	},
	{
		Name:     "sakura",
		Accent:   lipgloss.Color("211"),
		Text:     lipgloss.Color("255"),
		Dim:      lipgloss.Color("244"),
		Selected: lipgloss.Color("132"),
		Success:  lipgloss.Color("114"),
		Warning:  lipgloss.Color("215"),
		Error:    lipgloss.Color("203"),
	},
	{
		Name:     "mono",
		Accent:   lipgloss.Color("255"),
		Text:     lipgloss.Color("250"),
		Dim:      lipgloss.Color("240"),
		Selected: lipgloss.Color("238"),
		Success:  lipgloss.Color("250"),
		Warning:  lipgloss.Color("250"),
		Error:    lipgloss.Color("255"),
	},
}

// IndexOf returns the position of a named theme, defaulting to 0
func IndexOf(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// Styles holds the rendered lipgloss styles for one theme
type Styles struct {
	Title        lipgloss.Style
	Prompt       lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Meta         lipgloss.Style
	Help         lipgloss.Style
	Lyric        lipgloss.Style
	Success      lipgloss.Style
	Warning      lipgloss.Style
	Error        lipgloss.Style
}

// New builds the style set for a theme
func New(t Theme) Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		Prompt:       lipgloss.NewStyle().Foreground(t.Accent),
		Item:         lipgloss.NewStyle().Foreground(t.Text),
		SelectedItem: lipgloss.NewStyle().Foreground(t.Text).Background(t.Selected).Bold(true),
		Meta:         lipgloss.NewStyle().Foreground(t.Dim),
		Help:         lipgloss.NewStyle().Foreground(t.Dim),
		Lyric:        lipgloss.NewStyle().Foreground(t.Text),
		Success:      lipgloss.NewStyle().Foreground(t.Success),
		Warning:      lipgloss.NewStyle().Foreground(t.Warning),
		Error:        lipgloss.NewStyle().Foreground(t.Error),
	}
}
