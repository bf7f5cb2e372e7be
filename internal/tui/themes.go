package tui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the TUI
type Theme struct {
	Name     string
	Primary  lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Faint    lipgloss.Color
	Accent   lipgloss.Color
	Running  lipgloss.Color
	Paused   lipgloss.Color
	Complete lipgloss.Color
	// Disk colors, smallest first; reused cyclically.
	Disks []lipgloss.Color
}

var (
	ThemeClassic = Theme{
		Name:     "classic",
		Primary:  lipgloss.Color("86"),
		Text:     lipgloss.Color("255"),
		Muted:    lipgloss.Color("242"),
		Faint:    lipgloss.Color("238"),
		Accent:   lipgloss.Color("213"),
		Running:  lipgloss.Color("82"),
		Paused:   lipgloss.Color("220"),
		Complete: lipgloss.Color("86"),
		Disks:    []lipgloss.Color{"203", "214", "220", "82", "44", "69", "141"},
	}

	ThemeRetro = Theme{
		Name:     "retro",
		Primary:  lipgloss.Color("#00ff00"), // green phosphor
		Text:     lipgloss.Color("#88ff88"),
		Muted:    lipgloss.Color("#00aa00"),
		Faint:    lipgloss.Color("#005500"),
		Accent:   lipgloss.Color("#ccffcc"),
		Running:  lipgloss.Color("#00ff00"),
		Paused:   lipgloss.Color("#ffff00"),
		Complete: lipgloss.Color("#88ff88"),
		Disks:    []lipgloss.Color{"#00ff00", "#22dd22", "#44bb44", "#66ff66", "#00cc00", "#88ff88", "#009900"},
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Primary:  lipgloss.Color("#00a8cc"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Faint:    lipgloss.Color("#224466"),
		Accent:   lipgloss.Color("#ffd700"),
		Running:  lipgloss.Color("#00ff88"),
		Paused:   lipgloss.Color("#ffcc00"),
		Complete: lipgloss.Color("#00a8cc"),
		Disks:    []lipgloss.Color{"#caf0f8", "#90e0ef", "#48cae4", "#00b4d8", "#0096c7", "#0077b6", "#023e8a"},
	}

	ThemeSunset = Theme{
		Name:     "sunset",
		Primary:  lipgloss.Color("#ff6b6b"), // coral
		Text:     lipgloss.Color("#fff5f5"),
		Muted:    lipgloss.Color("#8b6b8c"),
		Faint:    lipgloss.Color("#4d3b4e"),
		Accent:   lipgloss.Color("#ff9ff3"),
		Running:  lipgloss.Color("#5fd068"),
		Paused:   lipgloss.Color("#ffc048"),
		Complete: lipgloss.Color("#feca57"),
		Disks:    []lipgloss.Color{"#feca57", "#ff9f43", "#ff6b6b", "#ee5253", "#f368e0", "#c44569", "#6d214f"},
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeRetro,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func nextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return ThemeClassic
}

type styles struct {
	title    lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	faint    lipgloss.Style
	accent   lipgloss.Style
	running  lipgloss.Style
	paused   lipgloss.Style
	complete lipgloss.Style
	panel    lipgloss.Style
	disks    []lipgloss.Style
}

func newStyles(t Theme) styles {
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }

	s := styles{
		title:    fg(t.Primary).Bold(true),
		text:     fg(t.Text),
		muted:    fg(t.Muted),
		faint:    fg(t.Faint),
		accent:   fg(t.Accent),
		running:  fg(t.Running).Bold(true),
		paused:   fg(t.Paused).Bold(true),
		complete: fg(t.Complete).Bold(true),
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Faint).
			Padding(0, 1),
	}
	for _, c := range t.Disks {
		s.disks = append(s.disks, fg(c))
	}
	return s
}

func (s styles) disk(rank int) lipgloss.Style {
	if rank < 1 || len(s.disks) == 0 {
		return s.muted
	}
	return s.disks[(rank-1)%len(s.disks)]
}
