package ui

import (
	"os"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a palette of ANSI escape codes for report text plus the lipgloss
// color used for the details table.
type Theme struct {
	Name string

	// Primary highlights strategy names; Secondary highlights paths.
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Bold      string
	Underline string
	Reset     string

	// Accent colors table borders and headers.
	Accent lipgloss.TerminalColor
}

// DefaultThemeName is selected when no theme is configured.
const DefaultThemeName = "dark"

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",
		Secondary: "\033[38;5;245m",
		Success:   "\033[38;5;82m",
		Warning:   "\033[38;5;220m",
		Error:     "\033[38;5;196m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Accent:    lipgloss.Color("#FF8C00"),
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",
		Secondary: "\033[38;5;240m",
		Success:   "\033[38;5;28m",
		Warning:   "\033[38;5;130m",
		Error:     "\033[38;5;160m",
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
		Accent:    lipgloss.Color("#005FAF"),
	}

	// NoColorTheme leaves every code empty.
	NoColorTheme = Theme{
		Name:   "none",
		Accent: lipgloss.NoColor{},
	}

	themes = []Theme{DarkTheme, LightTheme, NoColorTheme}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// ThemeNames lists the selectable theme names.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for _, t := range themes {
		names = append(names, t.Name)
	}
	return names
}

// LookupTheme returns the theme called name.
func LookupTheme(name string) (Theme, bool) {
	i := slices.IndexFunc(themes, func(t Theme) bool { return t.Name == name })
	if i < 0 {
		return Theme{}, false
	}
	return themes[i], true
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// InitTheme activates the theme called name. noColor, or a NO_COLOR
// environment variable (https://no-color.org/), forces NoColorTheme; an
// unknown or empty name falls back to DarkTheme.
func InitTheme(name string, noColor bool) {
	t, ok := LookupTheme(name)
	if !ok {
		t = DarkTheme
	}
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		t = NoColorTheme
	}

	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}
