package ui

import "github.com/charmbracelet/lipgloss"

// ColorReset returns the escape code that clears formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed returns the error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen returns the success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow returns the warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue returns the primary color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorCyan returns the secondary color.
func ColorCyan() string { return GetCurrentTheme().Secondary }

// ColorBold returns the bold escape code.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline escape code.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// HeaderStyle returns the lipgloss style for table headers under the
// current theme.
func HeaderStyle() lipgloss.Style {
	t := GetCurrentTheme()
	s := lipgloss.NewStyle().Padding(0, 1)
	if t.Name == NoColorTheme.Name {
		return s
	}
	return s.Bold(true).Foreground(t.Accent)
}

// CellStyle returns the lipgloss style for table cells.
func CellStyle() lipgloss.Style {
	return lipgloss.NewStyle().Padding(0, 1)
}

// BorderStyle returns the lipgloss style for table borders.
func BorderStyle() lipgloss.Style {
	t := GetCurrentTheme()
	if t.Name == NoColorTheme.Name {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(t.Accent)
}
