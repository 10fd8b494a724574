// Package ui holds the color themes used by giftcalc's terminal output: ANSI
// escape codes for report text and lipgloss styles for the details table.
// The active theme is chosen once at startup with InitTheme.
package ui
