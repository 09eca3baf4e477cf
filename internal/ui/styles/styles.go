// Package styles provides shared lipgloss styles for terminal output.
//
// This package centralizes color definitions so that command echo lines,
// warnings and status output stay visually consistent.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors used throughout the CLI.
var (
	// Error is used for drifted branches and error messages (red)
	Error lipgloss.TerminalColor = lipgloss.Color("196")

	// Muted is used for secondary text (gray)
	Muted lipgloss.TerminalColor = lipgloss.Color("240")
)

// Common styles
var (
	// Bold applies bold formatting, used for "[component] command" lines
	Bold = lipgloss.NewStyle().Bold(true)

	// ErrorStyle applies the error color
	ErrorStyle = lipgloss.NewStyle().Foreground(Error)

	// MutedStyle applies the muted color
	MutedStyle = lipgloss.NewStyle().Foreground(Muted)
)
