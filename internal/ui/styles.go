package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue
	ColorAccent  = lipgloss.Color("#06B6D4") // Cyan
	ColorMuted   = lipgloss.Color("#9CA3AF") // Gray
)

// Message styles
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorError)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	DimStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
)

// Status line styles
var (
	ChangeIDStyle     = lipgloss.NewStyle().Foreground(ColorAccent)
	TitleStyle        = lipgloss.NewStyle()
	CurrentTitleStyle = lipgloss.NewStyle().Bold(true)

	StatusSyncedStyle  = lipgloss.NewStyle().Foreground(ColorSuccess)
	StatusChangedStyle = lipgloss.NewStyle().Foreground(ColorError)
	StatusRestackStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	StatusUnknownStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)
