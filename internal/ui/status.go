package ui

import (
	"strings"

	"github.com/jjreview/jr/internal/model"
)

// RenderSyncStatus returns the colored glyph for a sync status.
func RenderSyncStatus(status model.SyncStatus) string {
	switch status {
	case model.StatusSynced:
		return StatusSyncedStyle.Render(status.String())
	case model.StatusChanged:
		return StatusChangedStyle.Render(status.String())
	case model.StatusRestack:
		return StatusRestackStyle.Render(status.String())
	default:
		return StatusUnknownStyle.Render(status.String())
	}
}

// RenderStatusLine renders one stack entry: status glyph, abbreviated change
// ID, and title. The working-copy change's title is bold. The line is
// truncated to the terminal width.
func RenderStatusLine(status model.SyncStatus, shortID, title string, current bool) string {
	titleStyle := TitleStyle
	if current {
		titleStyle = CurrentTitleStyle
	}

	// Truncate on runes, not bytes, so multibyte titles stay valid UTF-8.
	if max := GetTerminalWidth() - len(shortID) - 4; max > 1 {
		if runes := []rune(title); len(runes) > max {
			title = string(runes[:max-1]) + "…"
		}
	}

	line := RenderSyncStatus(status) + " " + ChangeIDStyle.Render(shortID)
	if title != "" {
		line += " " + titleStyle.Render(title)
	}
	return strings.TrimRight(line, " ")
}

// RenderPRURL renders a pull request URL as a dimmed, indented second line.
func RenderPRURL(url string) string {
	return Dim("  " + url)
}
