package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ktr0731/go-fuzzyfinder"
)

func init() {
	// Force lipgloss to detect the terminal before the fuzzy finder starts,
	// so ANSI escape sequences don't leak into the finder input.
	_ = lipgloss.NewStyle().Render("")
	_ = lipgloss.HasDarkBackground()
}

// SelectBranch presents a fuzzy finder over branch names. Returns the
// selected branch, or "" if the user cancelled.
func SelectBranch(branches []string) (string, error) {
	os.Stdout.Sync()
	os.Stderr.Sync()

	idx, err := fuzzyfinder.Find(
		branches,
		func(i int) string { return branches[i] },
	)
	if err != nil {
		// User cancelled (Ctrl+C or ESC)
		return "", nil
	}
	return branches[idx], nil
}
