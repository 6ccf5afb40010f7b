package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/plankboard/plank/internal/tui/theme"
)

// StatusBarProps carries everything the status bar needs to render
type StatusBarProps struct {
	Width         int
	TotalCount    int
	ActiveCount   int
	FinishedCount int
}

// RenderStatusBar renders the bottom status bar with project counts and the
// help hint
func RenderStatusBar(props StatusBarProps) string {
	counts := fmt.Sprintf("%d projects · %d active · %d finished",
		props.TotalCount, props.ActiveCount, props.FinishedCount)
	hint := "? help · q quit"

	bar := StatusBarStyle.Render(counts)
	hintRendered := StatusBarStyle.Render(hint)

	gap := props.Width - lipgloss.Width(bar) - lipgloss.Width(hintRendered)
	if gap < 1 {
		return bar
	}

	filler := lipgloss.NewStyle().
		Background(lipgloss.Color(theme.StatusBarBg)).
		Render(spaces(gap))

	return bar + filler + hintRendered
}

func spaces(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = ' '
	}
	return string(out)
}
