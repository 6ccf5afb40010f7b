package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/plankboard/plank/internal/models"
	"github.com/plankboard/plank/internal/tui/theme"
)

// RenderLane renders a complete lane with its header and cards
//
// Layout:
//
//	{Lane Title} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
//
// Parameters:
//   - status: the status this lane is bound to
//   - projects: the lane's filtered, order-preserving project subset
//   - selected: whether this lane is currently selected
//   - selectedCardIdx: index of the selected card in this lane (-1 if not
//     this lane)
//   - height: fixed outer height for the lane (0 for auto)
//   - scrollOffset: index of the first visible card
func RenderLane(status models.Status, projects []models.Project, selected bool, selectedCardIdx int, height int, scrollOffset int) string {
	header := fmt.Sprintf("%s (%d)", status.LaneTitle(), len(projects))
	content := TitleStyle.Render(header) + "\n"

	if len(projects) == 0 {
		content += EmptyLaneStyle.Render("No projects")
	} else {
		// Lane overhead: border top(1) + bottom(1), header(1), top
		// indicator(1), bottom indicator(1)
		const laneOverhead = 5
		maxVisibleCards := (height - laneOverhead) / CardHeight
		if height <= 0 {
			// Auto height: no viewport, every card renders
			maxVisibleCards = len(projects)
		} else if maxVisibleCards < 1 {
			maxVisibleCards = 1
		}

		// Always reserve a line for the top indicator so cards don't jump
		if scrollOffset > 0 {
			content += IndicatorStyle.Render("▲ more above") + "\n"
		} else {
			content += "\n"
		}

		endIdx := scrollOffset + maxVisibleCards
		if endIdx > len(projects) {
			endIdx = len(projects)
		}
		visible := projects[scrollOffset:endIdx]

		var cards []string
		for i, p := range visible {
			actualIdx := scrollOffset + i
			cards = append(cards, RenderCard(p, selected && actualIdx == selectedCardIdx))
		}
		content += strings.Join(cards, "\n")

		if endIdx < len(projects) {
			content += "\n" + IndicatorStyle.Render("▼ more below")
		}
	}

	style := LaneStyle
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets the
		// content area height
		style = style.Height(height - 2)
	}

	return style.Render(content)
}
