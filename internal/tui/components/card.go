package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/plankboard/plank/internal/models"
	"github.com/plankboard/plank/internal/tui/theme"
)

// RenderCard renders a single project as a card
//
//	┌───────────────────────┐
//	│ {Title}               │
//	│ 3 persons assigned    │
//	│ {description preview} │
//	└───────────────────────┘
//
// This has a fixed width and height.
func RenderCard(project models.Project, selected bool) string {
	var bg string
	if selected {
		bg = theme.SelectedBg
	} else {
		bg = theme.CardBg
	}

	title := renderCardTitle(project, bg)
	people := renderCardPeople(project, bg)
	preview := renderCardPreview(project, bg)
	content := title + "\n" + people + "\n" + preview

	style := CardStyle.
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg))
	if selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}

	return style.Render(content)
}

// PeopleLabel returns the pluralized team size text shown on cards
func PeopleLabel(people int) string {
	if people == 1 {
		return "1 person assigned"
	}
	return fmt.Sprintf("%d persons assigned", people)
}

func renderCardTitle(project models.Project, bg string) string {
	title := truncate(project.Title, cardTitleMaxLength)
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(theme.Normal)).
		Background(lipgloss.Color(bg)).
		Render(title)
}

func renderCardPeople(project models.Project, bg string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Highlight)).
		Background(lipgloss.Color(bg)).
		Render(PeopleLabel(project.People))
}

func renderCardPreview(project models.Project, bg string) string {
	if project.Description == "" {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Background(lipgloss.Color(bg)).
			Italic(true).
			Render("no description")
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Background(lipgloss.Color(bg)).
		Render(truncate(project.Description, cardDescriptionMaxLength))
}

// truncate cuts s at max runes and marks the cut with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}
