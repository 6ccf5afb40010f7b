package components

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/plankboard/plank/internal/tui/theme"
)

// DescriptionProps carries the detail-view description and its render width
type DescriptionProps struct {
	Description string
	Width       int
}

// Cache glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderDescription renders a project description as markdown for the detail
// overlay. Falls back to the raw text if rendering fails.
func RenderDescription(props DescriptionProps) string {
	if props.Description != "" {
		renderer, err := getRenderer(props.Width)
		if err == nil {
			rendered, err := renderer.Render(props.Description)
			if err == nil {
				return strings.TrimSpace(rendered)
			}
		}
		return props.Description
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true).
		Render("No description")
}
