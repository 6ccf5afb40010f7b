// Package huhforms builds the huh forms used by the board.
package huhforms

import (
	"github.com/charmbracelet/huh"

	"github.com/plankboard/plank/internal/models"
)

// NewProjectForm creates a huh form for adding a new project.
// The form uses pointers to update values in place; people stays a numeric
// string until submission. Validation of the submitted values happens in the
// submit handler, not field by field.
func NewProjectForm(
	title *string,
	description *string,
	people *string,
	confirm *bool,
) *huh.Form {
	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter project title...").
			CharLimit(models.MaxTitleLength).
			Value(title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("What is this project about?").
			CharLimit(500).
			Lines(3).
			Value(description),

		huh.NewInput().
			Key("people").
			Title("People").
			Placeholder("Team size (0-5)...").
			CharLimit(3).
			Value(people),

		huh.NewConfirm().
			Key("confirm").
			Title("Add this project?").
			Affirmative("Yes").
			Negative("No").
			Value(confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(NewKeyMapWithShiftEnter()).WithShowHelp(false)
}
