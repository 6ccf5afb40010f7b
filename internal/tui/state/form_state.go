package state

import (
	"github.com/charmbracelet/huh"
)

// FormState manages the project creation form: the huh form instance and
// its bound field values. Field values survive a failed validation so the
// user can correct them.
type FormState struct {
	// projectForm is the huh form instance, nil outside ProjectFormMode
	projectForm *huh.Form

	// Bound field values. People is kept as the raw input string until
	// submission, matching the numeric-text input it comes from.
	title       string
	description string
	people      string
	confirm     bool
}

// NewFormState creates a new FormState with default values
func NewFormState() *FormState {
	return &FormState{
		confirm: true,
	}
}

// ProjectForm returns the current form instance (nil if no form is open)
func (s *FormState) ProjectForm() *huh.Form {
	return s.projectForm
}

// SetProjectForm installs a form instance
func (s *FormState) SetProjectForm(form *huh.Form) {
	s.projectForm = form
}

// Title returns a pointer to the bound title value for huh
func (s *FormState) Title() *string {
	return &s.title
}

// Description returns a pointer to the bound description value for huh
func (s *FormState) Description() *string {
	return &s.description
}

// People returns a pointer to the bound people value for huh
func (s *FormState) People() *string {
	return &s.people
}

// Confirm returns a pointer to the bound confirm value for huh
func (s *FormState) Confirm() *bool {
	return &s.confirm
}

// Reset clears every field and drops the form instance.
// Called after a successful submission or an explicit cancel, never after a
// validation failure.
func (s *FormState) Reset() {
	s.projectForm = nil
	s.title = ""
	s.description = ""
	s.people = ""
	s.confirm = true
}

// CloseForm drops the form instance but keeps the field values, so a
// reopened form shows the rejected input for correction
func (s *FormState) CloseForm() {
	s.projectForm = nil
}
