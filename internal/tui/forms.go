package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/plankboard/plank/internal/models"
	"github.com/plankboard/plank/internal/tui/huhforms"
	"github.com/plankboard/plank/internal/tui/state"
	"github.com/plankboard/plank/internal/validation"
)

// openProjectForm builds a fresh form around the current field values and
// switches to ProjectFormMode. After a validation failure the values still
// hold the rejected input, so the user gets their text back for correction.
func (m Model) openProjectForm() (tea.Model, tea.Cmd) {
	form := huhforms.NewProjectForm(
		m.formState.Title(),
		m.formState.Description(),
		m.formState.People(),
		m.formState.Confirm(),
	).WithTheme(huhforms.NewTheme(m.config.ColorScheme))

	if w := m.uiState.Width() / 2; w > 0 {
		form = form.WithWidth(w)
	}

	m.formState.SetProjectForm(form)
	m.uiState.SetMode(state.ProjectFormMode)
	return m, form.Init()
}

// handleFormMode routes messages to the huh form while it is open
func (m Model) handleFormMode(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		// Cancel: drop the form and everything typed into it
		m.formState.Reset()
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	form := m.formState.ProjectForm()
	if form == nil {
		m.uiState.SetMode(state.NormalMode)
		return m, nil
	}

	updated, cmd := form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.formState.SetProjectForm(f)
		form = f
	}

	if form.State == huh.StateCompleted {
		if !*m.formState.Confirm() {
			m.formState.Reset()
			m.uiState.SetMode(state.NormalMode)
			return m, nil
		}
		return m.submitProject(), nil
	}

	return m, cmd
}

// handleInvalidInputMode handles the blocking validation warning.
// Any key dismisses it and reopens the form with the rejected input intact.
func (m Model) handleInvalidInputMode(_ tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m.openProjectForm()
}

// submitProject validates the submitted fields and either adds the project
// or raises the blocking warning. The two outcomes are mutually exclusive:
// no partial submission exists.
func (m Model) submitProject() Model {
	title := strings.TrimSpace(*m.formState.Title())
	description := strings.TrimSpace(*m.formState.Description())
	peopleRaw := strings.TrimSpace(*m.formState.People())

	people, parseErr := strconv.Atoi(peopleRaw)

	titleOK := validation.Validate(title, validation.Rules{
		Required: true,
	})
	descriptionOK := validation.Validate(description, validation.Rules{
		Required:  true,
		MinLength: validation.MinLen(models.MinDescriptionLength),
	})
	peopleOK := peopleRaw != "" && parseErr == nil && validation.Validate(people, validation.Rules{
		Required: true,
		Min:      validation.Bound(models.MinPeople),
		Max:      validation.Bound(models.MaxPeople),
	})

	if !titleOK || !descriptionOK || !peopleOK {
		// Keep the field values; only the form instance is dropped
		m.formState.CloseForm()
		m.uiState.SetMode(state.InvalidInputMode)
		return m
	}

	m.store.Add(title, description, people)
	m.formState.Reset()
	m.uiState.SetMode(state.NormalMode)

	// Select the new card at the end of the active lane
	m.uiState.SetSelectedLane(0)
	active := m.appState.Lane(models.StatusActive)
	if len(active) > 0 {
		m.uiState.SetSelectedCard(len(active) - 1)
		m.ensureCardVisible(0)
	}

	return m
}
