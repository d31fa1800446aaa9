package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghpocket/ghpocket/models"
)

func TestCreateModel_EmptyNameRejected(t *testing.T) {
	m := NewCreateModel(context.Background(), nil)

	updated, cmd := m.Update(keyPress("enter"))
	assert.Nil(t, cmd)
	assert.Contains(t, updated.(*CreateModel).View(), "Repository name is required")
}

func TestCreateModel_TogglePrivate(t *testing.T) {
	m := NewCreateModel(context.Background(), nil)
	assert.Contains(t, m.View(), "[ ] public")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Contains(t, updated.(*CreateModel).View(), "[x] private")
}

func TestCreateModel_SuccessShowsCloneURL(t *testing.T) {
	m := NewCreateModel(context.Background(), nil)

	updated, _ := m.Update(createDoneMsg{repo: models.Repository{
		FullName: "octocat/notes",
		CloneURL: "https://github.com/octocat/notes.git",
	}})

	view := updated.(*CreateModel).View()
	assert.Contains(t, view, "Repository created")
	assert.Contains(t, view, "octocat/notes")
	assert.Contains(t, view, "https://github.com/octocat/notes.git")
	assert.Contains(t, view, "c: copy clone URL")
}

func TestCreateModel_NewFormAfterSuccess(t *testing.T) {
	m := NewCreateModel(context.Background(), nil)

	updated, _ := m.Update(createDoneMsg{repo: models.Repository{FullName: "octocat/notes"}})
	model := updated.(*CreateModel)
	require.NotNil(t, model.created)

	updated, _ = model.Update(keyPress("n"))
	model = updated.(*CreateModel)
	assert.Nil(t, model.created)
	assert.Contains(t, model.View(), "CREATE REPOSITORY")
}

func TestCreateModel_ErrorShown(t *testing.T) {
	m := NewCreateModel(context.Background(), nil)

	updated, _ := m.Update(createDoneMsg{err: errors.New("dial tcp: connection refused")})

	view := updated.(*CreateModel).View()
	assert.Contains(t, view, "Network unavailable")
}
