package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghpocket/ghpocket/internal/service"
)

// CloneModel is the clone form: repository (URL or owner/repo shorthand)
// and an optional target directory.
type CloneModel struct {
	ctx  context.Context
	repo service.RepoService

	inputs     []textinput.Model
	focus      int
	submitting bool
	status     string
	errMsg     string
}

func NewCloneModel(ctx context.Context, repo service.RepoService) *CloneModel {
	repoInput := textinput.New()
	repoInput.Placeholder = "owner/repo or full URL"
	repoInput.CharLimit = 200
	repoInput.Width = 48
	repoInput.Focus()

	dirInput := textinput.New()
	dirInput.Placeholder = "target directory (optional)"
	dirInput.CharLimit = 200
	dirInput.Width = 48

	return &CloneModel{
		ctx:    ctx,
		repo:   repo,
		inputs: []textinput.Model{repoInput, dirInput},
	}
}

func (m *CloneModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CloneModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cloneDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Cloned into " + msg.dir
		m.inputs[0].SetValue("")
		m.inputs[1].SetValue("")
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.status = ""
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab", "shift+tab":
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			url := strings.TrimSpace(m.inputs[0].Value())
			if url == "" {
				m.errMsg = "Repository is required"
				return m, nil
			}
			m.submitting = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdClone(url, strings.TrimSpace(m.inputs[1].Value()))
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CloneModel) View() string {
	var b strings.Builder

	b.WriteString("Repository: ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nDirectory:  ")
	b.WriteString(m.inputs[1].View())

	if m.submitting {
		b.WriteString("\n\nCloning...")
	}
	if m.status != "" {
		b.WriteString("\n\nOK: " + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.errMsg))
	}

	return renderPage("CLONE REPOSITORY", b.String(), "enter: clone │ tab: next field │ esc: back")
}

func (m *CloneModel) cmdClone(url, dir string) tea.Cmd {
	ctx := m.ctx
	repo := m.repo
	return func() tea.Msg {
		cloneDir, err := repo.QuickClone(ctx, url, dir)
		return cloneDoneMsg{dir: cloneDir, err: err}
	}
}
