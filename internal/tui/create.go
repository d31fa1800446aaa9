package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghpocket/ghpocket/internal/service"
	"github.com/ghpocket/ghpocket/models"
)

// CreateModel is the new-repository form: name, optional description, and a
// visibility toggle. After creation the page shows the clone URL so the new
// repository can be cloned straight from the clone page.
type CreateModel struct {
	ctx context.Context
	hub service.HubService

	inputs     []textinput.Model
	focus      int
	private    bool
	submitting bool
	created    *models.Repository
	status     string
	errMsg     string
}

func NewCreateModel(ctx context.Context, hub service.HubService) *CreateModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "repository name"
	nameInput.CharLimit = 100
	nameInput.Width = 48
	nameInput.Focus()

	descInput := textinput.New()
	descInput.Placeholder = "description (optional)"
	descInput.CharLimit = 200
	descInput.Width = 48

	return &CreateModel{
		ctx:    ctx,
		hub:    hub,
		inputs: []textinput.Model{nameInput, descInput},
	}
}

func (m *CreateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		repo := msg.repo
		m.created = &repo
		m.inputs[m.focus].Blur()
		return m, nil

	case copiedMsg:
		m.status = "Copied!"
		return m, cmdClearStatus()

	case copyFailedMsg:
		m.errMsg = humanizeNetworkError(msg.err)
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		if m.created != nil {
			return m.updateResult(msg)
		}
		return m.updateForm(msg)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CreateModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
	case "ctrl+p":
		m.private = !m.private
		return m, nil
	case "enter":
		if m.submitting {
			return m, nil
		}
		name := strings.TrimSpace(m.inputs[0].Value())
		if name == "" {
			m.errMsg = "Repository name is required"
			return m, nil
		}
		m.submitting = true
		m.status = ""
		m.errMsg = ""
		return m, m.cmdCreate(name, strings.TrimSpace(m.inputs[1].Value()), m.private)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *CreateModel) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		return m, cmdCopyToClipboard(m.created.CloneURL)
	case "n":
		m.created = nil
		m.status = ""
		m.errMsg = ""
		m.inputs[0].SetValue("")
		m.inputs[1].SetValue("")
		m.private = false
		m.focus = 0
		m.inputs[0].Focus()
		return m, textinput.Blink
	case "esc":
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}
	return m, nil
}

func (m *CreateModel) View() string {
	if m.created != nil {
		return m.viewResult()
	}

	var b strings.Builder

	b.WriteString("Name:        ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\nDescription: ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\nVisibility:  ")
	if m.private {
		b.WriteString("[x] private")
	} else {
		b.WriteString("[ ] public")
	}

	if m.submitting {
		b.WriteString("\n\nCreating...")
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.errMsg))
	}

	return renderPage("CREATE REPOSITORY", b.String(), "enter: create │ tab: next field │ ctrl+p: toggle private │ esc: back")
}

func (m *CreateModel) viewResult() string {
	var b strings.Builder

	b.WriteString("OK: Repository created\n\n")
	b.WriteString("Name:      " + m.created.FullName + "\n")
	b.WriteString("Clone URL: " + m.created.CloneURL)

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.errMsg))
	}

	return renderPage("CREATE REPOSITORY", b.String(), "c: copy clone URL │ n: create another │ esc: back")
}

func (m *CreateModel) cmdCreate(name, description string, private bool) tea.Cmd {
	ctx := m.ctx
	hub := m.hub
	return func() tea.Msg {
		repo, err := hub.CreateRepo(ctx, name, description, private)
		return createDoneMsg{repo: repo, err: err}
	}
}
