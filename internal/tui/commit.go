package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghpocket/ghpocket/internal/service"
)

// CommitModel is the quick-commit form: one message input and a push
// toggle. An empty message commits with the default message.
type CommitModel struct {
	ctx  context.Context
	repo service.RepoService

	message    textinput.Model
	push       bool
	submitting bool
	status     string
	errMsg     string
}

func NewCommitModel(ctx context.Context, repo service.RepoService) *CommitModel {
	message := textinput.New()
	message.Placeholder = "commit message (empty for default)"
	message.CharLimit = 200
	message.Width = 48
	message.Focus()

	return &CommitModel{ctx: ctx, repo: repo, message: message, push: true}
}

func (m *CommitModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CommitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case commitDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.out
		m.message.SetValue("")
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			m.status = ""
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab":
			m.push = !m.push
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.submitting = true
			m.status = ""
			m.errMsg = ""
			return m, m.cmdCommit(strings.TrimSpace(m.message.Value()), m.push)
		}
	}

	var cmd tea.Cmd
	m.message, cmd = m.message.Update(msg)
	return m, cmd
}

func (m *CommitModel) View() string {
	var b strings.Builder

	b.WriteString("Message: ")
	b.WriteString(m.message.View())
	b.WriteString("\nPush:    ")
	if m.push {
		b.WriteString("[x] push to origin after commit")
	} else {
		b.WriteString("[ ] commit only")
	}

	if m.submitting {
		b.WriteString("\n\nCommitting...")
	}
	if m.status != "" {
		b.WriteString("\n\nOK: " + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\n" + errorStyle.Render("Error: "+m.errMsg))
	}

	return renderPage("QUICK COMMIT & PUSH", b.String(), "enter: commit │ tab: toggle push │ esc: back")
}

func (m *CommitModel) cmdCommit(message string, push bool) tea.Cmd {
	ctx := m.ctx
	repo := m.repo
	return func() tea.Msg {
		out, err := repo.QuickCommit(ctx, message, push)
		return commitDoneMsg{out: out, err: err}
	}
}
