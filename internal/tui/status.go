package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghpocket/ghpocket/internal/service"
)

// StatusModel shows the porcelain status of the working directory and can
// pull from the remote.
type StatusModel struct {
	ctx  context.Context
	repo service.RepoService

	loading bool
	pulling bool
	out     string
	errMsg  string
}

func NewStatusModel(ctx context.Context, repo service.RepoService) *StatusModel {
	return &StatusModel{ctx: ctx, repo: repo}
}

func (m *StatusModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdStatus()
}

func (m *StatusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.out = msg.out
		if strings.TrimSpace(m.out) == "" {
			m.out = "Working tree clean"
		}
		return m, nil

	case pullDoneMsg:
		m.pulling = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.out = msg.out
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "r":
			m.loading = true
			m.errMsg = ""
			return m, m.cmdStatus()
		case "p":
			if m.pulling {
				return m, nil
			}
			m.pulling = true
			m.errMsg = ""
			return m, m.cmdPull()
		}
	}

	return m, nil
}

func (m *StatusModel) View() string {
	body := m.out
	switch {
	case m.loading:
		body = "Loading status..."
	case m.pulling:
		body = "Pulling..."
	case m.errMsg != "":
		body = errorStyle.Render("Error: " + m.errMsg)
	}

	return renderPage("GIT STATUS", body, "r: refresh │ p: pull │ esc: back")
}

func (m *StatusModel) cmdStatus() tea.Cmd {
	ctx := m.ctx
	repo := m.repo
	return func() tea.Msg {
		out, err := repo.Status(ctx)
		return statusLoadedMsg{out: out, err: err}
	}
}

func (m *StatusModel) cmdPull() tea.Cmd {
	ctx := m.ctx
	repo := m.repo
	return func() tea.Msg {
		out, err := repo.Pull(ctx)
		return pullDoneMsg{out: out, err: err}
	}
}
