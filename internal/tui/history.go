package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghpocket/ghpocket/internal/service"
	"github.com/ghpocket/ghpocket/models"
)

// historyPageLimit caps the number of entries shown on the history page.
const historyPageLimit = 20

// HistoryModel lists recorded commands and the clone registry.
type HistoryModel struct {
	ctx  context.Context
	repo service.RepoService

	loading bool
	entries []models.HistoryEntry
	clones  []models.CloneRecord
	errMsg  string
}

func NewHistoryModel(ctx context.Context, repo service.RepoService) *HistoryModel {
	return &HistoryModel{ctx: ctx, repo: repo}
}

func (m *HistoryModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.entries = msg.entries
		m.clones = msg.clones
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "r":
			m.loading = true
			m.errMsg = ""
			return m, m.cmdLoad()
		}
	}

	return m, nil
}

func (m *HistoryModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading history...")
	case m.errMsg != "":
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
	case len(m.entries) == 0 && len(m.clones) == 0:
		b.WriteString("No commands recorded yet")
	default:
		b.WriteString(titleStyle.Render("Recent commands") + "\n")
		for _, e := range m.entries {
			b.WriteString(fmt.Sprintf("%s  %-7s %s", e.CreatedAt.Format("2006-01-02 15:04"), e.Kind, fitText(e.Subject, 44)))
			if e.Detail != "" {
				b.WriteString("  (" + fitText(e.Detail, 24) + ")")
			}
			b.WriteString("\n")
		}
		if len(m.clones) > 0 {
			b.WriteString("\n" + titleStyle.Render("Cloned repositories") + "\n")
			for _, c := range m.clones {
				b.WriteString(fmt.Sprintf("%-30s → %s\n", fitText(c.Directory, 30), fitText(c.URL, 48)))
			}
		}
	}

	return renderPage("HISTORY", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}

func (m *HistoryModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	repo := m.repo
	return func() tea.Msg {
		entries, err := repo.RecentHistory(ctx, historyPageLimit)
		if err != nil {
			return historyLoadedMsg{err: err}
		}
		clones, err := repo.RecentClones(ctx)
		return historyLoadedMsg{entries: entries, clones: clones, err: err}
	}
}
