package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghpocket/ghpocket/internal/service"
	"github.com/ghpocket/ghpocket/models"
)

// SearchModel is the repository search page: a query input and a result
// list. The highlighted result's clone URL can be copied to the clipboard.
type SearchModel struct {
	ctx context.Context
	hub service.HubService

	query      textinput.Model
	searching  bool
	total      int
	items      []models.Repository
	idx        int
	status     string
	errMsg     string
}

func NewSearchModel(ctx context.Context, hub service.HubService) *SearchModel {
	query := textinput.New()
	query.Placeholder = "search query"
	query.CharLimit = 200
	query.Width = 48
	query.Focus()

	return &SearchModel{ctx: ctx, hub: hub, query: query}
}

func (m *SearchModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SearchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		m.searching = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.total = msg.result.TotalCount
		m.items = msg.result.Items
		m.idx = 0
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
		switch msg.String() {
		case "esc":
			if len(m.items) > 0 {
				m.items = nil
				m.total = 0
				m.query.Focus()
				return m, nil
			}
			m.status = ""
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "up", "k":
			if len(m.items) > 0 && m.idx > 0 {
				m.idx--
				return m, nil
			}
		case "down", "j":
			if len(m.items) > 0 && m.idx < len(m.items)-1 {
				m.idx++
				return m, nil
			}
		case "c":
			if repo, ok := m.current(); ok {
				return m, cmdCopyToClipboard(repo.CloneURL)
			}
		case "enter":
			if m.searching {
				return m, nil
			}
			query := strings.TrimSpace(m.query.Value())
			if query == "" {
				m.errMsg = "Query is required"
				return m, nil
			}
			m.searching = true
			m.errMsg = ""
			m.query.Blur()
			return m, m.cmdSearch(query)
		}
	}

	if len(m.items) == 0 {
		var cmd tea.Cmd
		m.query, cmd = m.query.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *SearchModel) View() string {
	var b strings.Builder

	b.WriteString("Query: ")
	b.WriteString(m.query.View())
	b.WriteString("\n")

	switch {
	case m.searching:
		b.WriteString("\nSearching...")
	case m.errMsg != "":
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg))
	case len(m.items) > 0:
		b.WriteString(fmt.Sprintf("\n%d results, showing %d\n\n", m.total, len(m.items)))
		for i, repo := range m.items {
			line := fmt.Sprintf("%-40s ★ %-6d %s", fitText(repo.FullName, 40), repo.Stars, fitText(repo.Description, 40))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	help := "enter: search │ esc: back"
	if len(m.items) > 0 {
		help = "↑/↓: move │ c: copy clone URL │ esc: new search"
	}
	return renderPage("SEARCH REPOSITORIES", strings.TrimRight(b.String(), "\n"), help)
}

func (m *SearchModel) current() (models.Repository, bool) {
	if m.idx < 0 || m.idx >= len(m.items) {
		return models.Repository{}, false
	}
	return m.items[m.idx], true
}

func (m *SearchModel) cmdSearch(query string) tea.Cmd {
	ctx := m.ctx
	hub := m.hub
	return func() tea.Msg {
		result, err := hub.Search(ctx, query)
		return searchDoneMsg{result: result, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return copyFailedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
