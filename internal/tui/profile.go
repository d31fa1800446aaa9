package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghpocket/ghpocket/internal/service"
	"github.com/ghpocket/ghpocket/models"
)

// profileRepoLimit caps the dashboard's recent-repository list.
const profileRepoLimit = 5

// ProfileModel is the dashboard page: the stored profile next to what the
// API reports for the configured credential, plus the most recently pushed
// repositories of the account.
type ProfileModel struct {
	ctx     context.Context
	hub     service.HubService
	profile models.Profile

	loading bool
	account models.AccountInfo
	limits  models.RateLimit
	repos   []models.Repository
	errMsg  string
}

func NewProfileModel(ctx context.Context, hub service.HubService, profile models.Profile) *ProfileModel {
	return &ProfileModel{ctx: ctx, hub: hub, profile: profile}
}

func (m *ProfileModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return m.cmdLoad()
}

func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeNetworkError(msg.err)
			return m, nil
		}
		m.account = msg.account
		m.limits = msg.limits
		m.repos = msg.repos
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

func (m *ProfileModel) View() string {
	var b strings.Builder

	notifications := "off"
	if m.profile.Notifications {
		notifications = "on"
	}
	b.WriteString("Account:       " + valueOrNA(m.profile.Account) + "\n")
	b.WriteString("Profile since: " + valueOrNA(m.profile.CreatedAt) + "\n")
	b.WriteString("Notifications: " + notifications + "\n")

	switch {
	case m.loading:
		b.WriteString("\nLoading account info...")
	case m.errMsg != "":
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg))
	case m.account.Login != "":
		b.WriteString("\nAPI login:     " + m.account.Login + "\n")
		b.WriteString("Name:          " + valueOrNA(m.account.Name) + "\n")
		b.WriteString(fmt.Sprintf("Public repos:  %d\n", m.account.PublicRepos))
		b.WriteString(fmt.Sprintf("Rate limit:    %d/%d, resets %s",
			m.limits.Remaining, m.limits.Limit,
			time.Unix(m.limits.Reset, 0).Format("15:04:05")))

		if len(m.repos) > 0 {
			b.WriteString("\n\nRecent repositories:\n")
			repos := m.repos
			if len(repos) > profileRepoLimit {
				repos = repos[:profileRepoLimit]
			}
			for _, repo := range repos {
				b.WriteString("• " + fitText(repo.FullName, 44))
				if repo.Description != "" {
					b.WriteString(" - " + fitText(repo.Description, 40))
				}
				b.WriteString("\n")
			}
		}
	}

	return renderPage("MY PROFILE", strings.TrimRight(b.String(), "\n"), "r: refresh │ esc: back")
}

func (m *ProfileModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	hub := m.hub
	return func() tea.Msg {
		account, err := hub.WhoAmI(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		limits, err := hub.Limits(ctx)
		if err != nil {
			return profileLoadedMsg{err: err}
		}
		// the repository list decorates the dashboard; a failure here must
		// not blank out the account summary
		repos, _ := hub.MyRepos(ctx)
		return profileLoadedMsg{account: account, limits: limits, repos: repos}
	}
}
