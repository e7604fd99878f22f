package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peoplescope/peoplescope/internal/notification"
	"github.com/peoplescope/peoplescope/internal/service"
	"github.com/peoplescope/peoplescope/internal/subscription"
	"github.com/peoplescope/peoplescope/models"
)

type screen int

const (
	screenSearch screen = iota
	screenProfile
	screenPlans
)

// mainLoopModel is the Bubble Tea model of the signed-in session. One model
// drives three screens (search, profile dashboard, plans) plus the toast
// overlay; which one renders is selected by the screen field.
type mainLoopModel struct {
	ctx      context.Context
	services *service.ClientServices

	subscriptions *subscription.Store
	notifications *notification.Queue
	notifyCh      chan struct{}

	user   models.User
	screen screen

	// search screen
	searchInput   textinput.Model
	spinner       spinner.Model
	searching     bool
	searched      bool
	resp          models.SearchResponse
	fromCache     bool
	idx           int
	serverVersion string

	// profile screen
	profile          models.Profile
	profileFromCache bool
	loadingProfile   bool
	fieldIdx         int

	logout bool
}

func newMainLoopModel(
	ctx context.Context,
	services *service.ClientServices,
	subscriptions *subscription.Store,
	notifications *notification.Queue,
	user models.User,
) mainLoopModel {
	input := textinput.New()
	input.Placeholder = "name, location, ..."
	input.CharLimit = 128
	input.Width = 44
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	// Queue mutations arrive from timer goroutines too; the buffered
	// channel collapses bursts into a single repaint.
	notifyCh := make(chan struct{}, 1)
	notifications.SetOnChange(func() {
		select {
		case notifyCh <- struct{}{}:
		default:
		}
	})

	return mainLoopModel{
		ctx:           ctx,
		services:      services,
		subscriptions: subscriptions,
		notifications: notifications,
		notifyCh:      notifyCh,
		user:          user,
		searchInput:   input,
		spinner:       s,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.waitNotifications(), m.cmdVersion())
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case notificationsChangedMsg:
		// Repaint only; the view reads the queue directly.
		return m, m.waitNotifications()

	case searchDoneMsg:
		m.searching = false
		m.searched = true
		if msg.err != nil {
			m.notifications.Error("Search failed", humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.resp = msg.resp
		m.fromCache = msg.fromCache
		m.idx = 0
		if msg.fromCache {
			m.notifications.Warning("Offline results", "Server unreachable, showing cached results")
		}
		return m, nil

	case profileDoneMsg:
		m.loadingProfile = false
		if msg.err != nil {
			m.notifications.Error("Profile unavailable", humanizeServerUnavailableError(msg.err))
			return m, nil
		}
		m.profile = msg.profile
		m.profileFromCache = msg.fromCache
		m.fieldIdx = 0
		m.screen = screenProfile
		if msg.fromCache {
			m.notifications.Warning("Offline profile", "Server unreachable, showing cached profile")
		}
		return m, nil

	case versionLoadedMsg:
		if msg.err == nil {
			m.serverVersion = msg.version
		}
		return m, nil

	case copiedMsg:
		m.notifications.Success("Copied", msg.label+" copied to clipboard")
		return m, nil

	case spinner.TickMsg:
		if !m.searching && !m.loadingProfile {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m mainLoopModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c quits from anywhere, even while the search input is focused.
	if msg.String() == "ctrl+c" {
		clearSessionLogin()
		return m, tea.Quit
	}

	// Subscription level changes work on every screen.
	switch {
	case key.Matches(msg, keys.upgrade):
		m.subscriptions.Upgrade()
		return m, nil
	case key.Matches(msg, keys.downgrade):
		m.subscriptions.Downgrade()
		return m, nil
	}

	switch m.screen {
	case screenProfile:
		return m.handleProfileKey(msg)
	case screenPlans:
		return m.handlePlansKey(msg)
	default:
		return m.handleSearchKey(msg)
	}
}

// ── search screen ─────────────────────────────────────────────────────────────

func (m mainLoopModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searchInput.Focused() {
		switch {
		case key.Matches(msg, keys.esc):
			m.searchInput.Blur()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.searching {
				return m, nil
			}
			query := strings.TrimSpace(m.searchInput.Value())
			if query == "" {
				return m, nil
			}
			m.services.SearchService.AddFilter(query)
			m.searchInput.SetValue("")
			m.searchInput.Blur()
			m.searching = true
			return m, tea.Batch(m.spinner.Tick, m.cmdSearch(query))
		}

		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		clearSessionLogin()
		return m, tea.Quit
	case key.Matches(msg, keys.logout):
		m.logout = true
		clearSessionLogin()
		return m, tea.Quit
	case key.Matches(msg, keys.search):
		m.searchInput.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.plans):
		m.screen = screenPlans
		return m, nil
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.idx < len(m.resp.Results)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(msg, keys.dropTag):
		m.dropNewestFilter()
		return m, nil
	case key.Matches(msg, keys.enter):
		person, ok := m.currentPerson()
		if !ok || m.loadingProfile {
			return m, nil
		}
		m.loadingProfile = true
		return m, tea.Batch(m.spinner.Tick, m.cmdProfile(person.ID))
	}

	return m, nil
}

func (m mainLoopModel) currentPerson() (models.Person, bool) {
	if len(m.resp.Results) == 0 || m.idx < 0 || m.idx >= len(m.resp.Results) {
		return models.Person{}, false
	}
	return m.resp.Results[m.idx], true
}

func (m *mainLoopModel) dropNewestFilter() {
	filters := m.services.SearchService.Filters()
	if len(filters) == 0 {
		return
	}
	last := filters[len(filters)-1]
	if !last.Removable {
		return
	}
	m.services.SearchService.RemoveFilter(last.ID)
}

// ── profile screen ────────────────────────────────────────────────────────────

func (m mainLoopModel) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.screen = screenSearch
		return m, nil
	case key.Matches(msg, keys.quit):
		clearSessionLogin()
		return m, tea.Quit
	case key.Matches(msg, keys.plans):
		m.screen = screenPlans
		return m, nil
	case key.Matches(msg, keys.up):
		if m.fieldIdx > 0 {
			m.fieldIdx--
		}
		return m, nil
	case key.Matches(msg, keys.down):
		if m.fieldIdx < len(m.profile.Fields)-1 {
			m.fieldIdx++
		}
		return m, nil
	case key.Matches(msg, keys.copyField):
		return m, m.copyCurrentField()
	}

	return m, nil
}

// copyCurrentField puts the selected field value on the system clipboard.
// Gated values never leave the process: the copy is refused with a warning
// toast instead of copying the placeholder.
func (m mainLoopModel) copyCurrentField() tea.Cmd {
	if m.fieldIdx < 0 || m.fieldIdx >= len(m.profile.Fields) {
		return nil
	}
	field := m.profile.Fields[m.fieldIdx]

	if !m.subscriptions.CanViewContent(field.RequiredLevel) {
		tier, _ := subscription.TierByLevel(field.RequiredLevel)
		m.notifications.Warning("Upgrade required", field.Label+" needs the "+tier.Name+" plan")
		return nil
	}

	return func() tea.Msg {
		if err := clipboard.WriteAll(field.Value); err != nil {
			m.notifications.Error("Copy failed", err.Error())
			return nil
		}
		return copiedMsg{label: field.Label}
	}
}

// ── plans screen ──────────────────────────────────────────────────────────────

func (m mainLoopModel) handlePlansKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		if m.profile.Person.ID != 0 && m.screenBeforePlansIsProfile() {
			m.screen = screenProfile
		} else {
			m.screen = screenSearch
		}
		return m, nil
	case key.Matches(msg, keys.quit):
		clearSessionLogin()
		return m, tea.Quit
	}

	return m, nil
}

// screenBeforePlansIsProfile approximates "where did the user come from":
// a loaded profile means plans was most likely opened from the dashboard.
func (m mainLoopModel) screenBeforePlansIsProfile() bool {
	return len(m.profile.Fields) > 0
}

// ── async commands ────────────────────────────────────────────────────────────

func (m mainLoopModel) waitNotifications() tea.Cmd {
	ch := m.notifyCh
	return func() tea.Msg {
		<-ch
		return notificationsChangedMsg{}
	}
}

func (m mainLoopModel) cmdSearch(query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SearchService

	return func() tea.Msg {
		resp, fromCache, err := svc.Search(ctx, query)
		return searchDoneMsg{resp: resp, fromCache: fromCache, err: err}
	}
}

func (m mainLoopModel) cmdProfile(personID int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.SearchService

	return func() tea.Msg {
		profile, fromCache, err := svc.GetProfile(ctx, personID)
		return profileDoneMsg{profile: profile, fromCache: fromCache, err: err}
	}
}

func (m mainLoopModel) cmdVersion() tea.Cmd {
	ctx := m.ctx
	svc := m.services.AppInfoService

	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return versionLoadedMsg{version: version, err: err}
	}
}

// ── view ──────────────────────────────────────────────────────────────────────

func (m mainLoopModel) View() string {
	var page string
	switch m.screen {
	case screenProfile:
		page = m.viewProfile()
	case screenPlans:
		page = m.viewPlans()
	default:
		page = m.viewSearch()
	}

	toasts := renderToasts(m.notifications.Active())
	if toasts == "" {
		return page
	}
	return toasts + "\n" + page
}
