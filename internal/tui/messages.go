package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/peoplescope/peoplescope/models"
)

// NavigateTo switches the root router to another page. Payload, when set,
// is re-delivered as a message to the target page after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes an async sign-in attempt.
type LoginResult struct {
	User models.User
	Err  error
}

// RegisterResult finishes an async registration attempt.
type RegisterResult struct {
	Username string
	Err      error
}

// RegisterSuccessNotice is shown on the menu after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

type searchDoneMsg struct {
	resp      models.SearchResponse
	fromCache bool
	err       error
}

type profileDoneMsg struct {
	profile   models.Profile
	fromCache bool
	err       error
}

type versionLoadedMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	label string
}

type notificationsChangedMsg struct{}
