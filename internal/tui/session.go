package tui

import "sync"

var (
	sessionMu    sync.Mutex
	sessionLogin string
)

func setSessionLogin(login string) {
	sessionMu.Lock()
	sessionLogin = login
	sessionMu.Unlock()
}

func getSessionLogin() string {
	sessionMu.Lock()
	defer sessionMu.Unlock()
	return sessionLogin
}

func clearSessionLogin() {
	setSessionLogin("")
}
