// Package tui implements the terminal user interface of the peoplescope
// client on top of Bubble Tea.
//
// The interface is split into two independent Bubble Tea programs. The
// authentication flow (menu, login, register) runs first and produces the
// signed-in user; the main loop (search, profile dashboard, plans) runs
// after it. Subscription gating and toast notifications are pure client
// session state owned by this package's models.
package tui
