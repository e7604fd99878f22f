package client

import (
	"context"
	"errors"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/service"
	"github.com/peoplescope/peoplescope/internal/tui"
	"github.com/peoplescope/peoplescope/internal/workers"
)

var errIncompleteApp = errors.New("client app is missing services or UI")

// App glues the client services, the terminal UI and the background
// workers into one runnable process.
type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp assembles the client application from pre-built parts. workers
// may be nil when no background maintenance is configured.
func NewApp(services *service.ClientServices, ui *tui.TUI, workers *workers.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errIncompleteApp
	}

	return &App{
		services: services,
		tui:      ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run drives the session lifecycle: sign in, main loop, and on logout a
// fresh sign-in with the same process state. Background workers span the
// whole lifetime, not a single session, so the cache keeps getting pruned
// between logins too.
func (a *App) Run() error {
	if a.workers != nil {
		a.workers.Run()
		defer a.workers.Stop()
	}

	ctx := context.Background()

	for {
		user, err := a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				a.logger.Info().Msg("user quit before signing in")
				return nil
			}
			return err
		}

		a.logger.Info().Str("login", user.Login).Msg("user signed in")

		logout, err := a.tui.MainLoop(ctx, user)
		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		a.logger.Info().Str("login", user.Login).Msg("user logged out")
	}
}
