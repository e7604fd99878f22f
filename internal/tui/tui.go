package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/peoplescope/peoplescope/internal/logger"
	"github.com/peoplescope/peoplescope/internal/notification"
	"github.com/peoplescope/peoplescope/internal/service"
	"github.com/peoplescope/peoplescope/internal/subscription"
	"github.com/peoplescope/peoplescope/internal/utils"
	"github.com/peoplescope/peoplescope/models"
)

// ErrUserQuit is returned when the user leaves the program from the
// authentication flow instead of signing in.
var ErrUserQuit = errors.New("user quit the program")

var errNoServicesProvided = errors.New("no client services provided")

// TUI owns the terminal interface and the per-session display state: the
// toast notification queue and the subscription level store. Both start
// fresh on every run; nothing here is persisted.
type TUI struct {
	services      *service.ClientServices
	notifications *notification.Queue
	subscriptions *subscription.Store
	buildInfo     models.AppBuildInfo

	logger *logger.Logger
}

// New wires the session display state: the notification queue feeds the
// toast overlay, and the subscription store announces level changes through
// that same queue.
func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}

	queue := notification.NewQueue(utils.NewUUIDGenerator(), logger)

	return &TUI{
		services:      services,
		notifications: queue,
		subscriptions: subscription.NewStore(queue, logger),
		buildInfo:     buildInfo,
		logger:        logger,
	}, nil
}

// LoginFlow runs the authentication program (menu, login, register) and
// blocks until the user signs in or quits. On success the returned user is
// the server-confirmed account and the transport adapter already holds the
// session token.
func (t *TUI) LoginFlow(ctx context.Context) (models.User, error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(),
		"login":    NewLoginModel(ctx, t.services.AuthService),
		"register": NewRegisterModel(ctx, t.services.AuthService),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.User{}, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.User{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.User{}, ErrUserQuit
	}

	return result.resultUser, nil
}

// MainLoop runs the signed-in program: search, profile dashboards, filter
// tags, the plans screen and the toast overlay. It blocks until the user
// quits or logs out; logout reports which of the two happened.
func (t *TUI) MainLoop(ctx context.Context, user models.User) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.services, t.subscriptions, t.notifications, user)
	program := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, runErr := program.Run()

	// Detach the repaint hook so a late timer cannot write into a dead
	// program.
	t.notifications.SetOnChange(nil)

	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
