// Package app is the newsdesk Bubble Tea model and the controller it drives.
package app

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/newsdesk/internal/api"
	"github.com/zhubert/newsdesk/internal/config"
	"github.com/zhubert/newsdesk/internal/logger"
	"github.com/zhubert/newsdesk/internal/session"
	"github.com/zhubert/newsdesk/internal/ui"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string

	screen     *ui.Screen
	controller *Controller

	ctx    context.Context
	cancel context.CancelFunc

	width  int
	height int
}

// New creates the model for a backend client. The saved theme is applied
// before any component renders.
func New(cfg *config.Config, client api.Client, version string) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	ui.SetThemeByName(cfg.GetTheme())

	ctx, cancel := context.WithCancel(context.Background())
	suggestions := cfg.GetSuggestions()
	screen := ui.NewScreen(suggestions, cfg.GetDefaultSearchLimit())
	state := session.New()

	screen.Header().SetServer(cfg.GetServerURL())
	screen.Header().SetSessionID(state.ID())

	m := &Model{
		config:  cfg,
		version: version,
		screen:  screen,
		ctx:     ctx,
		cancel:  cancel,
	}
	m.controller = NewController(ctx, client, screen, state, ControllerOptions{
		Suggestions:   suggestions,
		Notifications: cfg.GetNotificationsEnabled(),
	})

	logger.Info("App model created: server=%s session=%s version=%s", cfg.GetServerURL(), state.ID(), version)
	return m
}

// Controller returns the controller the model drives.
func (m *Model) Controller() *Controller {
	return m.controller
}

// Screen returns the model's screen.
func (m *Model) Screen() *ui.Screen {
	return m.screen
}

// Init loads the week list, which in turn loads this week's news.
func (m *Model) Init() tea.Cmd {
	return m.controller.LoadWeeks()
}

// Close cancels every in-flight request.
func (m *Model) Close() {
	if m.cancel != nil {
		m.cancel()
	}
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.Close()
	return m, tea.Quit
}
