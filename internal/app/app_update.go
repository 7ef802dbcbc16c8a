package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/newsdesk/internal/clipboard"
	"github.com/zhubert/newsdesk/internal/keys"
	"github.com/zhubert/newsdesk/internal/logger"
	"github.com/zhubert/newsdesk/internal/ui"
	"github.com/zhubert/newsdesk/internal/ui/modals"
)

// Update is the Bubble Tea update function.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyPressMsg:
		if result, cmd := m.handleKeyPress(msg); result != nil {
			return result, cmd
		}
		// Not a shortcut: fall through to the active panel

	case ChatResultMsg:
		m.controller.HandleChatResult(msg)
		m.screen.Header().SetSessionID(m.controller.Session().ID())
		return m, nil

	case SummaryResultMsg:
		m.controller.HandleSummaryResult(msg)
		return m, nil

	case SearchResultMsg:
		m.controller.HandleSearchResult(msg)
		return m, nil

	case NewsResultMsg:
		m.controller.HandleNewsResult(msg)
		return m, nil

	case WeeksResultMsg:
		cmd := m.controller.HandleWeeksResult(msg)
		if msg.Err != nil {
			return m, tea.Batch(cmd, m.ShowFlashWarning("Could not load weeks; showing all articles"))
		}
		return m, cmd

	case TabActivatedMsg:
		return m, m.controller.HandleTabActivated(msg)

	case ui.FlashTickMsg:
		if m.screen.Footer().ClearIfExpired() {
			return m, nil
		}
		if m.screen.Footer().HasFlash() {
			return m, ui.FlashTick()
		}
		return m, nil

	case ui.LoadingTickMsg:
		return m, m.screen.Update(msg)
	}

	if m.screen.Modal().IsVisible() {
		_, cmd := m.screen.Modal().Update(msg)
		return m, cmd
	}
	return m, m.screen.Update(msg)
}

// handleKeyPress returns a nil model when the key should go to the active panel.
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	logger.Log("App: KeyPressMsg received: key=%q, tab=%s, modalVisible=%v", key, m.screen.ActiveTab(), m.screen.Modal().IsVisible())

	if key == keys.CtrlC {
		return m.quit()
	}

	if m.screen.Modal().IsVisible() {
		return m.handleModalKey(msg)
	}

	if result, cmd, handled := m.ExecuteShortcut(key); handled {
		return result, cmd
	}
	return nil, nil
}

// handleModalKey handles the confirm and dismiss keys of every modal and
// forwards the rest to the modal's own state.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	modal := m.screen.Modal()

	switch msg.String() {
	case keys.Escape:
		modal.Hide()
		return m, nil

	case keys.Enter:
		switch state := modal.State.(type) {
		case *modals.SearchOptionsState:
			return m.applySearchOptions(state)
		case *modals.SettingsState:
			return m.saveSettings(state)
		default:
			modal.Hide()
			return m, nil
		}
	}

	_, cmd := modal.Update(msg)
	return m, cmd
}

func (m *Model) applySearchOptions(state *modals.SearchOptionsState) (tea.Model, tea.Cmd) {
	week := state.Week()
	label := week
	for _, w := range m.screen.News().Weeks() {
		if w.Value == week {
			label = w.Label
			break
		}
	}
	m.screen.Search().SetOptions(week, label, state.Limit())
	m.screen.Modal().Hide()
	logger.Info("Search options changed: week=%s limit=%d", week, state.Limit())
	return m, nil
}

func (m *Model) saveSettings(state *modals.SettingsState) (tea.Model, tea.Cmd) {
	if state.ThemeChanged() {
		ui.SetThemeByName(state.GetSelectedTheme())
		m.config.SetTheme(string(ui.CurrentThemeName()))
	}
	m.config.SetNotificationsEnabled(state.NotificationsEnabled)
	m.controller.SetNotifications(state.NotificationsEnabled)

	if err := m.config.Save(); err != nil {
		logger.Error("Failed to save settings: %v", err)
		m.screen.Modal().SetError("Could not save settings: " + err.Error())
		return m, nil
	}

	m.screen.Modal().Hide()
	return m, m.ShowFlashSuccess("Settings saved")
}

// switchTab activates tab through the controller.
func (m *Model) switchTab(tab ui.Tab) tea.Cmd {
	if err := m.controller.SwitchTab(string(tab)); err != nil {
		logger.Error("Failed to switch tab: %v", err)
		return m.ShowFlashError(err.Error())
	}
	return nil
}

// selectedCard returns the highlighted search result or news article.
func (m *Model) selectedCard() (ui.Card, bool) {
	switch m.screen.ActiveTab() {
	case ui.TabSearch:
		return m.screen.Search().Selected()
	case ui.TabNews:
		return m.screen.News().Selected()
	}
	return ui.Card{}, false
}

func (m *Model) copyToClipboard(text string) tea.Cmd {
	if err := clipboard.WriteText(text); err != nil {
		logger.Warn("Clipboard write failed: %v", err)
		return m.ShowFlashError("Failed to copy to clipboard")
	}
	return m.ShowFlashSuccess("Link copied")
}

// cycleWeek moves the news week selector and loads the new week.
func (m *Model) cycleWeek(delta int) (tea.Model, tea.Cmd) {
	if !m.screen.News().CycleWeek(delta) {
		return m, nil
	}
	return m, m.controller.LoadNewsForWeek()
}
