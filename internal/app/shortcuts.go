package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/newsdesk/internal/keys"
	"github.com/zhubert/newsdesk/internal/logger"
	"github.com/zhubert/newsdesk/internal/ui"
	"github.com/zhubert/newsdesk/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for key dispatch and the help modal.
type Shortcut struct {
	Keys        []string                            // Key strings that trigger the shortcut
	DisplayKey  string                              // Display name in help; defaults to the first key
	Description string                              // Human-readable description
	Category    string                              // Section for help modal grouping
	Tabs        []ui.Tab                            // Tabs the shortcut applies to; empty means all
	Handler     func(m *Model) (tea.Model, tea.Cmd) // Action to perform
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryGeneral = "General"
	CategoryChat    = "Chat"
	CategorySummary = "Summary"
	CategorySearch  = "Search"
	CategoryNews    = "News"
)

var categoryOrder = []string{
	CategoryGeneral,
	CategoryChat,
	CategorySummary,
	CategorySearch,
	CategoryNews,
}

// Tabs whose panels take no text input, so plain letters can be shortcuts.
var letterTabs = []ui.Tab{ui.TabSummary, ui.TabNews}

// ShortcutRegistry lists every executable shortcut.
var ShortcutRegistry = []Shortcut{
	// General
	{Keys: []string{keys.Tab}, Description: "Next tab", Category: CategoryGeneral, Handler: shortcutNextTab},
	{Keys: []string{keys.ShiftTab}, Description: "Previous tab", Category: CategoryGeneral, Handler: shortcutPrevTab},
	{Keys: []string{keys.AltComma}, Description: "Settings", Category: CategoryGeneral, Handler: shortcutSettings},
	{Keys: []string{"q"}, Description: "Quit", Category: CategoryGeneral, Tabs: letterTabs, Handler: shortcutQuit},

	// Chat
	{Keys: []string{keys.Enter}, Description: "Send message", Category: CategoryChat, Tabs: []ui.Tab{ui.TabChat}, Handler: shortcutSend},
	{
		Keys:        []string{keys.Alt1, keys.Alt2, keys.Alt3, keys.Alt4},
		DisplayKey:  "alt+1..4",
		Description: "Send a suggested question",
		Category:    CategoryChat,
		Tabs:        []ui.Tab{ui.TabChat},
	},

	// Summary
	{Keys: []string{keys.Enter, "g"}, DisplayKey: "enter/g", Description: "Generate weekly summary", Category: CategorySummary, Tabs: []ui.Tab{ui.TabSummary}, Handler: shortcutGenerate},

	// Search
	{Keys: []string{keys.Enter}, Description: "Run search", Category: CategorySearch, Tabs: []ui.Tab{ui.TabSearch}, Handler: shortcutSearch},
	{Keys: []string{keys.CtrlO}, Description: "Week filter and result limit", Category: CategorySearch, Tabs: []ui.Tab{ui.TabSearch}, Handler: shortcutSearchOptions},
	{Keys: []string{keys.CtrlA}, Description: "Ask about selected result", Category: CategorySearch, Tabs: []ui.Tab{ui.TabSearch}, Handler: shortcutAskAbout},
	{Keys: []string{keys.CtrlY}, Description: "Copy link of selected result", Category: CategorySearch, Tabs: []ui.Tab{ui.TabSearch}, Handler: shortcutCopyLink},

	// News
	{Keys: []string{keys.Left, "h"}, DisplayKey: "←/h", Description: "Previous week", Category: CategoryNews, Tabs: []ui.Tab{ui.TabNews}, Handler: shortcutPrevWeek},
	{Keys: []string{keys.Right, "l"}, DisplayKey: "→/l", Description: "Next week", Category: CategoryNews, Tabs: []ui.Tab{ui.TabNews}, Handler: shortcutNextWeek},
	{Keys: []string{"r", keys.CtrlR}, DisplayKey: "r", Description: "Reload articles", Category: CategoryNews, Tabs: []ui.Tab{ui.TabNews}, Handler: shortcutRefreshNews},
	{Keys: []string{"a", keys.CtrlA}, DisplayKey: "a", Description: "Ask about selected article", Category: CategoryNews, Tabs: []ui.Tab{ui.TabNews}, Handler: shortcutAskAbout},
	{Keys: []string{"y", keys.CtrlY}, DisplayKey: "y", Description: "Copy link of selected article", Category: CategoryNews, Tabs: []ui.Tab{ui.TabNews}, Handler: shortcutCopyLink},
}

// helpShortcut is defined outside the registry because its handler reads the registry.
// "?" only works where it would not be typed into an input; f1 works everywhere.
var helpShortcut = Shortcut{
	Keys:        []string{"?", keys.F1},
	DisplayKey:  "?/f1",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but handled by the panels themselves.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "ctrl+c", Description: "Quit", Category: CategoryGeneral},
	{DisplayKey: "shift+enter", Description: "Insert newline", Category: CategoryChat},
	{DisplayKey: "pgup/pgdn", Description: "Scroll transcript", Category: CategoryChat},
	{DisplayKey: "pgup/pgdn", Description: "Scroll summary", Category: CategorySummary},
	{DisplayKey: "↑/↓", Description: "Select result", Category: CategorySearch},
	{DisplayKey: "↑/↓ or j/k", Description: "Select article", Category: CategoryNews},
}

func (s Shortcut) displayKey() string {
	if s.DisplayKey != "" {
		return s.DisplayKey
	}
	if len(s.Keys) > 0 {
		return s.Keys[0]
	}
	return ""
}

func (s Shortcut) appliesTo(tab ui.Tab) bool {
	return len(s.Tabs) == 0 || slices.Contains(s.Tabs, tab)
}

// ExecuteShortcut finds and runs the shortcut bound to key on the active tab.
// Returns false when no applicable shortcut exists, so the key can fall
// through to the active panel.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	tab := m.screen.ActiveTab()

	if key == keys.F1 || (key == "?" && slices.Contains(letterTabs, tab)) {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	if i := keys.SuggestionIndex(key); i >= 0 && tab == ui.TabChat {
		return m, m.controller.UseSuggestion(i), true
	}

	for _, s := range ShortcutRegistry {
		if s.Handler == nil || !slices.Contains(s.Keys, key) || !s.appliesTo(tab) {
			continue
		}
		logger.Log("Shortcut: executing %q on tab %s", key, tab)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// helpSections groups the registry and the display-only entries by category.
// Only shortcuts that apply to the active tab, or to every tab, are listed.
func (m *Model) helpSections() []modals.HelpSection {
	tab := m.screen.ActiveTab()
	categories := make(map[string][]modals.HelpShortcut)

	add := func(s Shortcut) {
		if !s.appliesTo(tab) {
			return
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  s.displayKey(),
			Desc: s.Description,
		})
	}

	add(helpShortcut)
	for _, s := range ShortcutRegistry {
		add(s)
	}
	for _, s := range DisplayOnlyShortcuts {
		if s.Category == CategoryGeneral || s.Category == categoryForTab(tab) {
			add(s)
		}
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok && len(shortcuts) > 0 {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

func categoryForTab(tab ui.Tab) string {
	switch tab {
	case ui.TabChat:
		return CategoryChat
	case ui.TabSummary:
		return CategorySummary
	case ui.TabSearch:
		return CategorySearch
	case ui.TabNews:
		return CategoryNews
	}
	return ""
}

// =============================================================================
// Shortcut Handlers
// =============================================================================

func shortcutNextTab(m *Model) (tea.Model, tea.Cmd) {
	return m, m.switchTab(m.screen.ActiveTab().Next())
}

func shortcutPrevTab(m *Model) (tea.Model, tea.Cmd) {
	return m, m.switchTab(m.screen.ActiveTab().Prev())
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	return m.quit()
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	m.screen.Modal().Show(modals.NewHelpState(m.helpSections()))
	return m, nil
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	names, labels := ui.ThemeChoices()
	m.screen.Modal().Show(modals.NewSettingsState(
		names, labels,
		string(ui.CurrentThemeName()),
		m.config.GetNotificationsEnabled(),
	))
	return m, nil
}

func shortcutSend(m *Model) (tea.Model, tea.Cmd) {
	return m, m.controller.SendMessage()
}

func shortcutGenerate(m *Model) (tea.Model, tea.Cmd) {
	return m, m.controller.GenerateSummary()
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	return m, m.controller.PerformSearch()
}

func shortcutSearchOptions(m *Model) (tea.Model, tea.Cmd) {
	week, limit := m.screen.SearchOptions()
	m.screen.Modal().Show(modals.NewSearchOptionsState(
		m.screen.News().Weeks(), week,
		m.config.GetSearchLimits(), limit,
	))
	return m, nil
}

func shortcutAskAbout(m *Model) (tea.Model, tea.Cmd) {
	card, ok := m.selectedCard()
	if !ok {
		return m, m.ShowFlashWarning("Nothing selected")
	}
	return m, m.controller.AskAbout(card.Title)
}

func shortcutCopyLink(m *Model) (tea.Model, tea.Cmd) {
	card, ok := m.selectedCard()
	if !ok || card.Link == "" {
		return m, m.ShowFlashWarning("No link to copy")
	}
	return m, m.copyToClipboard(card.Link)
}

func shortcutPrevWeek(m *Model) (tea.Model, tea.Cmd) {
	return m.cycleWeek(-1)
}

func shortcutNextWeek(m *Model) (tea.Model, tea.Cmd) {
	return m.cycleWeek(1)
}

func shortcutRefreshNews(m *Model) (tea.Model, tea.Cmd) {
	return m, m.controller.LoadNewsForWeek()
}
