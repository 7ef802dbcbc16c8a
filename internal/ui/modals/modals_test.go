package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/newsdesk/internal/keys"
)

func TestAlertState(t *testing.T) {
	state := NewAlertState("newsdesk", "Failed to load news")

	if state.Title() != "newsdesk" {
		t.Errorf("Title() = %q, want %q", state.Title(), "newsdesk")
	}
	rendered := state.Render()
	if !strings.Contains(rendered, "Failed to load news") {
		t.Errorf("Render() should contain the message, got %q", rendered)
	}
	if !strings.Contains(rendered, "dismiss") {
		t.Error("Render() should explain how to dismiss")
	}

	next, cmd := state.Update(tea.KeyPressMsg{Code: -1, Text: "x"})
	if next != state || cmd != nil {
		t.Error("alert should ignore input and stay open")
	}
}

func TestAlertState_DefaultTitle(t *testing.T) {
	if got := NewAlertState("", "boom").Title(); got != "Alert" {
		t.Errorf("Title() = %q, want %q", got, "Alert")
	}
}

func TestSearchOptionsState_Preselects(t *testing.T) {
	weeks := []WeekOption{
		{Value: "all", Label: "All Articles"},
		{Value: "2025-W35", Label: "Week 2025-W35"},
	}
	state := NewSearchOptionsState(weeks, "2025-W35", []int{5, 10, 20}, 10)

	if state.Week() != "2025-W35" {
		t.Errorf("Week() = %q, want %q", state.Week(), "2025-W35")
	}
	if state.Limit() != 10 {
		t.Errorf("Limit() = %d, want 10", state.Limit())
	}
	rendered := state.Render()
	for _, want := range []string{"Search Options", "Week", "Limit"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Render() should contain %q", want)
		}
	}
}

func TestSearchOptionsState_KeepsUnknownCurrentValues(t *testing.T) {
	state := NewSearchOptionsState(nil, "2024-W01", []int{5, 10}, 7)

	if state.Week() != "2024-W01" {
		t.Errorf("Week() = %q, want the unlisted current week", state.Week())
	}
	if state.Limit() != 7 {
		t.Errorf("Limit() = %d, want the unlisted current limit", state.Limit())
	}
}

func TestSearchOptionsState_EnterNotForwarded(t *testing.T) {
	state := NewSearchOptionsState([]WeekOption{{Value: "all", Label: "All"}}, "all", []int{10}, 10)

	_, cmd := state.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("Enter should be left to the app layer")
	}
	if state.Week() != "all" || state.Limit() != 10 {
		t.Error("Enter must not change the bound values")
	}
}

func TestSettingsState(t *testing.T) {
	state := NewSettingsState(
		[]string{"dark-purple", "nord"},
		[]string{"Dark Purple", "Nord"},
		"nord",
		true,
	)

	if state.GetSelectedTheme() != "nord" {
		t.Errorf("GetSelectedTheme() = %q, want %q", state.GetSelectedTheme(), "nord")
	}
	if state.ThemeChanged() {
		t.Error("ThemeChanged() should be false before any edit")
	}
	if !state.NotificationsEnabled {
		t.Error("NotificationsEnabled should reflect the initial value")
	}
	if state.PreferredWidth() != ModalWidthWide {
		t.Errorf("PreferredWidth() = %d, want %d", state.PreferredWidth(), ModalWidthWide)
	}

	state.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !state.NotificationsEnabled {
		t.Error("Escape should not toggle notifications")
	}

	if !strings.Contains(state.Render(), "Theme") {
		t.Error("Render() should show the theme field")
	}
}

func TestSettingsState_NotificationsOff(t *testing.T) {
	state := NewSettingsState([]string{"dark-purple"}, nil, "dark-purple", false)
	state.Update(tea.KeyPressMsg{Code: -1, Text: "x"})
	if state.NotificationsEnabled {
		t.Error("NotificationsEnabled should stay false")
	}
}

func TestHelpState_Navigation(t *testing.T) {
	state := NewHelpState([]HelpSection{
		{Title: "Tabs", Shortcuts: []HelpShortcut{{Key: "tab", Desc: "next tab"}, {Key: "shift+tab", Desc: "previous tab"}}},
		{Title: "Chat", Shortcuts: []HelpShortcut{{Key: "enter", Desc: "send"}}},
	})

	state.Update(tea.KeyPressMsg{Code: -1, Text: keys.Up})
	if state.SelectedIndex != 0 {
		t.Errorf("SelectedIndex = %d, want 0 at the top", state.SelectedIndex)
	}
	for i := 0; i < 5; i++ {
		state.Update(tea.KeyPressMsg{Code: -1, Text: keys.Down})
	}
	if state.SelectedIndex != 2 {
		t.Errorf("SelectedIndex = %d, want 2 at the bottom", state.SelectedIndex)
	}

	rendered := state.Render()
	for _, want := range []string{"Tabs", "Chat", "previous tab", "> enter"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("Render() should contain %q", want)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"a much longer label", 10, "a much ..."},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := TruncateString(tt.in, tt.width); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
