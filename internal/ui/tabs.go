package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// Tab identifies one of the four content panels.
type Tab string

const (
	TabChat    Tab = "chat"
	TabSummary Tab = "summary"
	TabSearch  Tab = "search"
	TabNews    Tab = "news"
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabChat, TabSummary, TabSearch, TabNews}

// ParseTab resolves a tab name. The second result is false for unknown names.
func ParseTab(name string) (Tab, bool) {
	for _, t := range Tabs {
		if string(t) == name {
			return t, true
		}
	}
	return "", false
}

// Label returns the tab's display text.
func (t Tab) Label() string {
	switch t {
	case TabChat:
		return "Chat"
	case TabSummary:
		return "Summary"
	case TabSearch:
		return "Search"
	case TabNews:
		return "News"
	}
	return string(t)
}

func (t Tab) index() int {
	for i, tab := range Tabs {
		if tab == t {
			return i
		}
	}
	return 0
}

// Next returns the tab after t, wrapping around.
func (t Tab) Next() Tab {
	return Tabs[(t.index()+1)%len(Tabs)]
}

// Prev returns the tab before t, wrapping around.
func (t Tab) Prev() Tab {
	return Tabs[(t.index()+len(Tabs)-1)%len(Tabs)]
}

// TabBar renders the row of tabs under the header. Exactly one tab is active.
type TabBar struct {
	width  int
	active Tab
	status string
}

// NewTabBar creates a tab bar with the chat tab active
func NewTabBar() *TabBar {
	return &TabBar{active: TabChat}
}

// SetWidth sets the tab bar width
func (b *TabBar) SetWidth(width int) {
	b.width = width
}

// SetActive makes tab the only active tab.
func (b *TabBar) SetActive(tab Tab) {
	b.active = tab
}

// Active returns the active tab.
func (b *TabBar) Active() Tab {
	return b.active
}

// SetStatus sets the right-aligned status text (e.g. the loading spinner).
func (b *TabBar) SetStatus(status string) {
	b.status = status
}

// View renders the tab bar
func (b *TabBar) View() string {
	parts := make([]string, len(Tabs))
	for i, t := range Tabs {
		label := t.Label()
		if t == b.active {
			parts[i] = TabActiveStyle.Render(label)
		} else {
			parts[i] = TabStyle.Render(label)
		}
	}
	left := strings.Join(parts, "")

	right := b.status
	pad := b.width - lipgloss.Width(left) - lipgloss.Width(right) - 1
	if pad < 1 {
		return left
	}
	return left + strings.Repeat(" ", pad) + right + " "
}
