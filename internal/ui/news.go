package ui

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/newsdesk/internal/keys"
)

// News is the news tab: a week selector and one card per article.
type News struct {
	width  int
	height int

	viewport    viewport.Model
	articles    cardList
	weeks       []WeekOption
	weekIndex   int
	placeholder string
	loaded      bool

	focused bool
}

// NewNews creates a new news panel
func NewNews() *News {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	n := &News{
		viewport:    vp,
		placeholder: "Select a week to load articles.",
	}
	n.articles.action = "a: ask about this  y: copy link"
	n.updateContent()
	return n
}

// SetSize sets the news panel dimensions
func (n *News) SetSize(width, height int) {
	n.width = width
	n.height = height

	ctx := GetViewContext()
	viewportHeight := ctx.InnerHeight(height - StatusLineHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	n.viewport.SetWidth(ctx.InnerWidth(width))
	n.viewport.SetHeight(viewportHeight)
	n.updateContent()
}

// SetFocused sets the focus state
func (n *News) SetFocused(focused bool) {
	n.focused = focused
}

// SetWeeks replaces the week selector choices. The current selection is kept
// when still offered; otherwise the newest week is selected.
func (n *News) SetWeeks(weeks []WeekOption) {
	current := n.SelectedWeek()
	n.weeks = weeks
	n.weekIndex = defaultWeekIndex(weeks)
	for i, w := range weeks {
		if current != "" && w.Value == current {
			n.weekIndex = i
			break
		}
	}
}

// defaultWeekIndex picks the first concrete week, falling back to the first option
func defaultWeekIndex(weeks []WeekOption) int {
	for i, w := range weeks {
		if w.Value != "all" {
			return i
		}
	}
	return 0
}

// Weeks returns the selector choices
func (n *News) Weeks() []WeekOption {
	return n.weeks
}

// SelectedWeek returns the selected week value, or "" when no weeks are known
func (n *News) SelectedWeek() string {
	if n.weekIndex < 0 || n.weekIndex >= len(n.weeks) {
		return ""
	}
	return n.weeks[n.weekIndex].Value
}

// selectedWeekLabel returns the selected week's display text
func (n *News) selectedWeekLabel() string {
	if n.weekIndex < 0 || n.weekIndex >= len(n.weeks) {
		return "Latest"
	}
	return n.weeks[n.weekIndex].Label
}

// CycleWeek moves the selector by delta and reports whether it changed
func (n *News) CycleWeek(delta int) bool {
	if len(n.weeks) == 0 {
		return false
	}
	next := n.weekIndex + delta
	if next < 0 || next >= len(n.weeks) {
		return false
	}
	n.weekIndex = next
	return true
}

// ShowArticles replaces the panel content with article cards
func (n *News) ShowArticles(cards []Card) {
	n.loaded = true
	n.placeholder = ""
	n.articles.set(cards)
	n.updateContent()
	n.viewport.GotoTop()
}

// ShowPlaceholder replaces the panel content with a single line of text
func (n *News) ShowPlaceholder(text string) {
	n.loaded = true
	n.placeholder = text
	n.articles.set(nil)
	n.updateContent()
	n.viewport.GotoTop()
}

// Loaded reports whether any news response has been rendered
func (n *News) Loaded() bool {
	return n.loaded
}

// Placeholder returns the empty-state text, or "" when cards are shown
func (n *News) Placeholder() string {
	return n.placeholder
}

// Cards returns the rendered articles
func (n *News) Cards() []Card {
	return n.articles.cards
}

// Selected returns the highlighted article
func (n *News) Selected() (Card, bool) {
	return n.articles.current()
}

// MoveSelection moves the highlight by delta articles
func (n *News) MoveSelection(delta int) {
	if n.articles.move(delta) {
		n.updateContent()
	}
}

func (n *News) updateContent() {
	wrapWidth := n.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if len(n.articles.cards) == 0 {
		n.viewport.SetContent(StatusMutedStyle.Render(n.placeholder))
		return
	}

	content, selectedLine := n.articles.render(wrapWidth)
	n.viewport.SetContent(content)
	if selectedLine < n.viewport.YOffset() || selectedLine >= n.viewport.YOffset()+n.viewport.Height() {
		n.viewport.SetYOffset(selectedLine)
	}
}

// Update handles selection and scrolling; week changes are handled by the app
func (n *News) Update(msg tea.Msg) (*News, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case keys.Up, "k":
			n.MoveSelection(-1)
			return n, nil
		case keys.Down, "j":
			n.MoveSelection(1)
			return n, nil
		}
	}

	var cmd tea.Cmd
	n.viewport, cmd = n.viewport.Update(msg)
	return n, cmd
}

// View renders the news panel
func (n *News) View() string {
	prev, next := "  ", "  "
	if n.weekIndex > 0 {
		prev = "◀ "
	}
	if n.weekIndex < len(n.weeks)-1 {
		next = " ▶"
	}
	selector := " " + FooterKeyStyle.Render(prev) +
		CardTitleStyle.Render(n.selectedWeekLabel()) +
		FooterKeyStyle.Render(next)

	panelStyle := PanelStyle
	if n.focused {
		panelStyle = PanelFocusedStyle
	}
	body := panelStyle.Width(n.width).Height(n.height - StatusLineHeight).Render(n.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, selector, body)
}
