package ui

import (
	"fmt"

	"charm.land/bubbles/v2/textinput"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/newsdesk/internal/keys"
)

// Search is the search tab: query input, filter line and result cards.
type Search struct {
	width  int
	height int

	input    textinput.Model
	viewport viewport.Model
	results  cardList

	week      string
	weekLabel string
	limit     int

	stats   string
	message string
	isError bool

	focused bool
}

// NewSearch creates a search panel with the given default result limit and
// no week filter.
func NewSearch(limit int) *Search {
	ti := textinput.New()
	ti.Placeholder = "Search articles..."
	ti.CharLimit = SearchInputCharLimit
	ti.Prompt = "/ "

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	s := &Search{
		input:     ti,
		viewport:  vp,
		week:      "all",
		weekLabel: "All Articles",
		limit:     limit,
	}
	s.results.action = "ctrl+a: ask about this  ctrl+y: copy link"
	s.updateContent()
	return s
}

func (s *Search) resultsHeight() int {
	return s.height - SearchInputHeight - StatusLineHeight
}

// SetSize sets the search panel dimensions
func (s *Search) SetSize(width, height int) {
	s.width = width
	s.height = height

	ctx := GetViewContext()
	s.input.SetWidth(ctx.InnerWidth(width) - InputPaddingWidth - lipgloss.Width(s.input.Prompt))

	viewportHeight := ctx.InnerHeight(s.resultsHeight())
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	s.viewport.SetWidth(ctx.InnerWidth(width))
	s.viewport.SetHeight(viewportHeight)
	s.updateContent()
}

// SetFocused sets the focus state
func (s *Search) SetFocused(focused bool) {
	s.focused = focused
	if focused {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// Query returns the raw query text
func (s *Search) Query() string {
	return s.input.Value()
}

// SetQuery replaces the query text
func (s *Search) SetQuery(q string) {
	s.input.SetValue(q)
}

// Options returns the week filter and result limit
func (s *Search) Options() (week string, limit int) {
	return s.week, s.limit
}

// SetOptions sets the week filter and result limit; label is the week's display text
func (s *Search) SetOptions(week, label string, limit int) {
	s.week = week
	s.weekLabel = label
	if s.weekLabel == "" {
		s.weekLabel = week
	}
	if limit > 0 {
		s.limit = limit
	}
}

// ShowResults replaces the result area with a count line and cards
func (s *Search) ShowResults(stats string, cards []Card) {
	s.stats = stats
	s.message = ""
	s.isError = false
	s.results.set(cards)
	s.updateContent()
	s.viewport.GotoTop()
}

// ShowMessage replaces the result area with a single line of text
func (s *Search) ShowMessage(text string, isError bool) {
	s.stats = ""
	s.message = text
	s.isError = isError
	s.results.set(nil)
	s.updateContent()
	s.viewport.GotoTop()
}

// Stats returns the current count line
func (s *Search) Stats() string {
	return s.stats
}

// Message returns the current empty-state or error line
func (s *Search) Message() string {
	return s.message
}

// Cards returns the rendered results
func (s *Search) Cards() []Card {
	return s.results.cards
}

// Selected returns the highlighted result
func (s *Search) Selected() (Card, bool) {
	return s.results.current()
}

// MoveSelection moves the highlight by delta results
func (s *Search) MoveSelection(delta int) {
	if s.results.move(delta) {
		s.updateContent()
	}
}

func (s *Search) updateContent() {
	wrapWidth := s.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	switch {
	case s.message != "" && s.isError:
		s.viewport.SetContent(StatusErrorStyle.Render(wordwrap.String(s.message, wrapWidth)))
	case s.message != "":
		s.viewport.SetContent(StatusMutedStyle.Render(wordwrap.String(s.message, wrapWidth)))
	case s.stats == "" && len(s.results.cards) == 0:
		s.viewport.SetContent(StatusMutedStyle.Render("Type a query and press enter to search."))
	default:
		cards, selectedLine := s.results.render(wrapWidth)
		s.viewport.SetContent(StatusInfoStyle.Render(s.stats) + "\n" + cards)
		// keep the selected card in view; +1 for the stats line
		top := selectedLine + 1
		if top < s.viewport.YOffset() || top >= s.viewport.YOffset()+s.viewport.Height() {
			s.viewport.SetYOffset(selectedLine)
		}
	}
}

// Update handles messages
func (s *Search) Update(msg tea.Msg) (*Search, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case keys.Up:
			s.MoveSelection(-1)
			return s, nil
		case keys.Down:
			s.MoveSelection(1)
			return s, nil
		case keys.PgUp, keys.PgDown:
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			return s, cmd
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View renders the search panel
func (s *Search) View() string {
	inputStyle := ChatInputStyle
	if s.focused {
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(s.width).Render(s.input.View())

	filter := fmt.Sprintf(" Week: %s  Limit: %d  ", s.weekLabel, s.limit)
	filterLine := StatusMutedStyle.Render(filter) +
		FooterKeyStyle.Render("ctrl+o") + FooterDescStyle.Render(": change")

	panelStyle := PanelStyle
	if s.focused {
		panelStyle = PanelFocusedStyle
	}
	results := panelStyle.Width(s.width).Height(s.resultsHeight()).Render(s.viewport.View())

	return lipgloss.JoinVertical(lipgloss.Left, inputArea, filterLine, results)
}
