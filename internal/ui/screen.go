package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/newsdesk/internal/ui/modals"
)

// Screen owns every visible component and is the only thing the controller
// writes to. Exactly one tab panel is active at a time.
type Screen struct {
	width  int
	height int

	header  *Header
	tabs    *TabBar
	footer  *Footer
	modal   *Modal
	loading Loading

	chat    *Chat
	summary *Summary
	search  *Search
	news    *News
}

// NewScreen creates a screen with the chat tab active.
func NewScreen(suggestions []string, searchLimit int) *Screen {
	s := &Screen{
		header:  NewHeader(),
		tabs:    NewTabBar(),
		footer:  NewFooter(),
		modal:   NewModal(),
		chat:    NewChat(suggestions),
		summary: NewSummary(),
		search:  NewSearch(searchLimit),
		news:    NewNews(),
	}
	s.ActivateTab(TabChat)
	return s
}

func (s *Screen) Header() *Header   { return s.header }
func (s *Screen) Footer() *Footer   { return s.footer }
func (s *Screen) Modal() *Modal     { return s.modal }
func (s *Screen) Chat() *Chat       { return s.chat }
func (s *Screen) Summary() *Summary { return s.summary }
func (s *Screen) Search() *Search   { return s.search }
func (s *Screen) News() *News       { return s.news }

// ActiveTab returns the active tab
func (s *Screen) ActiveTab() Tab {
	return s.tabs.Active()
}

// Busy reports whether the loading indicator is showing
func (s *Screen) Busy() bool {
	return s.loading.Active()
}

// SetSize lays out every component for a terminal of the given size
func (s *Screen) SetSize(width, height int) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(width, height)

	s.width = ctx.TerminalWidth
	s.height = ctx.TerminalHeight

	s.header.SetWidth(s.width)
	s.tabs.SetWidth(s.width)
	s.footer.SetWidth(s.width)

	s.chat.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	s.summary.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	s.search.SetSize(ctx.ContentWidth, ctx.ContentHeight)
	s.news.SetSize(ctx.ContentWidth, ctx.ContentHeight)
}

// ActivateTab deactivates every panel and activates tab
func (s *Screen) ActivateTab(tab Tab) {
	s.tabs.SetActive(tab)
	s.chat.SetFocused(tab == TabChat)
	s.summary.SetFocused(tab == TabSummary)
	s.search.SetFocused(tab == TabSearch)
	s.news.SetFocused(tab == TabNews)
}

// AppendMessage adds a message to the chat transcript
func (s *Screen) AppendMessage(sender Sender, body string) {
	s.chat.AppendMessage(sender, body)
}

// ChatInput returns the chat input text
func (s *Screen) ChatInput() string {
	return s.chat.Input()
}

// SetChatInput replaces the chat input text
func (s *Screen) SetChatInput(text string) {
	s.chat.SetInput(text)
}

// SetSummary replaces the summary paragraphs
func (s *Screen) SetSummary(paragraphs []string) {
	s.summary.SetParagraphs(paragraphs)
}

// SearchQuery returns the search input text
func (s *Screen) SearchQuery() string {
	return s.search.Query()
}

// SearchOptions returns the week filter and result limit
func (s *Screen) SearchOptions() (week string, limit int) {
	return s.search.Options()
}

// ShowSearchResults renders a count line and result cards
func (s *Screen) ShowSearchResults(stats string, cards []Card) {
	s.search.ShowResults(stats, cards)
}

// ShowSearchMessage renders a single empty-state or error line
func (s *Screen) ShowSearchMessage(text string, isError bool) {
	s.search.ShowMessage(text, isError)
}

// SelectedWeek returns the news week selector value
func (s *Screen) SelectedWeek() string {
	return s.news.SelectedWeek()
}

// SetWeeks populates the news week selector
func (s *Screen) SetWeeks(weeks []WeekOption) {
	s.news.SetWeeks(weeks)
}

// ShowNews renders article cards
func (s *Screen) ShowNews(cards []Card) {
	s.news.ShowArticles(cards)
}

// ShowNewsPlaceholder renders the news empty state
func (s *Screen) ShowNewsPlaceholder(text string) {
	s.news.ShowPlaceholder(text)
}

// SetBusy shows or hides the loading indicator and disables the send and
// generate controls while busy. It returns the spinner's first tick.
func (s *Screen) SetBusy(busy bool) tea.Cmd {
	s.chat.SetDisabled(busy)
	s.summary.SetDisabled(busy)
	if busy {
		return s.loading.Start()
	}
	s.loading.Stop()
	return nil
}

// Alert shows a blocking message that must be dismissed
func (s *Screen) Alert(title, message string) {
	s.modal.Show(modals.NewAlertState(title, message))
}

// Update routes spinner ticks to the loading indicator and everything else
// to the active panel.
func (s *Screen) Update(msg tea.Msg) tea.Cmd {
	if tick, ok := msg.(LoadingTickMsg); ok {
		return s.loading.Tick(tick)
	}

	var cmd tea.Cmd
	switch s.tabs.Active() {
	case TabChat:
		s.chat, cmd = s.chat.Update(msg)
	case TabSummary:
		s.summary, cmd = s.summary.Update(msg)
	case TabSearch:
		s.search, cmd = s.search.Update(msg)
	case TabNews:
		s.news, cmd = s.news.Update(msg)
	}
	return cmd
}

// Render composes the full screen. A visible modal replaces the content.
func (s *Screen) Render() string {
	if s.width == 0 || s.height == 0 {
		return "Loading..."
	}

	if s.modal.IsVisible() {
		return s.modal.View(s.width, s.height)
	}

	s.footer.SetContext(s.tabs.Active(), s.loading.Active())
	s.tabs.SetStatus(s.loading.View())

	var panel string
	switch s.tabs.Active() {
	case TabChat:
		panel = s.chat.View()
	case TabSummary:
		panel = s.summary.View()
	case TabSearch:
		panel = s.search.View()
	case TabNews:
		panel = s.news.View()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.header.View(),
		s.tabs.View(),
		panel,
		s.footer.View(),
	)
}
