package app

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/newsdesk/internal/api"
	pkgerrors "github.com/zhubert/newsdesk/internal/errors"
	"github.com/zhubert/newsdesk/internal/logger"
	"github.com/zhubert/newsdesk/internal/markup"
	"github.com/zhubert/newsdesk/internal/notification"
	"github.com/zhubert/newsdesk/internal/session"
	"github.com/zhubert/newsdesk/internal/ui"
)

// User-visible failure and empty-state texts
const (
	ChatErrorText          = "Sorry, I encountered an error. Please try again."
	SummaryErrorText       = "Sorry, I encountered an error generating the summary."
	SearchFailedText       = "Search failed"
	SearchTransportText    = "Search failed. Please try again."
	NewsEmptyText          = "No articles found"
	NewsFailedText         = "Failed to load news"
	AskAboutPrefix         = "Tell me more about this article: "
	allWeeksLabel          = "All Articles"
	searchStatsFormat      = `Found %d articles for "%s"`
	searchEmptyFormat      = `No articles found for "%s"`
	searchResultHeadFormat = "%s (%d%% match)"
)

// View is everything the controller reads from and writes to on screen.
// ui.Screen implements it; tests use a recording fake.
type View interface {
	ActivateTab(tab ui.Tab)

	AppendMessage(sender ui.Sender, body string)
	ChatInput() string
	SetChatInput(text string)

	SetSummary(paragraphs []string)

	SearchQuery() string
	SearchOptions() (week string, limit int)
	ShowSearchResults(stats string, cards []ui.Card)
	ShowSearchMessage(text string, isError bool)

	SelectedWeek() string
	SetWeeks(weeks []ui.WeekOption)
	ShowNews(cards []ui.Card)
	ShowNewsPlaceholder(text string)

	SetBusy(busy bool) tea.Cmd
	Alert(title, message string)
}

// Result messages delivered back to the event loop when a request completes.
type (
	ChatResultMsg struct {
		Response *api.ChatResponse
		Err      error
	}

	SummaryResultMsg struct {
		Response *api.SummaryResponse
		Err      error
	}

	SearchResultMsg struct {
		Query    string
		Response *api.SearchResponse
		Err      error
	}

	NewsResultMsg struct {
		Week     string
		Response *api.NewsResponse
		Err      error
	}

	WeeksResultMsg struct {
		Weeks []api.Week
		Err   error
	}

	// TabActivatedMsg arrives after a tab switch has been rendered.
	TabActivatedMsg struct {
		Tab ui.Tab
	}
)

// ControllerOptions tunes optional controller behavior.
type ControllerOptions struct {
	// Suggestions are the preset chat prompts, in shortcut order.
	Suggestions []string
	// Notifications sends a desktop alert when news fails to load.
	Notifications bool
}

// Controller wires user actions to backend calls and renders the results.
// All methods run on the bubbletea event loop; requests run inside the
// returned commands and report back through the *ResultMsg types.
type Controller struct {
	ctx    context.Context
	client api.Client
	view   View
	state  *session.State
	log    *slog.Logger

	suggestions   []string
	notifications bool

	// pendingAsk is sent once the chat tab has been shown.
	pendingAsk string
}

// NewController creates a controller. ctx bounds every request it issues.
func NewController(ctx context.Context, client api.Client, view View, state *session.State, opts ControllerOptions) *Controller {
	if ctx == nil {
		ctx = context.Background()
	}
	if state == nil {
		state = session.New()
	}
	return &Controller{
		ctx:           ctx,
		client:        client,
		view:          view,
		state:         state,
		log:           logger.WithSession(state.ID()).With("component", "controller"),
		suggestions:   opts.Suggestions,
		notifications: opts.Notifications,
	}
}

// Session returns the shared session state.
func (c *Controller) Session() *session.State {
	return c.state
}

// SetNotifications toggles desktop alerts for news failures.
func (c *Controller) SetNotifications(enabled bool) {
	c.notifications = enabled
}

// SwitchTab activates the named tab. Unknown names leave the view unchanged.
func (c *Controller) SwitchTab(name string) error {
	tab, ok := ui.ParseTab(name)
	if !ok {
		return pkgerrors.TabNotFound(name)
	}
	c.view.ActivateTab(tab)
	return nil
}

// ShowLoading sets the busy flag and shows the loading indicator.
func (c *Controller) ShowLoading() tea.Cmd {
	c.state.SetBusy(true)
	return c.view.SetBusy(true)
}

// HideLoading clears the busy flag and hides the loading indicator.
func (c *Controller) HideLoading() {
	c.state.SetBusy(false)
	c.view.SetBusy(false)
}

// SendMessage posts the chat input. Empty input or a busy session is a no-op.
func (c *Controller) SendMessage() tea.Cmd {
	text := strings.TrimSpace(c.view.ChatInput())
	if text == "" || c.state.Busy() {
		return nil
	}

	c.view.AppendMessage(ui.SenderUser, markup.Format(text))
	c.view.SetChatInput("")
	loading := c.ShowLoading()

	req := api.ChatRequest{Message: text, SessionID: c.state.ID()}
	c.log.Debug("sending chat message", "length", len(text))
	return tea.Batch(loading, func() tea.Msg {
		resp, err := c.client.Chat(c.ctx, req)
		return ChatResultMsg{Response: resp, Err: err}
	})
}

// HandleChatResult renders a chat reply or the fallback message.
func (c *Controller) HandleChatResult(msg ChatResultMsg) {
	defer c.HideLoading()

	if msg.Err != nil || msg.Response == nil {
		c.log.Warn("chat request failed", "error", msg.Err, "kind", pkgerrors.GetKind(msg.Err))
		c.view.AppendMessage(ui.SenderAI, ChatErrorText)
		return
	}

	c.view.AppendMessage(ui.SenderAI, markup.Format(msg.Response.Response))
	if c.state.Adopt(msg.Response.SessionID) {
		c.log = logger.WithSession(c.state.ID()).With("component", "controller")
		c.log.Debug("adopted server session", "localShape", session.ValidID(c.state.ID()))
	}
}

// UseSuggestion copies preset i into the chat input and sends it.
func (c *Controller) UseSuggestion(i int) tea.Cmd {
	if i < 0 || i >= len(c.suggestions) {
		return nil
	}
	c.view.SetChatInput(c.suggestions[i])
	return c.SendMessage()
}

// GenerateSummary requests this week's summary unless a request is in flight.
func (c *Controller) GenerateSummary() tea.Cmd {
	if c.state.Busy() {
		return nil
	}
	loading := c.ShowLoading()
	return tea.Batch(loading, func() tea.Msg {
		resp, err := c.client.Summary(c.ctx)
		return SummaryResultMsg{Response: resp, Err: err}
	})
}

// HandleSummaryResult renders the summary, one paragraph per non-blank line.
func (c *Controller) HandleSummaryResult(msg SummaryResultMsg) {
	defer c.HideLoading()

	if msg.Err != nil || msg.Response == nil {
		c.log.Warn("summary request failed", "error", msg.Err)
		c.view.SetSummary([]string{SummaryErrorText})
		return
	}
	c.view.SetSummary(SummaryParagraphs(msg.Response.Summary))
}

// SummaryParagraphs splits a summary into trimmed, sanitized, non-blank lines.
func SummaryParagraphs(text string) []string {
	var paragraphs []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, markup.Sanitize(line))
		}
	}
	return paragraphs
}

// PerformSearch runs the search query with the current week filter and limit.
func (c *Controller) PerformSearch() tea.Cmd {
	query := strings.TrimSpace(c.view.SearchQuery())
	if query == "" || c.state.Busy() {
		return nil
	}

	week, limit := c.view.SearchOptions()
	loading := c.ShowLoading()
	req := api.SearchRequest{Query: query, WeekFilter: week, Limit: limit}
	return tea.Batch(loading, func() tea.Msg {
		resp, err := c.client.Search(c.ctx, req)
		return SearchResultMsg{Query: query, Response: resp, Err: err}
	})
}

// HandleSearchResult renders search hits, the empty-state line, or an error.
func (c *Controller) HandleSearchResult(msg SearchResultMsg) {
	defer c.HideLoading()

	if msg.Err != nil || msg.Response == nil {
		c.log.Warn("search request failed", "query", msg.Query, "error", msg.Err)
		c.view.ShowSearchMessage("Error: "+searchErrorText(msg.Err), true)
		return
	}

	query := msg.Query
	if q := markup.Sanitize(msg.Response.Query); q != "" {
		query = q
	}
	results := msg.Response.Results
	if len(results) == 0 {
		c.view.ShowSearchMessage(fmt.Sprintf(searchEmptyFormat, query), false)
		return
	}

	cards := make([]ui.Card, 0, len(results))
	for _, r := range results {
		cards = append(cards, ui.Card{
			Title:   r.Title,
			Heading: fmt.Sprintf(searchResultHeadFormat, markup.Sanitize(r.Title), ConfidencePercent(r.Confidence)),
			Summary: markup.Sanitize(r.Summary),
			Link:    markup.Sanitize(r.Link),
		})
	}
	c.view.ShowSearchResults(fmt.Sprintf(searchStatsFormat, TotalResults(msg.Response), query), cards)
}

// TotalResults is the server's total_results count, or the number of
// returned results when the server leaves it unset.
func TotalResults(resp *api.SearchResponse) int {
	if resp.TotalResults > 0 {
		return resp.TotalResults
	}
	return len(resp.Results)
}

func searchErrorText(err error) string {
	if !pkgerrors.Is(err, pkgerrors.KindApplication) {
		return SearchTransportText
	}
	if m := pkgerrors.ServerMessage(err); m != "" {
		return markup.Sanitize(m)
	}
	return SearchFailedText
}

// ConfidencePercent converts a 0..1 relevance score to a rounded percentage.
func ConfidencePercent(confidence float64) int {
	return int(math.Round(confidence * 100))
}

// AskAbout switches to chat and queues a question about title. The question
// is sent when the returned command's TabActivatedMsg is handled.
func (c *Controller) AskAbout(title string) tea.Cmd {
	c.view.ActivateTab(ui.TabChat)
	c.pendingAsk = AskAboutPrefix + `"` + title + `"`
	return func() tea.Msg {
		return TabActivatedMsg{Tab: ui.TabChat}
	}
}

// HandleTabActivated sends a queued ask-about question.
func (c *Controller) HandleTabActivated(msg TabActivatedMsg) tea.Cmd {
	if msg.Tab != ui.TabChat || c.pendingAsk == "" {
		return nil
	}
	question := c.pendingAsk
	c.pendingAsk = ""
	c.view.SetChatInput(question)
	return c.SendMessage()
}

// LoadWeeks fetches the week list for the selector and the search filter.
func (c *Controller) LoadWeeks() tea.Cmd {
	loading := c.ShowLoading()
	return tea.Batch(loading, func() tea.Msg {
		weeks, err := c.client.Weeks(c.ctx)
		return WeeksResultMsg{Weeks: weeks, Err: err}
	})
}

// HandleWeeksResult fills the week selector and loads the selected week.
// Without a week list only "all" is offered.
func (c *Controller) HandleWeeksResult(msg WeeksResultMsg) tea.Cmd {
	c.HideLoading()

	options := []ui.WeekOption{{Value: api.WeekAll, Label: allWeeksLabel}}
	if msg.Err != nil {
		c.log.Warn("failed to load weeks", "error", msg.Err)
	} else {
		options = options[:0]
		hasAll := false
		for _, w := range msg.Weeks {
			if w.Value == "" {
				continue
			}
			label := w.Label
			if label == "" {
				label = w.Value
			}
			hasAll = hasAll || w.Value == api.WeekAll
			options = append(options, ui.WeekOption{Value: w.Value, Label: markup.Sanitize(label)})
		}
		if !hasAll {
			options = append([]ui.WeekOption{{Value: api.WeekAll, Label: allWeeksLabel}}, options...)
		}
	}

	c.view.SetWeeks(options)
	return c.LoadNewsForWeek()
}

// LoadNewsForWeek loads the articles for the selected week. It is not gated
// by the busy flag: changing the week always issues a request.
func (c *Controller) LoadNewsForWeek() tea.Cmd {
	week := c.view.SelectedWeek()
	loading := c.ShowLoading()
	return tea.Batch(loading, func() tea.Msg {
		resp, err := c.client.News(c.ctx, week)
		return NewsResultMsg{Week: week, Response: resp, Err: err}
	})
}

// HandleNewsResult renders article cards or the placeholder. A failure
// raises an alert and keeps whatever was shown before. Results for a week
// that is no longer selected are dropped; the newer request hides loading.
func (c *Controller) HandleNewsResult(msg NewsResultMsg) {
	if week := c.view.SelectedWeek(); msg.Week != week {
		c.log.Debug("dropping stale news result", "week", msg.Week, "selected", week)
		return
	}
	defer c.HideLoading()

	if msg.Err != nil {
		c.log.Warn("news request failed", "week", msg.Week, "error", msg.Err)
		c.view.Alert(notification.AppName, NewsFailedText)
		if c.notifications {
			if err := notification.NewsFailed(msg.Week); err != nil {
				c.log.Debug("desktop notification failed", "error", err)
			}
		}
		return
	}

	if msg.Response == nil || len(msg.Response.Articles) == 0 {
		c.view.ShowNewsPlaceholder(NewsEmptyText)
		return
	}

	cards := make([]ui.Card, 0, len(msg.Response.Articles))
	for _, a := range msg.Response.Articles {
		cards = append(cards, ui.Card{
			Title:   a.Title,
			Heading: markup.Sanitize(a.Title),
			Summary: markup.Sanitize(a.Summary),
			Link:    markup.Sanitize(a.Link),
			Date:    markup.Sanitize(a.Date),
		})
	}
	c.view.ShowNews(cards)
}
