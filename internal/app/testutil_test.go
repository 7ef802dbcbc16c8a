package app

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/newsdesk/internal/api"
	"github.com/zhubert/newsdesk/internal/config"
	"github.com/zhubert/newsdesk/internal/demo"
	"github.com/zhubert/newsdesk/internal/keys"
	"github.com/zhubert/newsdesk/internal/session"
	"github.com/zhubert/newsdesk/internal/ui"
)

// fakeView records everything the controller writes.
type fakeView struct {
	tab ui.Tab

	messages []ui.ChatMessage
	input    string

	summary []string

	query         string
	week          string
	limit         int
	stats         string
	searchCards   []ui.Card
	searchMessage string
	searchIsError bool

	weeks           []ui.WeekOption
	selectedWeek    string
	news            []ui.Card
	newsPlaceholder string

	busy      bool
	busyCalls []bool
	alerts    []string
}

var _ View = (*fakeView)(nil)

func newFakeView() *fakeView {
	return &fakeView{tab: ui.TabChat, week: api.WeekAll, limit: config.DefaultSearchLimit}
}

func (v *fakeView) ActivateTab(tab ui.Tab) { v.tab = tab }

func (v *fakeView) AppendMessage(sender ui.Sender, body string) {
	v.messages = append(v.messages, ui.ChatMessage{Sender: sender, Body: body})
}

func (v *fakeView) ChatInput() string        { return v.input }
func (v *fakeView) SetChatInput(text string) { v.input = text }

func (v *fakeView) SetSummary(paragraphs []string) { v.summary = paragraphs }

func (v *fakeView) SearchQuery() string                     { return v.query }
func (v *fakeView) SearchOptions() (week string, limit int) { return v.week, v.limit }

func (v *fakeView) ShowSearchResults(stats string, cards []ui.Card) {
	v.stats, v.searchCards = stats, cards
	v.searchMessage, v.searchIsError = "", false
}

func (v *fakeView) ShowSearchMessage(text string, isError bool) {
	v.searchMessage, v.searchIsError = text, isError
	v.stats, v.searchCards = "", nil
}

func (v *fakeView) SelectedWeek() string { return v.selectedWeek }

func (v *fakeView) SetWeeks(weeks []ui.WeekOption) {
	v.weeks = weeks
	if v.selectedWeek != "" {
		return
	}
	for _, w := range weeks {
		if w.Value != api.WeekAll {
			v.selectedWeek = w.Value
			return
		}
	}
	if len(weeks) > 0 {
		v.selectedWeek = weeks[0].Value
	}
}

func (v *fakeView) ShowNews(cards []ui.Card) {
	v.news, v.newsPlaceholder = cards, ""
}

func (v *fakeView) ShowNewsPlaceholder(text string) {
	v.news, v.newsPlaceholder = nil, text
}

func (v *fakeView) SetBusy(busy bool) tea.Cmd {
	v.busy = busy
	v.busyCalls = append(v.busyCalls, busy)
	return nil
}

func (v *fakeView) Alert(title, message string) {
	v.alerts = append(v.alerts, message)
}

// newTestServer serves b over httptest and returns a client for it.
func newTestServer(t *testing.T, b *demo.Backend) (*httptest.Server, *api.HTTPClient) {
	t.Helper()
	srv := httptest.NewServer(b.Handler())
	t.Cleanup(srv.Close)
	return srv, api.New(srv.URL, 0)
}

// newTestController wires a controller to a fake view and the demo backend.
func newTestController(t *testing.T, b *demo.Backend) (*Controller, *fakeView) {
	t.Helper()
	_, client := newTestServer(t, b)
	view := newFakeView()
	c := NewController(context.Background(), client, view, session.New(), ControllerOptions{
		Suggestions: config.DefaultSuggestions,
	})
	return c, view
}

// runCmd executes cmd and every command it batches, returning the messages
// they produce. Batched commands run concurrently.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	}

	var (
		mu   sync.Mutex
		wg   sync.WaitGroup
		msgs []tea.Msg
	)
	for _, c := range batch {
		wg.Add(1)
		go func(c tea.Cmd) {
			defer wg.Done()
			got := runCmd(c)
			mu.Lock()
			msgs = append(msgs, got...)
			mu.Unlock()
		}(c)
	}
	wg.Wait()
	return msgs
}

// resultOf runs cmd and returns the single message of type T it produced.
func resultOf[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	var zero T
	if cmd == nil {
		t.Fatalf("expected a command producing %T, got nil", zero)
	}
	var found []T
	for _, msg := range runCmd(cmd) {
		if m, ok := msg.(T); ok {
			found = append(found, m)
		}
	}
	if len(found) != 1 {
		t.Fatalf("expected exactly one %T, got %d", zero, len(found))
	}
	return found[0]
}

// testConfig returns a default config stored in a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("config.Load() error = %v", err)
	}
	return cfg
}

// testModel creates a sized model talking to the demo backend.
func testModel(t *testing.T, b *demo.Backend) *Model {
	t.Helper()
	_, client := newTestServer(t, b)
	m := New(testConfig(t), client, "0.0.0-test")
	t.Cleanup(func() {
		m.Close()
		ui.SetTheme(ui.DefaultTheme)
	})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// pump runs cmd, feeds every resulting message back into the model, and
// repeats until no commands remain. Timer ticks are dropped so the loop ends.
func pump(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	pending := []tea.Cmd{cmd}
	for i := 0; len(pending) > 0; i++ {
		if i > 50 {
			t.Fatal("pump: too many rounds")
		}
		next := pending[0]
		pending = pending[1:]
		for _, msg := range runCmd(next) {
			switch msg.(type) {
			case ui.LoadingTickMsg, ui.FlashTickMsg:
				continue
			}
			_, c := m.Update(msg)
			if c != nil {
				pending = append(pending, c)
			}
		}
	}
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+c", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.F1:
		return tea.KeyPressMsg{Code: tea.KeyF1}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	case keys.CtrlA:
		return tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}
	case keys.AltComma:
		return tea.KeyPressMsg{Code: ',', Mod: tea.ModAlt}
	case keys.Alt1:
		return tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the resulting command.
func sendKey(m *Model, key string) tea.Cmd {
	_, cmd := m.Update(keyPress(key))
	return cmd
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) {
	for _, ch := range text {
		m.Update(tea.KeyPressMsg{Code: ch, Text: string(ch)})
	}
}
