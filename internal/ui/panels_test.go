package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/newsdesk/internal/keys"
)

func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	}
	if len(key) == 1 {
		return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
	}
	return tea.KeyPressMsg{Code: -1, Text: key}
}

func typeInto(update func(tea.Msg), text string) {
	for _, r := range text {
		update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func sampleCards() []Card {
	return []Card{
		{Title: "First", Heading: "First (91% match)", Summary: "one", Link: "https://example.com/1"},
		{Title: "Second", Summary: "two", Link: "https://example.com/2", Date: "2025-08-28"},
		{Title: "Third", Summary: "three", Link: "https://example.com/3"},
	}
}

func TestChat_AppendAndRender(t *testing.T) {
	chat := NewChat([]string{"one", "two"})
	chat.SetSize(80, 20)
	chat.SetFocused(true)

	chat.AppendMessage(SenderUser, "hello")
	chat.AppendMessage(SenderAI, "hi there")

	msgs := chat.Messages()
	if len(msgs) != 2 {
		t.Fatalf("Messages() len = %d, want 2", len(msgs))
	}
	if msgs[0].Sender != SenderUser || msgs[1].Sender != SenderAI {
		t.Errorf("unexpected senders: %+v", msgs)
	}

	view := stripANSI(chat.View())
	for _, want := range []string{"You", "hello", "AI", "hi there", "alt+1", "alt+2"} {
		if !strings.Contains(view, want) {
			t.Errorf("chat view should contain %q", want)
		}
	}
}

func TestChat_SuggestionsCapped(t *testing.T) {
	chat := NewChat([]string{"a", "b", "c", "d", "e", "f"})
	if got := len(chat.Suggestions()); got != MaxSuggestions {
		t.Errorf("Suggestions() len = %d, want %d", got, MaxSuggestions)
	}
}

func TestChat_InputTyping(t *testing.T) {
	chat := NewChat(nil)
	chat.SetSize(80, 20)
	chat.SetFocused(true)

	typeInto(func(msg tea.Msg) { chat.Update(msg) }, "abc")
	if chat.Input() != "abc" {
		t.Errorf("Input() = %q, want %q", chat.Input(), "abc")
	}

	chat.SetInput("")
	if chat.Input() != "" {
		t.Errorf("Input() = %q after clearing, want empty", chat.Input())
	}
}

func TestChat_DisabledIgnoresTyping(t *testing.T) {
	chat := NewChat(nil)
	chat.SetSize(80, 20)
	chat.SetFocused(true)
	chat.SetDisabled(true)

	typeInto(func(msg tea.Msg) { chat.Update(msg) }, "abc")
	if chat.Input() != "" {
		t.Errorf("disabled chat accepted input %q", chat.Input())
	}
	if !chat.Disabled() {
		t.Error("Disabled() should be true")
	}
}

func TestSummary_Paragraphs(t *testing.T) {
	summary := NewSummary()
	summary.SetSize(80, 20)

	if !strings.Contains(stripANSI(summary.View()), "No summary yet") {
		t.Error("empty summary should show a hint")
	}

	summary.SetParagraphs([]string{"Para one", "Para two"})
	view := stripANSI(summary.View())
	if !strings.Contains(view, "Para one") || !strings.Contains(view, "Para two") {
		t.Errorf("summary view should show paragraphs, got %q", view)
	}

	summary.SetDisabled(true)
	if !strings.Contains(stripANSI(summary.View()), "Generating") {
		t.Error("disabled summary should show progress text")
	}
}

func TestSearch_ResultsAndSelection(t *testing.T) {
	search := NewSearch(10)
	search.SetSize(100, 30)
	search.SetFocused(true)

	search.ShowResults(`Found 3 articles for "x"`, sampleCards())

	if card, ok := search.Selected(); !ok || card.Title != "First" {
		t.Errorf("Selected() = %+v, %v; want First", card, ok)
	}

	search.Update(keyPress(keys.Down))
	search.Update(keyPress(keys.Down))
	search.Update(keyPress(keys.Down))
	if card, _ := search.Selected(); card.Title != "Third" {
		t.Errorf("selection should clamp at the last card, got %q", card.Title)
	}

	search.Update(keyPress(keys.Up))
	if card, _ := search.Selected(); card.Title != "Second" {
		t.Errorf("selection should move up, got %q", card.Title)
	}

	view := stripANSI(search.View())
	for _, want := range []string{`Found 3 articles for "x"`, "First (91% match)", "Week: All Articles", "Limit: 10"} {
		if !strings.Contains(view, want) {
			t.Errorf("search view should contain %q", want)
		}
	}
}

func TestSearch_MessageClearsResults(t *testing.T) {
	search := NewSearch(10)
	search.SetSize(100, 30)
	search.ShowResults("Found 3", sampleCards())

	search.ShowMessage("Error: Search failed", true)

	if len(search.Cards()) != 0 {
		t.Error("ShowMessage should clear previous results")
	}
	if search.Stats() != "" {
		t.Error("ShowMessage should clear the count line")
	}
	if _, ok := search.Selected(); ok {
		t.Error("nothing should be selected after an error")
	}
	if !strings.Contains(stripANSI(search.View()), "Error: Search failed") {
		t.Error("error text should be visible")
	}
}

func TestSearch_OptionsAndQuery(t *testing.T) {
	search := NewSearch(10)
	search.SetSize(100, 30)
	search.SetFocused(true)

	if week, limit := search.Options(); week != "all" || limit != 10 {
		t.Errorf("Options() = %q, %d; want all, 10", week, limit)
	}

	search.SetOptions("2025-W35", "Week 2025-W35", 20)
	if week, limit := search.Options(); week != "2025-W35" || limit != 20 {
		t.Errorf("Options() = %q, %d; want 2025-W35, 20", week, limit)
	}

	search.SetOptions("all", "", 0)
	if _, limit := search.Options(); limit != 20 {
		t.Errorf("a non-positive limit should be ignored, got %d", limit)
	}

	typeInto(func(msg tea.Msg) { search.Update(msg) }, "ai safety")
	if search.Query() != "ai safety" {
		t.Errorf("Query() = %q, want %q", search.Query(), "ai safety")
	}
}

func TestNews_Weeks(t *testing.T) {
	news := NewNews()
	news.SetSize(100, 30)

	if news.SelectedWeek() != "" {
		t.Error("no week should be selected before weeks are known")
	}

	news.SetWeeks([]WeekOption{
		{Value: "all", Label: "All Articles"},
		{Value: "2025-W35", Label: "Week 2025-W35"},
		{Value: "2025-W34", Label: "Week 2025-W34"},
	})
	if news.SelectedWeek() != "2025-W35" {
		t.Errorf("SelectedWeek() = %q, want the newest concrete week", news.SelectedWeek())
	}

	if !news.CycleWeek(1) || news.SelectedWeek() != "2025-W34" {
		t.Errorf("CycleWeek(1) should move to 2025-W34, got %q", news.SelectedWeek())
	}
	if news.CycleWeek(1) {
		t.Error("CycleWeek past the end should report no change")
	}
	news.CycleWeek(-1)
	news.CycleWeek(-1)
	if news.SelectedWeek() != "all" {
		t.Errorf("SelectedWeek() = %q, want all", news.SelectedWeek())
	}

	// Reloading the list keeps a still-offered selection
	news.SetWeeks([]WeekOption{{Value: "all", Label: "All Articles"}, {Value: "2025-W36", Label: "Week 2025-W36"}})
	if news.SelectedWeek() != "all" {
		t.Errorf("SelectedWeek() = %q, want all to survive a reload", news.SelectedWeek())
	}
}

func TestNews_ArticlesAndPlaceholder(t *testing.T) {
	news := NewNews()
	news.SetSize(100, 30)
	news.SetFocused(true)

	news.ShowArticles(sampleCards())
	if !news.Loaded() || news.Placeholder() != "" {
		t.Error("articles should replace the placeholder")
	}
	news.Update(keyPress("j"))
	if card, _ := news.Selected(); card.Title != "Second" {
		t.Errorf("Selected() = %q, want Second", card.Title)
	}
	view := stripANSI(news.View())
	if !strings.Contains(view, "2025-08-28") {
		t.Error("article dates should be rendered")
	}

	news.ShowPlaceholder("No articles found")
	if len(news.Cards()) != 0 {
		t.Error("placeholder should clear the cards")
	}
	if !strings.Contains(stripANSI(news.View()), "No articles found") {
		t.Error("placeholder text should be visible")
	}
}

func TestLoading_TickChain(t *testing.T) {
	var l Loading

	if l.View() != "" {
		t.Error("inactive indicator should render nothing")
	}
	if cmd := l.Start(); cmd == nil {
		t.Fatal("first Start should schedule a tick")
	}
	if cmd := l.Start(); cmd != nil {
		t.Error("Start while active should not start a second chain")
	}
	if !strings.Contains(stripANSI(l.View()), "Loading...") {
		t.Error("active indicator should render its label")
	}

	gen := l.gen
	if cmd := l.Tick(LoadingTickMsg{Gen: gen}); cmd == nil {
		t.Error("tick of the current chain should continue it")
	}

	l.Stop()
	if cmd := l.Tick(LoadingTickMsg{Gen: gen}); cmd != nil {
		t.Error("tick after Stop should end the chain")
	}

	l.Start()
	if cmd := l.Tick(LoadingTickMsg{Gen: gen}); cmd != nil {
		t.Error("tick from a superseded chain should be dropped")
	}
}
