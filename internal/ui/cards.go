package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/newsdesk/internal/ui/modals"
)

// WeekOption is a selectable week: Value is sent to the backend, Label is shown.
type WeekOption = modals.WeekOption

// Card is one search result or news article ready for display.
type Card struct {
	// Title is the article title, used for ask-about.
	Title string
	// Heading is what the card shows as its title line; defaults to Title.
	Heading string
	Summary string
	Link    string
	Date    string
}

func (c Card) heading() string {
	if c.Heading != "" {
		return c.Heading
	}
	return c.Title
}

// cardList is the selectable list of cards shared by the search and news tabs.
type cardList struct {
	cards    []Card
	selected int
	action   string // shortcut hint shown on the selected card
}

func (l *cardList) set(cards []Card) {
	l.cards = cards
	l.selected = 0
}

func (l *cardList) move(delta int) bool {
	if len(l.cards) == 0 {
		return false
	}
	next := l.selected + delta
	if next < 0 {
		next = 0
	}
	if next >= len(l.cards) {
		next = len(l.cards) - 1
	}
	changed := next != l.selected
	l.selected = next
	return changed
}

func (l *cardList) current() (Card, bool) {
	if l.selected < 0 || l.selected >= len(l.cards) {
		return Card{}, false
	}
	return l.cards[l.selected], true
}

// render draws every card at the given outer width and returns the content
// together with the first line of the selected card.
func (l *cardList) render(width int) (string, int) {
	var sb strings.Builder
	selectedLine := 0
	lines := 0
	for i, card := range l.cards {
		if i == l.selected {
			selectedLine = lines
		}
		block := renderCard(card, width, i == l.selected, l.action)
		sb.WriteString(block)
		sb.WriteString("\n")
		lines += strings.Count(block, "\n") + 1
	}
	return strings.TrimSuffix(sb.String(), "\n"), selectedLine
}

func renderCard(card Card, width int, selected bool, action string) string {
	style := CardStyle
	if selected {
		style = CardSelectedStyle
	}
	// border + padding on both sides
	inner := width - BorderSize - InputPaddingWidth
	if inner < 10 {
		inner = 10
	}

	lines := []string{CardTitleStyle.Render(wordwrap.String(card.heading(), inner))}
	if card.Date != "" {
		lines = append(lines, CardMetaStyle.Render(card.Date))
	}
	if card.Summary != "" {
		lines = append(lines, CardSummaryStyle.Render(wordwrap.String(card.Summary, inner)))
	}
	if card.Link != "" {
		lines = append(lines, CardLinkStyle.Render(ansi.Truncate(card.Link, inner, "…")))
	}
	if selected && action != "" {
		lines = append(lines, CardActionStyle.Render(action))
	}

	return style.Width(width).Render(strings.Join(lines, "\n"))
}
