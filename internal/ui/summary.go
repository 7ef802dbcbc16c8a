package ui

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// Summary is the summary tab: a generate action and the resulting paragraphs.
type Summary struct {
	width  int
	height int

	viewport   viewport.Model
	paragraphs []string
	focused    bool
	disabled   bool
}

// NewSummary creates a new summary panel
func NewSummary() *Summary {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	s := &Summary{viewport: vp}
	s.updateContent()
	return s
}

// SetSize sets the summary panel dimensions
func (s *Summary) SetSize(width, height int) {
	s.width = width
	s.height = height

	ctx := GetViewContext()
	panelHeight := height - StatusLineHeight
	viewportHeight := ctx.InnerHeight(panelHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	s.viewport.SetWidth(ctx.InnerWidth(width))
	s.viewport.SetHeight(viewportHeight)
	s.updateContent()
}

// SetFocused sets the focus state
func (s *Summary) SetFocused(focused bool) {
	s.focused = focused
}

// SetDisabled disables the generate control while a request is in flight
func (s *Summary) SetDisabled(disabled bool) {
	s.disabled = disabled
}

// Disabled reports whether generating is disabled
func (s *Summary) Disabled() bool {
	return s.disabled
}

// SetParagraphs replaces the summary body
func (s *Summary) SetParagraphs(paragraphs []string) {
	s.paragraphs = paragraphs
	s.updateContent()
	s.viewport.GotoTop()
}

// Paragraphs returns the current summary body
func (s *Summary) Paragraphs() []string {
	return s.paragraphs
}

func (s *Summary) updateContent() {
	wrapWidth := s.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	if len(s.paragraphs) == 0 {
		s.viewport.SetContent(StatusMutedStyle.Render(
			wordwrap.String("No summary yet. Press enter to generate this week's summary.", wrapWidth)))
		return
	}

	rendered := make([]string, len(s.paragraphs))
	for i, p := range s.paragraphs {
		rendered[i] = ChatMessageStyle.Render(wordwrap.String(p, wrapWidth))
	}
	s.viewport.SetContent(strings.Join(rendered, "\n\n"))
}

// Update handles scrolling; the generate key is handled by the app
func (s *Summary) Update(msg tea.Msg) (*Summary, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// View renders the summary panel
func (s *Summary) View() string {
	var status string
	if s.disabled {
		status = StatusMutedStyle.Render(" Generating summary...")
	} else {
		status = " " + FooterKeyStyle.Render("enter") + FooterDescStyle.Render(": generate weekly summary")
	}

	panelStyle := PanelStyle
	if s.focused {
		panelStyle = PanelFocusedStyle
	}
	body := panelStyle.Width(s.width).Height(s.height - StatusLineHeight).Render(s.viewport.View())
	return lipgloss.JoinVertical(lipgloss.Left, status, body)
}
