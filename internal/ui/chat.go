package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textarea"
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zhubert/newsdesk/internal/keys"
)

// Sender identifies who wrote a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one rendered transcript entry
type ChatMessage struct {
	Sender Sender
	Body   string
}

// Chat is the chat tab: transcript viewport, suggestion shortcuts and input.
type Chat struct {
	width  int
	height int

	viewport    viewport.Model
	input       textarea.Model
	messages    []ChatMessage
	suggestions []string

	focused  bool
	disabled bool
}

// NewChat creates a new chat panel
func NewChat(suggestions []string) *Chat {
	ti := textarea.New()
	ti.Placeholder = "Ask about this week's AI news..."
	ti.CharLimit = ChatInputCharLimit
	ti.SetHeight(TextareaHeight)
	ti.ShowLineNumbers = false
	ti.Prompt = ""
	// Enter sends; newlines need a modifier
	ti.KeyMap.InsertNewline.SetKeys(keys.ShiftEnter, "ctrl+j")

	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}

	c := &Chat{
		viewport:    vp,
		input:       ti,
		suggestions: suggestions,
	}
	c.updateContent()
	return c
}

// suggestionsHeight is the single row of suggestion shortcuts, if any
func (c *Chat) suggestionsHeight() int {
	if len(c.suggestions) == 0 {
		return 0
	}
	return 1
}

// SetSize sets the chat panel dimensions
func (c *Chat) SetSize(width, height int) {
	c.width = width
	c.height = height

	ctx := GetViewContext()

	transcriptHeight := height - InputTotalHeight - c.suggestionsHeight()
	innerWidth := ctx.InnerWidth(width)
	viewportHeight := ctx.InnerHeight(transcriptHeight)
	if viewportHeight < 1 {
		viewportHeight = 1
	}

	c.viewport.SetWidth(innerWidth)
	c.viewport.SetHeight(viewportHeight)

	// Input width accounts for its own border AND padding
	c.input.SetWidth(ctx.InnerWidth(width) - InputPaddingWidth)

	ctx.Log("Chat.SetSize", "width", width, "height", height, "viewportHeight", viewportHeight)
	c.updateContent()
}

// SetFocused sets the focus state
func (c *Chat) SetFocused(focused bool) {
	c.focused = focused
	c.syncInputFocus()
}

// SetDisabled disables the send control while a request is in flight
func (c *Chat) SetDisabled(disabled bool) {
	c.disabled = disabled
	c.syncInputFocus()
}

// Disabled reports whether sending is disabled
func (c *Chat) Disabled() bool {
	return c.disabled
}

func (c *Chat) syncInputFocus() {
	if c.focused && !c.disabled {
		c.input.Focus()
	} else {
		c.input.Blur()
	}
}

// AppendMessage adds a message to the transcript and scrolls to it
func (c *Chat) AppendMessage(sender Sender, body string) {
	c.messages = append(c.messages, ChatMessage{Sender: sender, Body: body})
	c.updateContent()
}

// Messages returns a copy of the transcript
func (c *Chat) Messages() []ChatMessage {
	out := make([]ChatMessage, len(c.messages))
	copy(out, c.messages)
	return out
}

// Input returns the raw input text
func (c *Chat) Input() string {
	return c.input.Value()
}

// SetInput replaces the input text
func (c *Chat) SetInput(text string) {
	if text == "" {
		c.input.Reset()
		return
	}
	c.input.SetValue(text)
}

// Suggestions returns the preset prompts in shortcut order
func (c *Chat) Suggestions() []string {
	return c.suggestions
}

func (c *Chat) updateContent() {
	wrapWidth := c.viewport.Width()
	if wrapWidth <= 0 {
		wrapWidth = DefaultWrapWidth
	}

	var sb strings.Builder
	if len(c.messages) == 0 {
		sb.WriteString(StatusMutedStyle.Render(wordwrap.String(
			"Ask anything about this week's AI news, or pick a suggestion below.", wrapWidth)))
	}
	for i, msg := range c.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		if msg.Sender == SenderUser {
			sb.WriteString(ChatUserStyle.Render("You"))
		} else {
			sb.WriteString(ChatAssistantStyle.Render("AI"))
		}
		sb.WriteString("\n")
		sb.WriteString(renderMessageBody(msg.Body, wrapWidth))
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

// Update handles messages
func (c *Chat) Update(msg tea.Msg) (*Chat, tea.Cmd) {
	if keyMsg, isKey := msg.(tea.KeyPressMsg); isKey {
		switch keyMsg.String() {
		case keys.PgUp, keys.PgDown, "ctrl+up", "ctrl+down":
			var cmd tea.Cmd
			c.viewport, cmd = c.viewport.Update(msg)
			return c, cmd
		}
		if !c.focused || c.disabled {
			return c, nil
		}
		var cmd tea.Cmd
		c.input, cmd = c.input.Update(msg)
		return c, cmd
	}

	var cmd tea.Cmd
	c.viewport, cmd = c.viewport.Update(msg)
	return c, cmd
}

func (c *Chat) renderSuggestions() string {
	if len(c.suggestions) == 0 {
		return ""
	}
	slot := c.width / len(c.suggestions)
	parts := make([]string, len(c.suggestions))
	for i, s := range c.suggestions {
		key := fmt.Sprintf("alt+%d ", i+1)
		text := runewidth.Truncate(s, max(slot-len(key)-2, 1), "…")
		parts[i] = SuggestionKeyStyle.Render(key) + SuggestionTextStyle.Render(text)
	}
	return " " + strings.Join(parts, "  ")
}

// View renders the chat panel
func (c *Chat) View() string {
	panelStyle := PanelStyle
	if c.focused {
		panelStyle = PanelFocusedStyle
	}

	transcriptHeight := c.height - InputTotalHeight - c.suggestionsHeight()
	transcript := panelStyle.Width(c.width).Height(transcriptHeight).Render(c.viewport.View())

	inputStyle := ChatInputStyle
	switch {
	case c.disabled:
		inputStyle = ChatInputDisabledStyle
	case c.focused:
		inputStyle = ChatInputFocusedStyle
	}
	inputArea := inputStyle.Width(c.width).Render(c.input.View())

	parts := []string{transcript}
	if s := c.renderSuggestions(); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, inputArea)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
