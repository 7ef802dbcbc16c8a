package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType selects the icon and color of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// FlashMessage is a transient status message that replaces the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically so expired flash messages get cleared
type FlashTickMsg time.Time

// FlashTick returns a command that sends a FlashTickMsg after one second
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	bindings     []KeyBinding
	tab          Tab
	busy         bool
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		tab: TabChat,
		bindings: []KeyBinding{
			{Key: "tab", Desc: "next tab"},
			{Key: "?/f1", Desc: "help"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(tab Tab, busy bool) {
	f.tab = tab
	f.busy = busy
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings allows custom keybindings
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired clears an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// tabBindings returns the shortcuts relevant to the active tab
func (f *Footer) tabBindings() []KeyBinding {
	switch f.tab {
	case TabChat:
		if f.busy {
			return []KeyBinding{
				{Key: "pgup/dn", Desc: "scroll"},
			}
		}
		return []KeyBinding{
			{Key: "enter", Desc: "send"},
			{Key: "alt+1-4", Desc: "suggestion"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	case TabSummary:
		if f.busy {
			return []KeyBinding{{Key: "pgup/dn", Desc: "scroll"}}
		}
		return []KeyBinding{
			{Key: "enter", Desc: "generate"},
			{Key: "pgup/dn", Desc: "scroll"},
		}
	case TabSearch:
		return []KeyBinding{
			{Key: "enter", Desc: "search"},
			{Key: "↑/↓", Desc: "select"},
			{Key: "ctrl+a", Desc: "ask about"},
			{Key: "ctrl+y", Desc: "copy link"},
			{Key: "ctrl+o", Desc: "options"},
		}
	case TabNews:
		return []KeyBinding{
			{Key: "←/→", Desc: "week"},
			{Key: "r", Desc: "refresh"},
			{Key: "↑/↓", Desc: "select"},
			{Key: "a", Desc: "ask about"},
			{Key: "y", Desc: "copy link"},
		}
	}
	return nil
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(renderFlash(f.flashMessage))
	}

	var parts []string
	for _, b := range append(f.tabBindings(), f.bindings...) {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	// One line only: cut the lowest-priority bindings rather than wrap
	if f.width > InputPaddingWidth {
		content = ansi.Truncate(content, f.width-InputPaddingWidth, "…")
	}

	return FooterStyle.Width(f.width).Render(content)
}

func renderFlash(msg *FlashMessage) string {
	var icon string
	var fg = ColorInfo
	switch msg.Type {
	case FlashError:
		icon, fg = "✕", ColorError
	case FlashWarning:
		icon, fg = "⚠", ColorWarning
	case FlashInfo:
		icon, fg = "ℹ", ColorInfo
	case FlashSuccess:
		icon, fg = "✓", ColorSuccess
	}
	return lipgloss.NewStyle().Foreground(fg).Bold(true).Render(icon + " " + msg.Text)
}
