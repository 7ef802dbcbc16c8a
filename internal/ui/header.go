package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// Header represents the top header bar
type Header struct {
	width     int
	serverURL string
	sessionID string
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetServer sets the backend URL to display
func (h *Header) SetServer(url string) {
	h.serverURL = url
}

// SetSessionID sets the chat session identifier to display
func (h *Header) SetSessionID(id string) {
	h.sessionID = id
}

// View renders the header
func (h *Header) View() string {
	titleText := " newsdesk"
	var rightText string
	if h.serverURL != "" {
		rightText = h.serverURL
		if h.sessionID != "" {
			rightText += " (" + h.sessionID + ")"
		}
		rightText += " "
	}

	// Drop the right side before overflowing the terminal
	if h.width > 0 && len(titleText)+len(rightText) > h.width {
		rightText = ansi.Truncate(rightText, h.width-len(titleText), "… ")
	}

	paddingLen := h.width - len(titleText) - len(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent, h.sessionID)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The session portion, if present, is muted.
func (h *Header) renderGradient(content string, sessionID string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	// End color: fade to the main background
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	mutedStart := -1
	if sessionID != "" {
		if idx := strings.Index(content, "("+sessionID+")"); idx >= 0 {
			mutedStart = len([]rune(content[:idx]))
		}
	}

	width := len(runes)
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().
			Background(bgColor).
			Bold(i < 9) // " newsdesk"

		if mutedStart >= 0 && i >= mutedStart {
			style = style.Foreground(mutedColor)
		} else {
			style = style.Foreground(textColor)
		}

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
