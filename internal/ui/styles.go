package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, replaced wholesale by regenerateStyles on theme change
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorBgSelected  color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorUser        color.Color
	ColorAssistant   color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
	ColorLink        color.Color
)

// Header and tab bar styles
var (
	HeaderStyle      lipgloss.Style
	HeaderTitleStyle lipgloss.Style

	TabStyle         lipgloss.Style
	TabActiveStyle   lipgloss.Style
	TabDisabledStyle lipgloss.Style
)

// Footer styles
var (
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Panel and list styles
var (
	PanelStyle        lipgloss.Style
	PanelFocusedStyle lipgloss.Style
	PanelTitleStyle   lipgloss.Style

	ItemStyle         lipgloss.Style
	ItemSelectedStyle lipgloss.Style
)

// Chat styles
var (
	ChatUserStyle          lipgloss.Style
	ChatAssistantStyle     lipgloss.Style
	ChatMessageStyle       lipgloss.Style
	ChatInputStyle         lipgloss.Style
	ChatInputFocusedStyle  lipgloss.Style
	ChatInputDisabledStyle lipgloss.Style
	CodeGutterStyle        lipgloss.Style

	SuggestionKeyStyle  lipgloss.Style
	SuggestionTextStyle lipgloss.Style
)

// Card styles for search results and news articles
var (
	CardStyle         lipgloss.Style
	CardSelectedStyle lipgloss.Style
	CardTitleStyle    lipgloss.Style
	CardMetaStyle     lipgloss.Style
	CardSummaryStyle  lipgloss.Style
	CardLinkStyle     lipgloss.Style
	CardActionStyle   lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Status styles
var (
	StatusLoadingStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style
	StatusMutedStyle   lipgloss.Style
	StatusInfoStyle    lipgloss.Style
)

// buildStyles derives every style from the current color palette.
func buildStyles() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	TabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 2)

	TabActiveStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 2)

	TabDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorBorder).
		Padding(0, 2)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	ItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	ItemSelectedStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	ChatUserStyle = lipgloss.NewStyle().
		Foreground(ColorUser).
		Bold(true)

	ChatAssistantStyle = lipgloss.NewStyle().
		Foreground(ColorAssistant).
		Bold(true)

	ChatMessageStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	CodeGutterStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	ChatInputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ChatInputFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	ChatInputDisabledStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Foreground(ColorTextMuted).
		Padding(0, 1)

	SuggestionKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	SuggestionTextStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	CardTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	CardMetaStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	CardSummaryStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	CardLinkStyle = lipgloss.NewStyle().
		Foreground(ColorLink).
		Underline(true)

	CardActionStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusLoadingStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	StatusMutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	StatusInfoStyle = lipgloss.NewStyle().
		Foreground(ColorInfo)
}
