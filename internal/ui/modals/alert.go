package modals

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
)

// =============================================================================
// AlertState - blocking message that must be dismissed
// =============================================================================

// AlertState shows a single message until the user dismisses it.
type AlertState struct {
	heading string
	Message string
}

func (*AlertState) modalState() {}

func (s *AlertState) Title() string { return s.heading }

func (s *AlertState) Help() string { return "Enter/Esc: dismiss" }

func (s *AlertState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	body := lipgloss.NewStyle().
		Foreground(ColorError).
		Render(wordwrap.String(s.Message, ModalWidth-6))
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (s *AlertState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewAlertState creates an alert with the given title and message.
func NewAlertState(title, message string) *AlertState {
	if title == "" {
		title = "Alert"
	}
	return &AlertState{heading: title, Message: message}
}
