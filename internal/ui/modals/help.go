package modals

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/newsdesk/internal/keys"
)

// =============================================================================
// HelpState - State for the Help modal with keyboard shortcuts
// =============================================================================

type HelpState struct {
	Sections      []HelpSection
	SelectedIndex int // index into the flattened shortcut list
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string { return "↑/↓ to browse, Esc to close" }

func (s *HelpState) Render() string {
	var b strings.Builder
	b.WriteString(ModalTitleStyle.Render(s.Title()) + "\n")

	offset := 0
	for i, section := range s.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(section.Title) + "\n")

		items := make([]string, len(section.Shortcuts))
		for j, sc := range section.Shortcuts {
			items[j] = fmt.Sprintf("%-14s %s", sc.Key, sc.Desc)
		}
		b.WriteString(RenderSelectableList(items, s.SelectedIndex-offset))
		offset += len(section.Shortcuts)
	}

	b.WriteString(ModalHelpStyle.Render(s.Help()))
	return b.String()
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case keys.Up, "k":
			if s.SelectedIndex > 0 {
				s.SelectedIndex--
			}
		case keys.Down, "j":
			if s.SelectedIndex < s.total()-1 {
				s.SelectedIndex++
			}
		}
	}
	return s, nil
}

func (s *HelpState) total() int {
	n := 0
	for _, section := range s.Sections {
		n += len(section.Shortcuts)
	}
	return n
}

// NewHelpState creates a help modal listing the given sections.
func NewHelpState(sections []HelpSection) *HelpState {
	return &HelpState{Sections: sections}
}
