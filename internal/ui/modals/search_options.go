package modals

import (
	"fmt"
	"slices"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// =============================================================================
// SearchOptionsState - week filter and result limit for search
// =============================================================================

type SearchOptionsState struct {
	// Bound form values
	week  string
	limit int

	form *huh.Form
}

func (*SearchOptionsState) modalState() {}

func (s *SearchOptionsState) Title() string { return "Search Options" }

func (s *SearchOptionsState) Help() string {
	return "Tab: next field  Enter: apply  Esc: cancel"
}

func (s *SearchOptionsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SearchOptionsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Week returns the selected week filter value.
func (s *SearchOptionsState) Week() string {
	return s.week
}

// Limit returns the selected maximum number of results.
func (s *SearchOptionsState) Limit() int {
	return s.limit
}

// NewSearchOptionsState creates the search options form. weeks supplies the
// filter choices; the current week and limit are preselected. A current value
// missing from the choices is added so the form never drops it silently.
func NewSearchOptionsState(weeks []WeekOption, currentWeek string, limits []int, currentLimit int) *SearchOptionsState {
	s := &SearchOptionsState{
		week:  currentWeek,
		limit: currentLimit,
	}

	weekOptions := make([]huh.Option[string], 0, len(weeks)+1)
	found := false
	for _, w := range weeks {
		weekOptions = append(weekOptions, huh.NewOption(TruncateString(w.Label, ModalWidth-10), w.Value))
		if w.Value == currentWeek {
			found = true
		}
	}
	if !found && currentWeek != "" {
		weekOptions = append(weekOptions, huh.NewOption(currentWeek, currentWeek))
	}

	if !slices.Contains(limits, currentLimit) {
		limits = append(slices.Clone(limits), currentLimit)
		slices.Sort(limits)
	}
	limitOptions := make([]huh.Option[int], len(limits))
	for i, n := range limits {
		limitOptions[i] = huh.NewOption(fmt.Sprintf("%d results", n), n)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Week").
				Description("Only search articles from this week").
				Options(weekOptions...).
				Value(&s.week),
			huh.NewSelect[int]().
				Title("Limit").
				Options(limitOptions...).
				Value(&s.limit),
		),
	).WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 6)

	initHuhForm(s.form)
	return s
}
