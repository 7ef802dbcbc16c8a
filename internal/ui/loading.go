package ui

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// LoadingTickMsg advances the loading spinner. Gen identifies the tick chain
// so a restarted spinner never animates twice as fast.
type LoadingTickMsg struct {
	Gen int
}

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

func loadingTick(gen int) tea.Cmd {
	return tea.Tick(SpinnerInterval, func(time.Time) tea.Msg {
		return LoadingTickMsg{Gen: gen}
	})
}

// Loading is the busy indicator shown while a request is in flight.
type Loading struct {
	active bool
	frame  int
	gen    int
}

// Start shows the indicator. It returns a tick command only when the
// indicator was not already running.
func (l *Loading) Start() tea.Cmd {
	if l.active {
		return nil
	}
	l.active = true
	l.frame = 0
	l.gen++
	return loadingTick(l.gen)
}

// Stop hides the indicator; the pending tick chain ends on its next tick.
func (l *Loading) Stop() {
	l.active = false
}

// Active reports whether the indicator is showing.
func (l *Loading) Active() bool {
	return l.active
}

// Tick advances the animation and schedules the next frame. Ticks from a
// stopped or superseded chain are dropped.
func (l *Loading) Tick(msg LoadingTickMsg) tea.Cmd {
	if !l.active || msg.Gen != l.gen {
		return nil
	}
	l.frame = (l.frame + 1) % len(spinnerFrames)
	return loadingTick(l.gen)
}

// View renders the spinner and label, or "" when inactive.
func (l *Loading) View() string {
	if !l.active {
		return ""
	}
	return StatusLoadingStyle.Render(spinnerFrames[l.frame] + " Loading...")
}
