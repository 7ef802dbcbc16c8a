// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// and are guaranteed to match the actual runtime values. Using these constants
// instead of hardcoded strings prevents typo bugs (e.g., "escape" vs "esc").
//
// Single-character keys like "r", "y", "?" are not included here because they
// are unambiguous and cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Left   = tea.KeyPressMsg{Code: tea.KeyLeft}.String()   // "left"
	Right  = tea.KeyPressMsg{Code: tea.KeyRight}.String()  // "right"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
	F1         = tea.KeyPressMsg{Code: tea.KeyF1}.String()                         // "f1"
)

// Ctrl combinations
var (
	CtrlC = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlA = (tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}).String() // "ctrl+a"
	CtrlO = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String() // "ctrl+o"
	CtrlR = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String() // "ctrl+r"
	CtrlY = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String() // "ctrl+y"
)

// Alt+digit combinations select chat suggestions
var (
	Alt1 = (tea.KeyPressMsg{Code: '1', Mod: tea.ModAlt}).String() // "alt+1"
	Alt2 = (tea.KeyPressMsg{Code: '2', Mod: tea.ModAlt}).String() // "alt+2"
	Alt3 = (tea.KeyPressMsg{Code: '3', Mod: tea.ModAlt}).String() // "alt+3"
	Alt4 = (tea.KeyPressMsg{Code: '4', Mod: tea.ModAlt}).String() // "alt+4"

	AltComma = (tea.KeyPressMsg{Code: ',', Mod: tea.ModAlt}).String() // "alt+,"
)

// SuggestionIndex maps an alt+digit key to a zero-based suggestion index.
// Returns -1 for any other key.
func SuggestionIndex(key string) int {
	switch key {
	case Alt1:
		return 0
	case Alt2:
		return 1
	case Alt3:
		return 2
	case Alt4:
		return 3
	}
	return -1
}
