package keys

import "testing"

// TestKeyStringValues verifies that all key constants produce the expected
// string representations. This acts as a safety net if Bubble Tea ever changes
// its key string format.
func TestKeyStringValues(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		// Navigation
		{"Up", Up, "up"},
		{"Down", Down, "down"},
		{"Left", Left, "left"},
		{"Right", Right, "right"},
		{"PgUp", PgUp, "pgup"},
		{"PgDown", PgDown, "pgdown"},

		// Actions
		{"Enter", Enter, "enter"},
		{"ShiftEnter", ShiftEnter, "shift+enter"},
		{"Tab", Tab, "tab"},
		{"ShiftTab", ShiftTab, "shift+tab"},
		{"Escape", Escape, "esc"},
		{"F1", F1, "f1"},

		// Ctrl combos
		{"CtrlC", CtrlC, "ctrl+c"},
		{"CtrlA", CtrlA, "ctrl+a"},
		{"CtrlO", CtrlO, "ctrl+o"},
		{"CtrlR", CtrlR, "ctrl+r"},
		{"CtrlY", CtrlY, "ctrl+y"},

		// Alt digits
		{"Alt1", Alt1, "alt+1"},
		{"Alt4", Alt4, "alt+4"},
		{"AltComma", AltComma, "alt+,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("keys.%s = %q, want %q", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestSuggestionIndex(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{Alt1, 0},
		{Alt2, 1},
		{Alt3, 2},
		{Alt4, 3},
		{"1", -1},
		{Enter, -1},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := SuggestionIndex(tt.key); got != tt.want {
				t.Errorf("SuggestionIndex(%q) = %d, want %d", tt.key, got, tt.want)
			}
		})
	}
}
