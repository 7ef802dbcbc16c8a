package ui

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"
)

// stripANSI removes ANSI escape codes from a string for testing
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;:]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func TestNewHeader(t *testing.T) {
	header := NewHeader()

	if header == nil {
		t.Fatal("NewHeader() returned nil")
	}
	if header.serverURL != "" || header.sessionID != "" {
		t.Error("Expected empty header initially")
	}
}

func TestHeader_View_TitleOnly(t *testing.T) {
	header := NewHeader()
	header.SetWidth(80)

	view := stripANSI(header.View())

	if !strings.Contains(view, "newsdesk") {
		t.Errorf("Header should contain 'newsdesk' title, got: %q", view)
	}
	if got := utf8.RuneCountInString(view); got != 80 {
		t.Errorf("Header should fill the width, got %d runes", got)
	}
}

func TestHeader_View_WithServerAndSession(t *testing.T) {
	header := NewHeader()
	header.SetWidth(120)
	header.SetServer("http://localhost:5111")
	header.SetSessionID("session_abc123xyz_1700000000000")

	view := stripANSI(header.View())

	if !strings.Contains(view, "http://localhost:5111") {
		t.Errorf("Header should show the server, got: %q", view)
	}
	if !strings.Contains(view, "(session_abc123xyz_1700000000000)") {
		t.Errorf("Header should show the session, got: %q", view)
	}
}

func TestHeader_View_Narrow(t *testing.T) {
	header := NewHeader()
	header.SetWidth(30)
	header.SetServer("http://news.example.com:5111")
	header.SetSessionID("session_abc123xyz_1700000000000")

	view := stripANSI(header.View())

	if got := utf8.RuneCountInString(view); got > 30 {
		t.Errorf("Header should not exceed the width, got %d runes: %q", got, view)
	}
	if !strings.HasPrefix(view, " newsdesk") {
		t.Errorf("Title should survive truncation, got: %q", view)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b int
	}{
		{"#7C3AED", 0x7C, 0x3A, 0xED},
		{"#000000", 0, 0, 0},
		{"bad", 0, 0, 0},
	}
	for _, tt := range tests {
		r, g, b := parseHexColor(tt.hex)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHexColor(%q) = %d,%d,%d, want %d,%d,%d", tt.hex, r, g, b, tt.r, tt.g, tt.b)
		}
	}
}
