package session

import (
	"strings"
	"testing"
	"time"
)

func TestNewID_Format(t *testing.T) {
	at := time.UnixMilli(1718031245123)
	id := newIDAt(at)

	if !strings.HasPrefix(id, "session_") {
		t.Errorf("id %q should start with session_", id)
	}
	if !strings.HasSuffix(id, "_1718031245123") {
		t.Errorf("id %q should end with the unix millis", id)
	}
	if !ValidID(id) {
		t.Errorf("ValidID(%q) = false", id)
	}
	if len(id) != len("session_")+9+1+len("1718031245123") {
		t.Errorf("id %q has unexpected length %d", id, len(id))
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewID()
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestValidID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"session_abc123xyz_1718031245123", true},
		{"session_ABC123XYZ_1718031245123", false},
		{"session_abc_1718031245123", false},
		{"sess_abc123xyz_1", false},
		{"session_abc123xyz_", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ValidID(tt.id); got != tt.want {
				t.Errorf("ValidID(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestState_Adopt(t *testing.T) {
	s := NewWithID("session_local0000_1")

	if s.Adopt("") {
		t.Error("Adopt(\"\") should be ignored")
	}
	if s.ID() != "session_local0000_1" {
		t.Errorf("ID() = %q after empty adopt", s.ID())
	}
	if s.Adopt("session_local0000_1") {
		t.Error("Adopt of the same id should report no change")
	}
	if !s.Adopt("server-issued-42") {
		t.Error("Adopt of a new id should report a change")
	}
	if s.ID() != "server-issued-42" {
		t.Errorf("ID() = %q, want server-issued-42", s.ID())
	}
}

func TestState_Busy(t *testing.T) {
	s := New()
	if s.Busy() {
		t.Error("new state should not be busy")
	}
	s.SetBusy(true)
	if !s.Busy() {
		t.Error("Busy() should be true after SetBusy(true)")
	}
	s.SetBusy(false)
	if s.Busy() {
		t.Error("Busy() should be false after SetBusy(false)")
	}
}
