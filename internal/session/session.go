package session

import (
	"math/rand/v2"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	idPrefix     = "session_"
	randomLength = 9
	base36       = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var idPattern = regexp.MustCompile(`^session_[0-9a-z]{9}_[0-9]+$`)

// NewID generates a fresh session identifier for the current time.
func NewID() string {
	return newIDAt(time.Now())
}

func newIDAt(t time.Time) string {
	var sb strings.Builder
	sb.WriteString(idPrefix)
	for i := 0; i < randomLength; i++ {
		sb.WriteByte(base36[rand.IntN(len(base36))])
	}
	sb.WriteByte('_')
	sb.WriteString(strconv.FormatInt(t.UnixMilli(), 10))
	return sb.String()
}

// ValidID reports whether id has the locally generated shape. Identifiers
// echoed by the backend are adopted regardless; this is for diagnostics.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// State is the session identifier plus the busy flag.
type State struct {
	id   string
	busy bool
}

// New returns a State with a freshly generated identifier.
func New() *State {
	return &State{id: NewID()}
}

// NewWithID returns a State using the given identifier.
func NewWithID(id string) *State {
	return &State{id: id}
}

// ID returns the current session identifier.
func (s *State) ID() string {
	return s.id
}

// Adopt replaces the identifier with one returned by the backend.
// Empty identifiers are ignored. Returns true if the identifier changed.
func (s *State) Adopt(id string) bool {
	if id == "" || id == s.id {
		return false
	}
	s.id = id
	return true
}

// Busy reports whether a gated request is in flight.
func (s *State) Busy() bool {
	return s.busy
}

// SetBusy sets the busy flag.
func (s *State) SetBusy(busy bool) {
	s.busy = busy
}
