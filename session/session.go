// Package session holds the per-call dialogue state and the registry
// that maps call identifiers to it. Within one call, utterances are
// strictly sequential; the mutex on a session only guards the fields
// the cleanup routine reads concurrently.
package session

import (
	"sync"
	"time"

	"github.com/grandvista/roomline/order"
)

// Phase is the advisory label describing where a session sits in the
// browsing → ordering → completion arc. It shapes the responder context
// but is not a strict gate.
type Phase string

const (
	PhaseBrowsing         Phase = "browsing"
	PhaseOrdering         Phase = "ordering"
	PhaseAwaitingLocation Phase = "awaiting_location"
	PhaseCompleting       Phase = "completing"
	PhaseComplete         Phase = "complete"
)

// Session is the mutable state of one ongoing phone call.
type Session struct {
	CallID string

	History *History
	Order   *order.Ledger

	RoomLocation     string
	AwaitingLocation bool
	OrderComplete    bool
	Phase            Phase
	Language         string

	// FinalizeToken dedupes the confirmation dispatch across retries of
	// one finalize cycle. Minted on the first attempt, cleared on success.
	FinalizeToken string

	CreatedAt    time.Time
	LastActivity time.Time

	mu sync.RWMutex
}

// historyWindow is the number of turns retained per session; only the
// most recent few are ever fed to the responder.
const historyWindow = 12

func newSession(callID, language string) *Session {
	now := time.Now()
	return &Session{
		CallID:       callID,
		History:      NewHistory(historyWindow),
		Order:        &order.Ledger{},
		Phase:        PhaseBrowsing,
		Language:     language,
		CreatedAt:    now,
		LastActivity: now,
	}
}

// Touch updates the last-activity timestamp.
func (s *Session) Touch() {
	s.mu.Lock()
	s.LastActivity = time.Now()
	s.mu.Unlock()
}

// LastActive returns the last-activity timestamp.
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.LastActivity
}

// SetLanguage updates the output language. Empty or unchanged tags are
// ignored.
func (s *Session) SetLanguage(tag string) {
	if tag != "" {
		s.Language = tag
	}
}

// SetRoomLocation records the delivery location and clears the
// awaiting-location flag. An empty value never overwrites a set one.
func (s *Session) SetRoomLocation(room string) {
	if room == "" {
		return
	}
	s.RoomLocation = room
	s.AwaitingLocation = false
}
