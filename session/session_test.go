package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grandvista/roomline/config"
)

func testConfig() *config.Config {
	return &config.Config{
		RedisURL:        "localhost:0", // unreachable on purpose; registry runs memory-only
		MaxSessions:     3,
		SessionTimeout:  30 * time.Minute,
		DefaultLanguage: "en-US",
	}
}

func TestHistoryWindowBounded(t *testing.T) {
	h := NewHistory(4)
	for i := 0; i < 10; i++ {
		h.Append(RoleUser, fmt.Sprintf("turn %d", i))
	}

	require.Equal(t, 4, h.Len())
	recent := h.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "turn 8", recent[0].Text)
	assert.Equal(t, "turn 9", recent[1].Text)

	// Asking for more than is retained returns what exists.
	assert.Len(t, h.Recent(100), 4)
	assert.Nil(t, h.Recent(0))
}

func TestSetRoomLocationNeverClearedByEmpty(t *testing.T) {
	s := newSession("CA001", "en-US")
	s.AwaitingLocation = true

	s.SetRoomLocation("204")
	assert.Equal(t, "204", s.RoomLocation)
	assert.False(t, s.AwaitingLocation)

	s.SetRoomLocation("")
	assert.Equal(t, "204", s.RoomLocation)
}

func TestManagerLifecycle(t *testing.T) {
	sm, err := NewManager(testConfig())
	require.NoError(t, err)
	defer sm.Shutdown()

	ctx := context.Background()

	s1, err := sm.GetOrCreate(ctx, "CA001", "")
	require.NoError(t, err)
	assert.Equal(t, "en-US", s1.Language)
	assert.Equal(t, PhaseBrowsing, s1.Phase)

	// Same call id returns the same session.
	again, err := sm.GetOrCreate(ctx, "CA001", "fr-FR")
	require.NoError(t, err)
	assert.Same(t, s1, again)
	assert.Equal(t, 1, sm.ActiveCount())

	// Removal is idempotent; lookups after removal find nothing.
	require.NoError(t, sm.Remove(ctx, "CA001"))
	require.NoError(t, sm.Remove(ctx, "CA001"))
	_, ok := sm.Get("CA001")
	assert.False(t, ok)
	assert.Zero(t, sm.ActiveCount())
}

func TestManagerMaxSessions(t *testing.T) {
	sm, err := NewManager(testConfig())
	require.NoError(t, err)
	defer sm.Shutdown()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := sm.GetOrCreate(ctx, fmt.Sprintf("CA%03d", i), "")
		require.NoError(t, err)
	}

	_, err = sm.GetOrCreate(ctx, "CA999", "")
	assert.Error(t, err)

	// An existing call is still reachable at the cap.
	_, err = sm.GetOrCreate(ctx, "CA001", "")
	assert.NoError(t, err)
}

func TestManagerCleanupInactive(t *testing.T) {
	cfg := testConfig()
	cfg.SessionTimeout = 10 * time.Millisecond
	sm, err := NewManager(cfg)
	require.NoError(t, err)
	defer sm.Shutdown()

	ctx := context.Background()
	_, err = sm.GetOrCreate(ctx, "CA001", "")
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	sm.CleanupInactive(ctx)
	assert.Zero(t, sm.ActiveCount())
}
