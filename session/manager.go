package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/grandvista/roomline/config"
	"github.com/grandvista/roomline/logging"
)

// Manager is the registry mapping call identifiers to sessions. It is
// the only process-wide session state; everything that needs it takes
// it as a dependency.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	redis    *redis.Client
	config   *config.Config
	log      *zap.Logger
}

// NewManager creates a session registry with a Redis metadata mirror.
// Redis being unreachable is not fatal; the registry runs memory-only.
func NewManager(cfg *config.Config) (*Manager, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	log := logging.L()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warn("Redis unavailable, running memory-only", zap.Error(err))
		redisClient = nil
	}

	return &Manager{
		sessions: make(map[string]*Session),
		redis:    redisClient,
		config:   cfg,
		log:      log,
	}, nil
}

// GetOrCreate returns the session for a call, creating it lazily on the
// call's first utterance. The language applies only at creation; later
// changes go through the classifier.
func (sm *Manager) GetOrCreate(ctx context.Context, callID, language string) (*Session, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if s, ok := sm.sessions[callID]; ok {
		return s, nil
	}

	if len(sm.sessions) >= sm.config.MaxSessions {
		return nil, fmt.Errorf("maximum sessions reached")
	}

	if language == "" {
		language = sm.config.DefaultLanguage
	}
	s := newSession(callID, language)
	sm.sessions[callID] = s
	sm.mirrorSession(ctx, s)
	sm.log.Info("session created", zap.String("call_id", callID), zap.String("language", language))
	return s, nil
}

// Get retrieves a session by call identifier.
func (sm *Manager) Get(callID string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, ok := sm.sessions[callID]
	return s, ok
}

// Remove discards all state for a call. Removing an unknown call is a
// no-op, not an error.
func (sm *Manager) Remove(ctx context.Context, callID string) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if _, ok := sm.sessions[callID]; !ok {
		return nil
	}
	delete(sm.sessions, callID)
	sm.dropMirror(ctx, callID)
	sm.log.Info("session removed", zap.String("call_id", callID))
	return nil
}

// ActiveCount returns the current session count.
func (sm *Manager) ActiveCount() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// mirrorSession writes session metadata to Redis with the session TTL.
func (sm *Manager) mirrorSession(ctx context.Context, s *Session) {
	if sm.redis == nil {
		return
	}
	sm.redis.HSet(ctx, "call:"+s.CallID, map[string]interface{}{
		"created_at":    s.CreatedAt.Format(time.RFC3339),
		"last_activity": s.LastActive().Format(time.RFC3339),
		"language":      s.Language,
		"phase":         string(s.Phase),
	})
	sm.redis.SAdd(ctx, "active_calls", s.CallID)
	sm.redis.Expire(ctx, "call:"+s.CallID, sm.config.SessionTimeout)
}

func (sm *Manager) dropMirror(ctx context.Context, callID string) {
	if sm.redis == nil {
		return
	}
	sm.redis.Del(ctx, "call:"+callID)
	sm.redis.SRem(ctx, "active_calls", callID)
}

// CleanupInactive removes sessions idle past the configured timeout.
// Telephony normally signals call end explicitly; this catches calls
// whose status callback never arrived.
func (sm *Manager) CleanupInactive(ctx context.Context) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := time.Now()
	for id, s := range sm.sessions {
		if now.Sub(s.LastActive()) > sm.config.SessionTimeout {
			delete(sm.sessions, id)
			sm.dropMirror(ctx, id)
			sm.log.Info("session expired", zap.String("call_id", id))
		}
	}
}

// StartCleanupRoutine runs periodic cleanup until the context is done.
func (sm *Manager) StartCleanupRoutine(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sm.CleanupInactive(ctx)
		}
	}
}

// Shutdown discards all sessions and closes the Redis connection.
func (sm *Manager) Shutdown() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	for id := range sm.sessions {
		delete(sm.sessions, id)
	}
	if sm.redis != nil {
		sm.redis.Close()
	}
}
