package services

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionTTL bounds how long an admin session stays valid without a fresh
// login.
const SessionTTL = 12 * time.Hour

// SessionStore holds the server-side admin session flags. Keys are opaque
// session tokens, values are admin ids.
type SessionStore interface {
	Set(ctx context.Context, token, adminID string) error
	Get(ctx context.Context, token string) (string, bool)
	Delete(ctx context.Context, token string) error
}

// RedisSessionStore keeps sessions in Redis so they survive restarts and are
// shared across replicas.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(token string) string {
	return "admin_session:" + token
}

func (s *RedisSessionStore) Set(ctx context.Context, token, adminID string) error {
	return s.client.Set(ctx, sessionKey(token), adminID, SessionTTL).Err()
}

func (s *RedisSessionStore) Get(ctx context.Context, token string) (string, bool) {
	adminID, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err != nil {
		return "", false
	}
	return adminID, true
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}

// MemorySessionStore is the fallback when Redis is not configured. Good
// enough for a single process.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]memorySession
}

type memorySession struct {
	adminID   string
	expiresAt time.Time
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]memorySession)}
}

func (s *MemorySessionStore) Set(_ context.Context, token, adminID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = memorySession{adminID: adminID, expiresAt: time.Now().Add(SessionTTL)}
	return nil
}

func (s *MemorySessionStore) Get(_ context.Context, token string) (string, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(sess.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, token)
		s.mu.Unlock()
		return "", false
	}
	return sess.adminID, true
}

func (s *MemorySessionStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}
