package otp

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore — хранилище кодов в памяти для разработки и тестов.
// В продакшене используется RedisStore.
type MemoryStore struct {
	mu        sync.Mutex
	codes     map[string]memoryEntry
	throttles map[string]time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		codes:     make(map[string]memoryEntry),
		throttles: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Save(_ context.Context, phone, codeHash string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[phone] = memoryEntry{value: codeHash, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(_ context.Context, phone string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[phone]
	if !ok || time.Now().After(entry.expiresAt) {
		delete(s.codes, phone)
		return "", ErrCodeNotFound
	}
	return entry.value, nil
}

func (s *MemoryStore) Delete(_ context.Context, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, phone)
	return nil
}

func (s *MemoryStore) Throttle(_ context.Context, phone string, window time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.throttles[phone]
	if ok && time.Now().Before(until) {
		return ErrThrottled
	}
	s.throttles[phone] = time.Now().Add(window)
	return nil
}
