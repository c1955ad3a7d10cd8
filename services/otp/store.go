package otp

import (
	"sync"
	"time"
)

// Entry is a pending verification code for one phone number.
type Entry struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
	Attempts  int       `json:"attempts"`
}

// Store holds pending OTP entries keyed by phone number. Implementations must
// be safe for concurrent use.
type Store interface {
	Get(phone string) (Entry, bool, error)
	Put(phone string, e Entry, ttl time.Duration) error
	Delete(phone string) error
	// Sweep removes entries older than ttl. Stores with native expiry may
	// treat this as a no-op.
	Sweep(ttl time.Duration) error
}

// MemoryStore is the default in-process Store. Entries expire lazily via
// Sweep, which the service calls on every send and verify.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]Entry)}
}

func (s *MemoryStore) Get(phone string) (Entry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[phone]
	return e, ok, nil
}

func (s *MemoryStore) Put(phone string, e Entry, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[phone] = e
	return nil
}

func (s *MemoryStore) Delete(phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, phone)
	return nil
}

func (s *MemoryStore) Sweep(ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cutoff := time.Now().Add(-ttl)
	for phone, e := range s.entries {
		if e.CreatedAt.Before(cutoff) {
			delete(s.entries, phone)
		}
	}
	return nil
}
