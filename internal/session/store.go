package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/BruksfildServices01/pet-shelter/internal/domain/user"
)

var ErrNotFound = errors.New("session not found")

type Flash struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Data is everything kept server-side for one browser.
type Data struct {
	User    *user.Identity `json:"user,omitempty"`
	Flashes []Flash        `json:"flashes,omitempty"`
}

type Store interface {
	Load(ctx context.Context, id string) (*Data, error)
	Save(ctx context.Context, id string, data *Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

// ======================================================
// In-memory store
// ======================================================

type memoryEntry struct {
	payload []byte
	expires time.Time
}

// MemoryStore keeps sessions in process. Entries are serialised so callers
// never share mutable state.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*Data, error) {
	s.mu.Lock()
	e, ok := s.entries[id]
	if ok && !s.now().Before(e.expires) {
		delete(s.entries, id)
		ok = false
	}
	s.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}

	var d Data
	if err := json.Unmarshal(e.payload, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data *Data, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{payload: payload, expires: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}
