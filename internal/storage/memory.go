package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/velja/jobboard-api/internal/models"
)

// MemoryStore is a map-backed stand-in for RedisStore used in tests and by
// the CLI's dry-run mode. It serializes through the same envelope so
// round-trip behavior matches the real store.
type MemoryStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	revoked map[string]time.Time

	// SaveErr, when set, makes every Save fail without touching stored
	// state. Lets tests exercise the write-failure path.
	SaveErr error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		blobs:   make(map[string][]byte),
		revoked: make(map[string]time.Time),
	}
}

func (s *MemoryStore) Load(ctx context.Context) (models.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, ok := s.blobs[DefaultListingsKey]
	if !ok {
		return models.Collection{}, nil
	}
	collection, err := decodeListings(payload)
	if err != nil {
		return models.Collection{}, nil
	}
	return collection, nil
}

func (s *MemoryStore) Save(ctx context.Context, c models.Collection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.SaveErr != nil {
		return s.SaveErr
	}
	payload, err := json.Marshal(envelope{Version: SchemaVersion, Listings: c})
	if err != nil {
		return err
	}
	s.blobs[DefaultListingsKey] = payload
	return nil
}

// SeedRaw stores an arbitrary payload under the listings key, bypassing
// serialization. Tests use it to simulate corrupt or legacy blobs.
func (s *MemoryStore) SeedRaw(payload []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[DefaultListingsKey] = payload
}

func (s *MemoryStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ttl <= 0 {
		return nil
	}
	s.revoked[sessionID] = time.Now().Add(ttl)
	return nil
}

func (s *MemoryStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	until, ok := s.revoked[sessionID]
	if !ok {
		return false, nil
	}
	if time.Now().After(until) {
		delete(s.revoked, sessionID)
		return false, nil
	}
	return true, nil
}
