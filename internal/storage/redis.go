package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/velja/jobboard-api/internal/models"
)

const (
	// DefaultListingsKey is the fixed key the whole collection lives under.
	DefaultListingsKey = "jobboard:listings"

	revokedKeyPrefix = "jobboard:sessions:revoked:"

	// SchemaVersion tags the persisted envelope so future field additions
	// can be migrated.
	SchemaVersion = 1
)

type envelope struct {
	Version  int               `json:"version"`
	Listings models.Collection `json:"listings"`
}

// RedisStore keeps the listing collection as one JSON blob under a fixed
// key, plus per-session revocation marks. It implements ListingStore and
// SessionStore.
type RedisStore struct {
	client *redis.Client
	key    string
	logger *zap.Logger
}

func NewRedisStore(client *redis.Client, logger *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		key:    DefaultListingsKey,
		logger: logger,
	}
}

func (s *RedisStore) Load(ctx context.Context) (models.Collection, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return models.Collection{}, nil
		}
		return nil, fmt.Errorf("failed to read listings: %w", err)
	}

	collection, err := decodeListings(payload)
	if err != nil {
		// Fail-soft: a corrupt blob is logged and replaced with an empty
		// collection rather than taking the admin panel down.
		s.logger.Warn("malformed listings payload, starting from empty collection",
			zap.String("key", s.key), zap.Error(err))
		return models.Collection{}, nil
	}
	return collection, nil
}

func (s *RedisStore) Save(ctx context.Context, c models.Collection) error {
	payload, err := json.Marshal(envelope{Version: SchemaVersion, Listings: c})
	if err != nil {
		return fmt.Errorf("failed to serialize listings: %w", err)
	}
	if err := s.client.Set(ctx, s.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to write listings: %w", err)
	}
	return nil
}

func (s *RedisStore) Revoke(ctx context.Context, sessionID string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.client.Set(ctx, revokedKeyPrefix+sessionID, "1", ttl).Err()
}

func (s *RedisStore) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	_, err := s.client.Get(ctx, revokedKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// decodeListings accepts the current versioned envelope as well as the bare
// array layout older deployments wrote.
func decodeListings(payload []byte) (models.Collection, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err == nil && env.Version > 0 {
		return env.Listings, nil
	}

	var legacy models.Collection
	if err := json.Unmarshal(payload, &legacy); err != nil {
		return nil, err
	}
	return legacy, nil
}
