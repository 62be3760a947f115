// Package redisstore persists the session record in Redis under a single
// key. Useful where the client runs without a stable home directory (CI,
// containers) or several tools share one login.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/holidaze/holidaze-go/internal/domain/auth"
	"github.com/holidaze/holidaze-go/internal/ports"
)

const defaultKey = "holidaze:session"

// Store is a Redis-based session store.
type Store struct {
	client redis.UniversalClient
	key    string
}

// New creates a Redis session store using the default key.
func New(client redis.UniversalClient) *Store {
	return NewWithKey(client, defaultKey)
}

// NewWithKey creates a Redis session store with a custom key.
func NewWithKey(client redis.UniversalClient, key string) *Store {
	if key == "" {
		key = defaultKey
	}
	return &Store{
		client: client,
		key:    key,
	}
}

func (s *Store) Save(ctx context.Context, sess auth.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	// No TTL: the remote API owns token expiry, the record stays until logout.
	return s.client.Set(ctx, s.key, data, 0).Err()
}

func (s *Store) Load(ctx context.Context) (auth.Session, error) {
	data, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return auth.Session{}, ports.ErrNoSession
		}
		return auth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess auth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return auth.Session{}, fmt.Errorf("unmarshal session: %w", unmarshalErr)
	}
	return sess, nil
}

func (s *Store) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key).Err()
}
