package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationStore records per-user session revocation epochs in Redis.
// Key format: revoked:<uid> → unix seconds of the revocation.
//
// Entries expire after the token TTL: any token old enough to be blocked by
// an expired entry has itself expired.
type RevocationStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRevocationStore creates a RevocationStore. ttl should match the session
// token lifetime.
func NewRevocationStore(client *redis.Client, ttl time.Duration) *RevocationStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RevocationStore{client: client, ttl: ttl}
}

// Revoke marks every token issued to uid at or before at as invalid.
func (s *RevocationStore) Revoke(ctx context.Context, uid string, at time.Time) error {
	if err := s.client.Set(ctx, s.key(uid), at.Unix(), s.ttl).Err(); err != nil {
		return fmt.Errorf("revoke sessions: %w", err)
	}
	return nil
}

// RevokedAfter returns the user's revocation epoch, or the zero time when no
// revocation is recorded.
func (s *RevocationStore) RevokedAfter(ctx context.Context, uid string) (time.Time, error) {
	v, err := s.client.Get(ctx, s.key(uid)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("revocation lookup: %w", err)
	}

	sec, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("revocation parse: %w", err)
	}
	return time.Unix(sec, 0).UTC(), nil
}

func (s *RevocationStore) key(uid string) string {
	return "revoked:" + uid
}
