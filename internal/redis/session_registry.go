package redisstore

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionRegistry tracks credentials seen on successful writes. Entries
// expire with the same window as the cookie, so the registry mirrors the set
// of live sessions without ever gating a request.
type SessionRegistry struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRegistry returns redis-backed registry.
func NewSessionRegistry(client *redis.Client, ttl time.Duration) *SessionRegistry {
	return &SessionRegistry{client: client, ttl: ttl}
}

func (r *SessionRegistry) key(sessionID string) string {
	return fmt.Sprintf("sessions:seen:%s", sessionID)
}

// Record marks the session as seen and refreshes its expiry.
func (r *SessionRegistry) Record(ctx context.Context, sessionID string) error {
	lastSeen := time.Now().UTC().Format(time.RFC3339)
	return r.client.Set(ctx, r.key(sessionID), lastSeen, r.ttl).Err()
}

// Known reports whether the session has been seen and not yet expired.
func (r *SessionRegistry) Known(ctx context.Context, sessionID string) (bool, error) {
	count, err := r.client.Exists(ctx, r.key(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
