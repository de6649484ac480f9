package redis

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/repository"
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "health-tracker-session||"

// sessionRepository implements repository.SessionRepository on Redis.
// Sessions carry no TTL: logout is the only way a session disappears,
// and JWT expiry bounds API access independently.
type sessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a Redis-backed session store.
func NewSessionRepository(client *redis.Client) repository.SessionRepository {
	return &sessionRepository{client: client}
}

func sessionKey(userID string) string {
	return sessionKeyPrefix + userID
}

// Get retrieves the session for a user. ErrNotFound means logged out.
func (r *sessionRepository) Get(ctx context.Context, userID string) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, sessionKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Put stores the session created by a successful OTP verification.
func (r *sessionRepository) Put(ctx context.Context, session *domain.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, sessionKey(session.UserID), raw, 0).Err()
}

// Delete destroys the session on explicit logout.
func (r *sessionRepository) Delete(ctx context.Context, userID string) error {
	return r.client.Del(ctx, sessionKey(userID)).Err()
}
