package redis

import (
	"alcyxob/health-tracker/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const verificationKeyPrefix = "health-tracker-otp||"

// verificationCodeRepository implements repository.VerificationCodeRepository
// on Redis. Keys expire after the configured TTL, so a stale verification
// attempt simply reads as not found.
type verificationCodeRepository struct {
	client *redis.Client
}

// NewVerificationCodeRepository creates a Redis-backed OTP code store.
func NewVerificationCodeRepository(client *redis.Client) repository.VerificationCodeRepository {
	return &verificationCodeRepository{client: client}
}

func verificationKey(verificationID string) string {
	return verificationKeyPrefix + verificationID
}

func (r *verificationCodeRepository) Store(ctx context.Context, verificationID, codeHash string, ttl time.Duration) error {
	return r.client.Set(ctx, verificationKey(verificationID), codeHash, ttl).Err()
}

func (r *verificationCodeRepository) Fetch(ctx context.Context, verificationID string) (string, error) {
	hash, err := r.client.Get(ctx, verificationKey(verificationID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", repository.ErrNotFound
		}
		return "", err
	}
	return hash, nil
}

func (r *verificationCodeRepository) Delete(ctx context.Context, verificationID string) error {
	return r.client.Del(ctx, verificationKey(verificationID)).Err()
}
