package repository

import (
	"alcyxob/health-tracker/internal/domain"
	"context"
	"time"
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// ProfileRepository defines the interface for the per-user singleton
// profile document.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	// Put saves the full profile (profiles are only ever re-submitted
	// whole, never patched field by field).
	Put(ctx context.Context, profile *domain.UserProfile) error
}

// DailyRecordRepository defines the interface for per-user daily metric
// documents, keyed by date.
type DailyRecordRepository interface {
	Get(ctx context.Context, userID, date string) (*domain.DailyRecord, error)
	// Put writes with merge semantics: fields absent from the record
	// (a nil Protein) are preserved in the stored document.
	Put(ctx context.Context, userID string, record *domain.DailyRecord) error
	// ListRecent returns up to limit records ordered descending by date.
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.DailyRecord, error)
}

// SessionRepository persists the authentication sessions. The existence
// of a session is the sole authentication signal.
type SessionRepository interface {
	Get(ctx context.Context, userID string) (*domain.Session, error)
	Put(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, userID string) error
}

// VerificationCodeRepository stores pending OTP codes for the dev-mode
// sender. Codes are stored hashed and expire after the given TTL.
type VerificationCodeRepository interface {
	Store(ctx context.Context, verificationID, codeHash string, ttl time.Duration) error
	// Fetch returns the stored hash; ErrNotFound when expired or unknown.
	Fetch(ctx context.Context, verificationID string) (string, error)
	Delete(ctx context.Context, verificationID string) error
}
