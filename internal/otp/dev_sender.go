package otp

import (
	"alcyxob/health-tracker/internal/repository"
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// devSender is a Sender for local development: instead of contacting a
// CPaaS it mints a 4-digit code, logs it, and stores a bcrypt hash of it
// under a fresh verification ID with a TTL. The code itself never touches
// storage.
type devSender struct {
	codes   repository.VerificationCodeRepository
	codeTTL time.Duration
}

// NewDevSender creates a dev-mode Sender backed by the code repository.
func NewDevSender(codes repository.VerificationCodeRepository, codeTTL time.Duration) Sender {
	if codeTTL <= 0 {
		codeTTL = 5 * time.Minute
	}
	return &devSender{codes: codes, codeTTL: codeTTL}
}

func (s *devSender) SendVerification(ctx context.Context, phoneNumber string) (string, error) {
	code, err := randomCode()
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	verificationID := uuid.NewString()
	if err := s.codes.Store(ctx, verificationID, string(hash), s.codeTTL); err != nil {
		return "", err
	}

	// Dev mode only: the "SMS" is the server log.
	log.Printf("DEV OTP for %s: %s (verificationId=%s)", phoneNumber, code, verificationID)
	return verificationID, nil
}

func (s *devSender) ConfirmVerification(ctx context.Context, verificationID, code, phoneNumber string) (bool, error) {
	hash, err := s.codes.Fetch(ctx, verificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Expired or never issued: a plain failure, not an error.
			return false, nil
		}
		return false, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) != nil {
		return false, nil
	}

	// One-shot: a verified code cannot be replayed.
	_ = s.codes.Delete(ctx, verificationID)
	return true, nil
}

func randomCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%04d", n.Int64()), nil
}
