package service

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/otp"
	"alcyxob/health-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- Error Definitions ---
var (
	ErrVerificationFailed = errors.New("verification failed: invalid or expired code")
	ErrTokenGeneration    = errors.New("failed to generate authentication token")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

// --- Service Interface ---

// AuthService handles phone verification and the session lifecycle.
type AuthService interface {
	// SendCode asks the identity provider to deliver an OTP and returns
	// the verification handle the client must present alongside the code.
	SendCode(ctx context.Context, phoneNumber string) (string, error)

	// ConfirmCode validates the OTP. On success it creates the session
	// record, re-derives the gate state fresh, and issues a bearer token.
	ConfirmCode(ctx context.Context, verificationID, code, phoneNumber string) (token string, session *domain.Session, state GateState, err error)

	// Logout destroys the session and re-derives the gate state.
	Logout(ctx context.Context, userID string) (GateState, error)

	GetJWTSecret() string
}

// --- Service Implementation ---

type authService struct {
	sender        otp.Sender
	sessions      repository.SessionRepository
	gate          *SessionGate
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(sender otp.Sender, sessions repository.SessionRepository, gate *SessionGate, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = 24 * time.Hour
	}
	return &authService{
		sender:        sender,
		sessions:      sessions,
		gate:          gate,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// SendCode delegates to the identity provider. Provider errors carry a
// human-readable message and are surfaced to the caller verbatim.
func (s *authService) SendCode(ctx context.Context, phoneNumber string) (string, error) {
	if phoneNumber == "" {
		return "", errors.New("phone number cannot be empty")
	}
	return s.sender.SendVerification(ctx, phoneNumber)
}

// ConfirmCode runs the full verification flow:
//  1. Validate the code with the provider (true only on explicit success).
//  2. Derive the stable user ID from the phone number.
//  3. Write the session record (the sole authentication signal).
//  4. Force a fresh gate derivation: profile existence is re-checked,
//     never assumed.
//  5. Issue the JWT for subsequent API calls.
func (s *authService) ConfirmCode(ctx context.Context, verificationID, code, phoneNumber string) (string, *domain.Session, GateState, error) {
	ok, err := s.sender.ConfirmVerification(ctx, verificationID, code, phoneNumber)
	if err != nil {
		return "", nil, GateLoggedOut, err
	}
	if !ok {
		return "", nil, GateLoggedOut, ErrVerificationFailed
	}

	session := &domain.Session{
		UserID:      domain.UserIDForPhone(phoneNumber),
		PhoneNumber: phoneNumber,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.sessions.Put(ctx, session); err != nil {
		return "", nil, GateLoggedOut, err
	}

	state := s.gate.Resolve(ctx, session.UserID)

	token, err := s.generateJWT(session)
	if err != nil {
		return "", nil, state, ErrTokenGeneration
	}

	return token, session, state, nil
}

// Logout deletes the session record and re-derives the state, which must
// come back LoggedOut.
func (s *authService) Logout(ctx context.Context, userID string) (GateState, error) {
	if userID == "" {
		return GateLoggedOut, ErrNotAuthenticated
	}
	if err := s.sessions.Delete(ctx, userID); err != nil {
		return GateUnknown, err
	}
	return s.gate.Resolve(ctx, userID), nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID string `json:"uid"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// generateJWT creates a new JWT token for the given session.
func (s *authService) generateJWT(session *domain.Session) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID: session.UserID,
		Phone:  session.PhoneNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   session.UserID,
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "health-tracker",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signedToken, nil
}

// GetJWTSecret returns the JWT secret for middleware authentication
func (s *authService) GetJWTSecret() string {
	return s.jwtSecret
}
