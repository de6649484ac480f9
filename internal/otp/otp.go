// Package otp implements phone verification against the Message Central
// CPaaS REST API, plus a local dev-mode sender for running without
// provider credentials.
package otp

import (
	"context"
	"errors"
)

// Errors surfaced by senders. ErrConfigMissing is fatal to the attempted
// operation (blocking message, no automatic retry); anything wrapping a
// transport failure is transient and the user re-submits the form.
var (
	ErrConfigMissing = errors.New("verification provider credentials are not configured")
	ErrSendFailed    = errors.New("failed to send verification code")
)

// Sender is the identity-provider collaborator: it accepts a phone number
// and returns a verification handle, then accepts handle + code and
// reports pass/fail.
type Sender interface {
	// SendVerification requests an OTP delivery to the phone number and
	// returns the provider's verification ID.
	SendVerification(ctx context.Context, phoneNumber string) (string, error)

	// ConfirmVerification checks the code against the pending
	// verification. It returns true only on an explicit success from the
	// provider; a wrong code is (false, nil), not an error.
	ConfirmVerification(ctx context.Context, verificationID, code, phoneNumber string) (bool, error)
}
