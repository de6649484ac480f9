package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-please-rotate"

func TestConfirmCodeCreatesSessionAndDerivesState(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	profiles := newFakeProfileRepo()
	gate := NewSessionGate(sessions, profiles)
	sender := &fakeSender{verificationID: "ver-1", confirmOK: true}
	svc := NewAuthService(sender, sessions, gate, testSecret, 0)

	token, session, state, err := svc.ConfirmCode(ctx, "ver-1", "1234", "+91 98765 43210")
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.NotEmpty(t, token)
	assert.Equal(t, "user_919876543210", session.UserID)
	assert.Equal(t, "+91 98765 43210", session.PhoneNumber)
	// New user has no profile yet: LoggedOut -> LoggedInNoProfile.
	assert.Equal(t, GateLoggedInNoProfile, state)
	// The session record now exists in the store.
	_, err = sessions.Get(ctx, session.UserID)
	assert.NoError(t, err)
}

func TestConfirmCodeWrongCode(t *testing.T) {
	sessions := newFakeSessionRepo()
	gate := NewSessionGate(sessions, newFakeProfileRepo())
	sender := &fakeSender{confirmOK: false}
	svc := NewAuthService(sender, sessions, gate, testSecret, 0)

	_, _, state, err := svc.ConfirmCode(context.Background(), "ver-1", "0000", "+919876543210")
	assert.ErrorIs(t, err, ErrVerificationFailed)
	assert.Equal(t, GateLoggedOut, state)
	assert.Empty(t, sessions.sessions, "no session may be written on failure")
}

func TestConfirmCodeProviderError(t *testing.T) {
	sessions := newFakeSessionRepo()
	gate := NewSessionGate(sessions, newFakeProfileRepo())
	providerErr := errors.New("network unreachable")
	svc := NewAuthService(&fakeSender{confirmErr: providerErr}, sessions, gate, testSecret, 0)

	_, _, _, err := svc.ConfirmCode(context.Background(), "ver-1", "1234", "+919876543210")
	assert.ErrorIs(t, err, providerErr)
}

func TestLogoutDestroysSession(t *testing.T) {
	ctx := context.Background()
	sessions := newFakeSessionRepo()
	profiles := newFakeProfileRepo()
	gate := NewSessionGate(sessions, profiles)
	svc := NewAuthService(&fakeSender{confirmOK: true}, sessions, gate, testSecret, 0)

	_, session, _, err := svc.ConfirmCode(ctx, "ver-1", "1234", "+919876543210")
	require.NoError(t, err)

	state, err := svc.Logout(ctx, session.UserID)
	require.NoError(t, err)
	assert.Equal(t, GateLoggedOut, state)
	assert.Empty(t, sessions.sessions)
}

func TestLogoutWithoutSessionUser(t *testing.T) {
	gate := NewSessionGate(newFakeSessionRepo(), newFakeProfileRepo())
	svc := NewAuthService(&fakeSender{}, newFakeSessionRepo(), gate, testSecret, 0)

	_, err := svc.Logout(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSendCodePropagatesProviderMessage(t *testing.T) {
	gate := NewSessionGate(newFakeSessionRepo(), newFakeProfileRepo())
	sendErr := errors.New("Failed to send OTP")
	svc := NewAuthService(&fakeSender{sendErr: sendErr}, newFakeSessionRepo(), gate, testSecret, 0)

	_, err := svc.SendCode(context.Background(), "+919876543210")
	assert.ErrorIs(t, err, sendErr)

	_, err = svc.SendCode(context.Background(), "")
	assert.Error(t, err)
}
