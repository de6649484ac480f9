package service

import (
	"alcyxob/health-tracker/internal/repository"
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

// GateState is the authentication + profile-completeness state that
// decides which application areas a user may reach.
type GateState string

const (
	// GateUnknown exists only before the first derivation.
	GateUnknown             GateState = "unknown"
	GateLoggedOut           GateState = "logged_out"
	GateLoggedInNoProfile   GateState = "logged_in_no_profile"
	GateLoggedInWithProfile GateState = "logged_in_with_profile"
)

// Area is a requested application area, from the routing policy's
// point of view.
type Area string

const (
	AreaLogin      Area = "login"      // public entry
	AreaOnboarding Area = "onboarding" // profile setup
	AreaMain       Area = "main"       // dashboard, tracker, ask-ai, profile, history, analytics
)

// Decision is the routing outcome for a (state, area) pair.
type Decision string

const (
	DecisionAllow              Decision = "allow"
	DecisionRedirectLogin      Decision = "redirect_login"
	DecisionRedirectOnboarding Decision = "redirect_onboarding"
	DecisionRedirectMain       Decision = "redirect_main"
)

// SessionGate derives the gate state from the session and profile stores.
// Every call is a full re-derivation with fresh reads: profile existence
// is never cached across the login/logout boundary.
type SessionGate struct {
	sessions repository.SessionRepository
	profiles repository.ProfileRepository
}

// NewSessionGate creates a SessionGate over the injected stores.
func NewSessionGate(sessions repository.SessionRepository, profiles repository.ProfileRepository) *SessionGate {
	return &SessionGate{sessions: sessions, profiles: profiles}
}

// Resolve derives the current gate state for a user:
//  1. No session -> LoggedOut, regardless of store state.
//  2. Session present, no profile -> LoggedInNoProfile.
//  3. Session and profile present -> LoggedInWithProfile.
//
// Collaborator read failures fail closed (treated as "absent"), never
// as a crash.
func (g *SessionGate) Resolve(ctx context.Context, userID string) GateState {
	if userID == "" {
		return GateLoggedOut
	}

	_, err := g.sessions.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("WARN: session read failed during gate derivation, failing closed: %v", err)
		}
		return GateLoggedOut
	}

	_, err = g.profiles.Get(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("WARN: profile read failed during gate derivation, failing closed: %v", err)
		}
		return GateLoggedInNoProfile
	}

	return GateLoggedInWithProfile
}

// Route applies the routing policy table to a resolved state and a
// requested area. The presentation layer performs the actual redirect;
// this is only the contract.
func Route(state GateState, area Area) Decision {
	switch area {
	case AreaLogin:
		if state == GateLoggedOut || state == GateUnknown {
			return DecisionAllow
		}
		return DecisionRedirectMain
	case AreaOnboarding:
		switch state {
		case GateLoggedInNoProfile, GateLoggedInWithProfile:
			return DecisionAllow
		default:
			return DecisionRedirectLogin
		}
	case AreaMain:
		switch state {
		case GateLoggedInWithProfile:
			return DecisionAllow
		case GateLoggedInNoProfile:
			return DecisionRedirectOnboarding
		default:
			return DecisionRedirectLogin
		}
	default:
		return DecisionRedirectLogin
	}
}
