package api

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/repository"
	"alcyxob/health-tracker/internal/service"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "api-test-secret"
	testUserID = "user_919876543210"
)

// Minimal in-memory stores for driving the gate.

type memSessions struct{ sessions map[string]*domain.Session }

func (m *memSessions) Get(_ context.Context, userID string) (*domain.Session, error) {
	if s, ok := m.sessions[userID]; ok {
		return s, nil
	}
	return nil, repository.ErrNotFound
}
func (m *memSessions) Put(_ context.Context, s *domain.Session) error {
	m.sessions[s.UserID] = s
	return nil
}
func (m *memSessions) Delete(_ context.Context, userID string) error {
	delete(m.sessions, userID)
	return nil
}

type memProfiles struct{ profiles map[string]*domain.UserProfile }

func (m *memProfiles) Get(_ context.Context, userID string) (*domain.UserProfile, error) {
	if p, ok := m.profiles[userID]; ok {
		return p, nil
	}
	return nil, repository.ErrNotFound
}
func (m *memProfiles) Put(_ context.Context, p *domain.UserProfile) error {
	m.profiles[p.UserID] = p
	return nil
}

func signToken(t *testing.T, userID string) string {
	t.Helper()
	claims := &jwtClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func gateTestRouter(sessions *memSessions, profiles *memProfiles) *gin.Engine {
	gin.SetMode(gin.TestMode)
	gate := service.NewSessionGate(sessions, profiles)

	router := gin.New()
	ok := func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) }

	protected := router.Group("")
	protected.Use(AuthMiddleware(testSecret))
	protected.GET("/onboarding", GateMiddleware(gate, service.AreaOnboarding), ok)
	protected.GET("/main", GateMiddleware(gate, service.AreaMain), ok)
	return router
}

func doGet(router *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func redirectOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	redirect, _ := body["redirect"].(string)
	return redirect
}

func TestAuthMiddlewareRejectsMissingAndBadTokens(t *testing.T) {
	router := gateTestRouter(&memSessions{sessions: map[string]*domain.Session{}}, &memProfiles{profiles: map[string]*domain.UserProfile{}})

	w := doGet(router, "/main", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/login", redirectOf(t, w))

	w = doGet(router, "/main", "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateMiddlewareLoggedOut(t *testing.T) {
	// Valid token but the session record is gone (logged out elsewhere):
	// the gate must fail closed to the login redirect.
	router := gateTestRouter(&memSessions{sessions: map[string]*domain.Session{}}, &memProfiles{profiles: map[string]*domain.UserProfile{}})
	token := signToken(t, testUserID)

	w := doGet(router, "/main", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "/login", redirectOf(t, w))

	w = doGet(router, "/onboarding", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateMiddlewareNoProfile(t *testing.T) {
	sessions := &memSessions{sessions: map[string]*domain.Session{testUserID: {UserID: testUserID}}}
	router := gateTestRouter(sessions, &memProfiles{profiles: map[string]*domain.UserProfile{}})
	token := signToken(t, testUserID)

	// Onboarding is open; the main area redirects to onboarding.
	w := doGet(router, "/onboarding", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(router, "/main", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "/onboarding", redirectOf(t, w))
}

func TestGateMiddlewareWithProfile(t *testing.T) {
	sessions := &memSessions{sessions: map[string]*domain.Session{testUserID: {UserID: testUserID}}}
	profiles := &memProfiles{profiles: map[string]*domain.UserProfile{testUserID: {UserID: testUserID, HeightCm: 170, WeightKg: 70}}}
	router := gateTestRouter(sessions, profiles)
	token := signToken(t, testUserID)

	w := doGet(router, "/main", token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doGet(router, "/onboarding", token)
	assert.Equal(t, http.StatusOK, w.Code, "profile edits re-enter onboarding")
}
