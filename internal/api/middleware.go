package api

import (
	"alcyxob/health-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// Constants for context keys
const (
	ContextUserIDKey    = "userID"
	ContextPhoneKey     = "userPhone"
	ContextGateStateKey = "gateState"
)

// Redirect hints returned alongside gate denials; the client performs the
// actual navigation.
const (
	redirectLogin      = "/login"
	redirectOnboarding = "/onboarding"
	redirectMain       = "/"
)

// jwtClaims defines the structure we expect in the JWT payload.
// Mirroring the structure used in authService.generateJWT
type jwtClaims struct {
	UserID string `json:"uid"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// AuthMiddleware creates a Gin middleware for JWT authentication.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortWithRedirect(c, http.StatusUnauthorized, "Authorization header is missing", redirectLogin)
			return
		}

		// Expecting "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortWithRedirect(c, http.StatusUnauthorized, "Authorization header format must be Bearer {token}", redirectLogin)
			return
		}
		tokenString := parts[1]

		// Parse and validate the token
		claims := &jwtClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})

		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWithRedirect(c, http.StatusUnauthorized, "Token has expired", redirectLogin)
			} else {
				abortWithRedirect(c, http.StatusUnauthorized, fmt.Sprintf("Invalid token: %v", err), redirectLogin)
			}
			return
		}

		if !token.Valid || claims.UserID == "" {
			abortWithRedirect(c, http.StatusUnauthorized, "Invalid token or missing claims", redirectLogin)
			return
		}

		// --- Token is valid ---
		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextPhoneKey, claims.Phone)

		c.Next()
	}
}

// GateMiddleware enforces the routing policy for one application area.
// Must run AFTER AuthMiddleware. The gate state is derived fresh on every
// request: no caching of profile existence.
func GateMiddleware(gate *service.SessionGate, area service.Area) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := getUserIDFromContext(c)
		if err != nil {
			// Should not happen if AuthMiddleware ran correctly
			abortWithError(c, http.StatusInternalServerError, "User ID not found in context")
			return
		}

		state := gate.Resolve(c.Request.Context(), userID)
		c.Set(ContextGateStateKey, state)

		switch service.Route(state, area) {
		case service.DecisionAllow:
			c.Next()
		case service.DecisionRedirectLogin:
			abortWithRedirect(c, http.StatusUnauthorized, "Not logged in", redirectLogin)
		case service.DecisionRedirectOnboarding:
			abortWithRedirect(c, http.StatusForbidden, "Profile setup required", redirectOnboarding)
		case service.DecisionRedirectMain:
			abortWithRedirect(c, http.StatusForbidden, "Already logged in", redirectMain)
		}
	}
}

// DeriveGateState derives and stashes the gate state without enforcing
// any area policy. Used by endpoints that must answer in every
// authenticated state, like /me.
func DeriveGateState(gate *service.SessionGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, err := getUserIDFromContext(c); err == nil {
			c.Set(ContextGateStateKey, gate.Resolve(c.Request.Context(), userID))
		}
		c.Next()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// abortWithRedirect adds the client-side navigation hint to the error.
func abortWithRedirect(c *gin.Context, code int, message, redirect string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message, "redirect": redirect})
}

// Helper function to get User ID from context (used by handlers)
func getUserIDFromContext(c *gin.Context) (string, error) {
	idRaw, exists := c.Get(ContextUserIDKey)
	if !exists {
		return "", errors.New("user ID not found in context")
	}
	idStr, ok := idRaw.(string)
	if !ok {
		return "", errors.New("invalid user ID type in context")
	}
	return idStr, nil
}

// Helper function to get the derived gate state from context.
func getGateStateFromContext(c *gin.Context) service.GateState {
	raw, exists := c.Get(ContextGateStateKey)
	if !exists {
		return service.GateUnknown
	}
	state, ok := raw.(service.GateState)
	if !ok {
		return service.GateUnknown
	}
	return state
}
