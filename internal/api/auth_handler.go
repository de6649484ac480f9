package api

import (
	"alcyxob/health-tracker/internal/otp"
	"alcyxob/health-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type SendOTPRequest struct {
	PhoneNumber string `json:"phoneNumber" binding:"required"`
}

type SendOTPResponse struct {
	VerificationID string `json:"verificationId"`
}

type VerifyOTPRequest struct {
	VerificationID string `json:"verificationId" binding:"required"`
	Code           string `json:"code" binding:"required"`
	PhoneNumber    string `json:"phoneNumber" binding:"required"`
}

type VerifyOTPResponse struct {
	Token  string            `json:"token"`
	UserID string            `json:"userId"`
	State  service.GateState `json:"state"`
}

// --- Handler Methods ---

// SendOTP requests a verification code delivery for a phone number.
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	verificationID, err := h.authService.SendCode(c.Request.Context(), req.PhoneNumber)
	if err != nil {
		if errors.Is(err, otp.ErrConfigMissing) {
			// Fatal to the operation: blocking message, no automatic retry.
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
			return
		}
		// Transient provider/network failure: the user re-submits the form.
		abortWithError(c, http.StatusBadGateway, err.Error())
		return
	}

	c.JSON(http.StatusOK, SendOTPResponse{VerificationID: verificationID})
}

// VerifyOTP validates the code, creates the session, and returns the
// bearer token plus the freshly derived gate state so the client knows
// whether to route to onboarding or the main area.
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, session, state, err := h.authService.ConfirmCode(c.Request.Context(), req.VerificationID, req.Code, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, service.ErrVerificationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else if errors.Is(err, otp.ErrConfigMissing) {
			abortWithError(c, http.StatusServiceUnavailable, err.Error())
		} else {
			abortWithError(c, http.StatusBadGateway, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, VerifyOTPResponse{
		Token:  token,
		UserID: session.UserID,
		State:  state,
	})
}

// Logout destroys the session. The response carries the re-derived state
// (always logged_out on success) and the login redirect hint.
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	state, err := h.authService.Logout(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not log out")
		return
	}

	c.JSON(http.StatusOK, gin.H{"state": state, "redirect": redirectLogin})
}

// Me reports the current gate state and the routing decision for each
// area, which is all a client needs to guard its screens.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	state := getGateStateFromContext(c)
	c.JSON(http.StatusOK, gin.H{
		"userId": userID,
		"state":  state,
		"routing": gin.H{
			string(service.AreaLogin):      service.Route(state, service.AreaLogin),
			string(service.AreaOnboarding): service.Route(state, service.AreaOnboarding),
			string(service.AreaMain):       service.Route(state, service.AreaMain),
		},
	})
}
