package api

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/repository"
	"alcyxob/health-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ProfileHandler holds the tracker service dependency for profile and
// dashboard endpoints.
type ProfileHandler struct {
	trackerService service.TrackerService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(trackerService service.TrackerService) *ProfileHandler {
	return &ProfileHandler{trackerService: trackerService}
}

// --- Request/Response Structs ---

type SaveProfileRequest struct {
	Name       string        `json:"name"`
	Age        int           `json:"age" binding:"required,gt=0"`
	HeightCm   float64       `json:"height" binding:"required,gt=0"`
	WeightKg   float64       `json:"weight" binding:"required,gt=0"`
	BloodGroup string        `json:"bloodGroup" binding:"required"`
	Gender     domain.Gender `json:"gender" binding:"required,oneof=male female other"`
}

type SaveProfileResponse struct {
	State    service.GateState `json:"state"`
	Redirect string            `json:"redirect"`
}

// --- Handler Methods ---

// SaveProfile handles the full profile submission (onboarding and edits
// alike: there is no partial-field editing).
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	profile := &domain.UserProfile{
		Name:       req.Name,
		Age:        req.Age,
		HeightCm:   req.HeightCm,
		WeightKg:   req.WeightKg,
		BloodGroup: req.BloodGroup,
		Gender:     req.Gender,
	}

	state, err := h.trackerService.SaveProfile(c.Request.Context(), userID, profile)
	if err != nil {
		// Domain validation errors are inline, field-level messages.
		if errors.Is(err, domain.ErrInvalidHeight) ||
			errors.Is(err, domain.ErrInvalidWeight) ||
			errors.Is(err, domain.ErrInvalidAge) ||
			errors.Is(err, domain.ErrInvalidGender) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not save profile")
		}
		return
	}

	c.JSON(http.StatusOK, SaveProfileResponse{State: state, Redirect: redirectMain})
}

// GetProfile returns the stored profile.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	profile, err := h.trackerService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not load profile")
		}
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Dashboard returns the main-screen payload: profile, today's record,
// BMI + category + color, and the water goal.
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	dash, err := h.trackerService.GetDashboard(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// The gate middleware should have redirected already.
			abortWithError(c, http.StatusNotFound, "Profile not found")
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not load dashboard")
		}
		return
	}
	c.JSON(http.StatusOK, dash)
}
