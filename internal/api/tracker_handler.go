package api

import (
	"alcyxob/health-tracker/internal/domain"
	"alcyxob/health-tracker/internal/service"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TrackerHandler holds the tracker service dependency.
type TrackerHandler struct {
	trackerService service.TrackerService
}

// NewTrackerHandler creates a new TrackerHandler.
func NewTrackerHandler(trackerService service.TrackerService) *TrackerHandler {
	return &TrackerHandler{trackerService: trackerService}
}

// --- Request/Response Structs ---

type AdjustMetricRequest struct {
	Field domain.Metric `json:"field" binding:"required,oneof=steps water sleep calories protein"`
	Delta float64       `json:"delta" binding:"required"`
}

type OneRepMaxRequest struct {
	WeightKg float64 `json:"weightKg" binding:"required,gt=0"`
	Reps     int     `json:"reps" binding:"required,gt=0"`
}

type OneRepMaxResponse struct {
	OneRepMax int `json:"oneRepMax"`
}

// --- Handler Methods ---

// Today returns the current day's record, all-zero if nothing was logged.
func (h *TrackerHandler) Today(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	rec, err := h.trackerService.TodayRecord(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load today's record")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Adjust applies a delta to one metric of today's record. A decrement
// below zero is floored at zero; the response is the updated record.
func (h *TrackerHandler) Adjust(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	var req AdjustMetricRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	rec, err := h.trackerService.AdjustMetric(c.Request.Context(), userID, req.Field, req.Delta)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMetric) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Could not update the record")
		}
		return
	}
	c.JSON(http.StatusOK, rec)
}

// History returns up to 30 daily records, newest first.
func (h *TrackerHandler) History(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	records, err := h.trackerService.History(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load history")
		return
	}
	c.JSON(http.StatusOK, records)
}

// Analytics returns the 7-day water and steps chart series, oldest first.
// Missing days are absent from the series, never rendered as zero.
func (h *TrackerHandler) Analytics(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	analytics, err := h.trackerService.TrendAnalytics(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not load analytics")
		return
	}
	c.JSON(http.StatusOK, analytics)
}

// OneRepMax estimates a one-repetition max from an ad hoc weight+reps
// pair. The input is not persisted.
func (h *TrackerHandler) OneRepMax(c *gin.Context) {
	var req OneRepMaxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	result, ok := domain.CalculateOneRepMax(req.WeightKg, req.Reps)
	if !ok {
		// Binding tags already require positive inputs; this is belt and braces.
		abortWithError(c, http.StatusBadRequest, "weight and reps must be positive")
		return
	}
	c.JSON(http.StatusOK, OneRepMaxResponse{OneRepMax: result})
}
