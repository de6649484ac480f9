package api

import (
	"alcyxob/health-tracker/internal/ai"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AIHandler holds the wellness assistant dependency.
type AIHandler struct {
	assistant ai.Assistant
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(assistant ai.Assistant) *AIHandler {
	return &AIHandler{assistant: assistant}
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

// Ask forwards a wellness question to the assistant. The assistant never
// errors: backend failures come back as an apology string, so this
// endpoint always answers 200 once the input binds.
func (h *AIHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	answer := h.assistant.Ask(c.Request.Context(), req.Question)
	c.JSON(http.StatusOK, AskResponse{Answer: answer})
}
