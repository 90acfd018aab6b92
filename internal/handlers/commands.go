package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"holohome/internal/service"
)

const (
	errEmptyCommand = "command text must not be empty"
	errBusy         = "assistant is busy with another command"
	errSubmit       = "failed to submit command"
)

// Request DTO for a free-text assistant command.
type commandRequest struct {
	Text string `json:"text" binding:"required"`
}

// SubmitCommandRequest is an exported model for Swagger docs of the command
// payload.
type SubmitCommandRequest struct {
	// Free-text command, e.g. "how is power consumption looking?"
	Text string `json:"text" example:"show me the thermal view"`
}

// @Summary      Submit a free-text command to the assistant
// @Description  Returns 202 immediately; the reply is appended to the activity log once generation completes.
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitCommandRequest  true  "Command payload"
// @Success      202   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/assistant/commands [post]
func (h *Handler) submitCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	err := h.services.Assistant.Submit(c.Request.Context(), req.Text)
	switch {
	case err == nil:
		c.JSON(http.StatusAccepted, gin.H{"status": statusAccepted})
	case errors.Is(err, service.ErrEmptyCommand):
		c.JSON(http.StatusBadRequest, gin.H{"error": errEmptyCommand})
	case errors.Is(err, service.ErrAssistantBusy):
		c.JSON(http.StatusConflict, gin.H{"error": errBusy})
	default:
		h.logAndJSONError(c, http.StatusInternalServerError, errSubmit, "command_submit_failed", err)
	}
}
