// README: RoamMate assistant chat handler.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"roamhaven/internal/modules/assistant"
)

// chatTimeout bounds the grounded model call per request.
const chatTimeout = 10 * time.Second

// apologyReply is the only failure text end users ever see; the internal
// distinction between a missing credential and a provider error stays internal.
const apologyReply = "I'm having trouble accessing the database right now."

type AssistantHandler struct {
	assistant *assistant.Service
}

func NewAssistantHandler(svc *assistant.Service) *AssistantHandler {
	return &AssistantHandler{assistant: svc}
}

type chatReq struct {
	Message string `json:"message"`
}

// Chat handles POST /api/jarvis.
func (h *AssistantHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(c, http.StatusBadRequest, "missing message")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), chatTimeout)
	defer cancel()

	reply, err := h.assistant.Respond(ctx, req.Message)
	if err != nil {
		writeJSON(c, http.StatusInternalServerError, gin.H{"reply": apologyReply})
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"reply": reply})
}
