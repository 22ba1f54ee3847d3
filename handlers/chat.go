package handlers

import (
	"net/http"

	"tailortalk/models"
	"tailortalk/services/agent"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational agent over HTTP.
type ChatHandler struct {
	Agent  agent.Service
	Logger *zap.Logger
}

func NewChatHandler(agentSvc agent.Service, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{Agent: agentSvc, Logger: logger}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Logger.Error("Chat: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "message": err.Error()})
		return
	}

	resp := h.Agent.ProcessMessage(c.Request.Context(), req.Message, req.SessionID)
	c.JSON(http.StatusOK, resp)
}
