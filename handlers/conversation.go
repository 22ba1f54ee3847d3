package handlers

import (
	"net/http"

	conversationRepo "tailortalk/database/repository/conversation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConversationHandler serves stored conversation history.
type ConversationHandler struct {
	Conversations conversationRepo.ConversationRepository
	Logger        *zap.Logger
}

func NewConversationHandler(conversations conversationRepo.ConversationRepository, logger *zap.Logger) *ConversationHandler {
	return &ConversationHandler{Conversations: conversations, Logger: logger}
}

// GetSessionConversations handles GET /api/conversations/:session_id,
// returning the most recent turns of one session in reading order.
func (h *ConversationHandler) GetSessionConversations(c *gin.Context) {
	sessionID := c.Param("session_id")
	records, err := h.Conversations.GetBySession(c.Request.Context(), sessionID, 50)
	if err != nil {
		h.Logger.Error("GetSessionConversations: failed to fetch history",
			zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch conversations", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "session_id": sessionID, "conversations": records})
}

// GetConversations handles GET /api/conversations.
func (h *ConversationHandler) GetConversations(c *gin.Context) {
	records, err := h.Conversations.GetAll(c.Request.Context())
	if err != nil {
		h.Logger.Error("GetConversations: failed to fetch history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch conversations", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "conversations": records})
}
