package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-mirror/internal/service"
)

// ChatHandler mantiene dependencias para endpoints de chat.
type ChatHandler struct {
	logger   *zap.Logger
	chatServ *service.ChatService
	limiter  service.ChatRateLimiter
}

func NewChatHandler(logger *zap.Logger, chatServ *service.ChatService, limiter service.ChatRateLimiter) *ChatHandler {
	return &ChatHandler{
		logger:   logger,
		chatServ: chatServ,
		limiter:  limiter,
	}
}

// PostMessage maneja POST /chat.
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(userID) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many messages, slow down"})
		return
	}

	var req struct {
		Message        string `json:"message" binding:"required"`
		EmotionContext string `json:"emotion_context"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.chatServ.Chat(c.Request.Context(), userID, req.Message, req.EmotionContext)
	if err != nil {
		if errors.Is(err, service.ErrMessageTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "message too short"})
			return
		}
		h.logger.Error("chat failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not process message"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// History maneja GET /chat/history.
func (h *ChatHandler) History(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	messages, err := h.chatServ.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("chat history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// ClearHistory maneja DELETE /chat/history.
func (h *ChatHandler) ClearHistory(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	if err := h.chatServ.Clear(c.Request.Context(), userID); err != nil {
		h.logger.Error("chat clear failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not clear history"})
		return
	}
	c.Status(http.StatusNoContent)
}
