package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-mirror/internal/service"
)

// MoodHandler mantiene dependencias para endpoints de analisis de animo.
type MoodHandler struct {
	logger   *zap.Logger
	moodServ *service.MoodService
}

func NewMoodHandler(logger *zap.Logger, moodServ *service.MoodService) *MoodHandler {
	return &MoodHandler{
		logger:   logger,
		moodServ: moodServ,
	}
}

// Analyze maneja POST /analyze.
func (h *MoodHandler) Analyze(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	bundle, err := h.moodServ.Analyze(c.Request.Context(), userID, req.Text)
	if err != nil {
		if errors.Is(err, service.ErrInputTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text too short to analyze"})
			return
		}
		h.logger.Error("analyze failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze mood"})
		return
	}

	c.JSON(http.StatusOK, bundle)
}

// History maneja GET /moods/history.
func (h *MoodHandler) History(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	result, err := h.moodServ.History(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("mood history failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load history"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Analytics maneja GET /moods/analytics.
func (h *MoodHandler) Analytics(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	result, err := h.moodServ.Analytics(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("mood analytics failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load analytics"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// Similar maneja GET /moods/similar.
func (h *MoodHandler) Similar(c *gin.Context) {
	userID, ok := CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	text := c.Query("text")
	k, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	entries, err := h.moodServ.Similar(c.Request.Context(), userID, text, k)
	if err != nil {
		if errors.Is(err, service.ErrInputTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "text too short to analyze"})
			return
		}
		h.logger.Error("similar moods failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not search similar moods"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// Compare maneja POST /compare.
func (h *MoodHandler) Compare(c *gin.Context) {
	var req struct {
		Texts []string `json:"texts" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid compare request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	comparisons, err := h.moodServ.Compare(c.Request.Context(), req.Texts)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCompareCount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "compare requires between 2 and 5 texts"})
			return
		case errors.Is(err, service.ErrInputTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "text too short to analyze"})
			return
		default:
			h.logger.Error("compare failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not compare texts"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"comparisons": comparisons})
}
