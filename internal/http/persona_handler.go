package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-mirror/internal/domain"
	"mood-mirror/internal/persona"
)

// PersonaHandler expone los perfiles de acompañantes y sugerencias de seguimiento.
type PersonaHandler struct {
	logger   *zap.Logger
	composer *persona.Composer
}

func NewPersonaHandler(logger *zap.Logger, composer *persona.Composer) *PersonaHandler {
	return &PersonaHandler{
		logger:   logger,
		composer: composer,
	}
}

// GetPersona maneja GET /personas/:emotion.
func (h *PersonaHandler) GetPersona(c *gin.Context) {
	emotion := domain.Emotion(strings.ToLower(strings.TrimSpace(c.Param("emotion"))))
	if !emotion.IsValid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown emotion"})
		return
	}

	profile := persona.Select(emotion)
	c.JSON(http.StatusOK, gin.H{"persona": profile})
}

// GetFollowUp maneja GET /personas/:emotion/followup.
func (h *PersonaHandler) GetFollowUp(c *gin.Context) {
	emotion := domain.Emotion(strings.ToLower(strings.TrimSpace(c.Param("emotion"))))
	if !emotion.IsValid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown emotion"})
		return
	}

	profile := persona.Select(emotion)
	c.JSON(http.StatusOK, gin.H{
		"persona":              profile.Name,
		"suggested_activities": h.composer.SampleActivities(profile, 3),
		"conversation_starter": h.composer.Starter(profile),
		"tip":                  h.composer.FollowUpTip(),
	})
}
