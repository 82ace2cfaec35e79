package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-mirror/internal/emotion"
	"mood-mirror/internal/persona"
	"mood-mirror/internal/repository"
)

// dbPinger abstrae el ping a la base para healthz (lo implementa pgxpool.Pool).
type dbPinger interface {
	Ping(ctx context.Context) error
}

// StatusHandler expone el estado operativo del servicio.
type StatusHandler struct {
	logger   *zap.Logger
	health   *emotion.HealthState
	quotes   persona.Quotes
	moods    repository.MoodRepository
	users    repository.UserRepository
	db       dbPinger
	hfModel  string
	llmModel string
}

func NewStatusHandler(
	logger *zap.Logger,
	health *emotion.HealthState,
	quotes persona.Quotes,
	moods repository.MoodRepository,
	users repository.UserRepository,
	db dbPinger,
	hfModel, llmModel string,
) *StatusHandler {
	return &StatusHandler{
		logger:   logger,
		health:   health,
		quotes:   quotes,
		moods:    moods,
		users:    users,
		db:       db,
		hfModel:  hfModel,
		llmModel: llmModel,
	}
}

// GetStatus maneja GET /status.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	mode := "primary"
	if h.health == nil || h.health.FallbackActive() {
		mode = "fallback"
	}

	status := gin.H{
		"classifier_mode":  mode,
		"classifier_model": h.hfModel,
		"llm_model":        h.llmModel,
		"persona_count":    persona.Count(),
		"quote_count":      h.quotes.Total(),
	}

	if h.moods != nil {
		if count, err := h.moods.Count(c.Request.Context()); err == nil {
			status["mood_entries"] = count
		}
	}
	if h.users != nil {
		if count, err := h.users.Count(c.Request.Context()); err == nil {
			status["users"] = count
		}
	}

	c.JSON(http.StatusOK, status)
}

// Healthz maneja GET /healthz con un ping a la base.
func (h *StatusHandler) Healthz(c *gin.Context) {
	if h.db == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "not configured"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := h.db.Ping(ctx); err != nil {
		h.logger.Error("database ping failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "database": "ok"})
}
