package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-mirror/internal/emotion"
	"mood-mirror/internal/persona"
)

type mockPinger struct {
	err error
}

func (m *mockPinger) Ping(_ context.Context) error {
	return m.err
}

func setupStatusRouter(health *emotion.HealthState, db dbPinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	quotes := persona.LoadQuotes("does-not-exist.json", zap.NewNop())
	h := NewStatusHandler(zap.NewNop(), health, quotes, &mockMoodRepo{}, newMockUserRepo(), db, "test-hf-model", "test-llm-model")

	r := gin.New()
	r.GET("/status", h.GetStatus)
	r.GET("/healthz", h.Healthz)
	return r
}

func TestStatusHandlerReportsClassifierMode(t *testing.T) {
	health := emotion.NewHealthState()
	r := setupStatusRouter(health, &mockPinger{})

	rec := performRequest(r, http.MethodGet, "/status", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["classifier_mode"] != "primary" {
		t.Fatalf("expected primary mode, got %v", resp["classifier_mode"])
	}
	if resp["persona_count"].(float64) != float64(persona.Count()) {
		t.Fatalf("unexpected persona count: %v", resp["persona_count"])
	}
	if resp["quote_count"].(float64) <= 0 {
		t.Fatalf("expected quote count > 0, got %v", resp["quote_count"])
	}

	health.MarkDegraded()
	rec = performRequest(r, http.MethodGet, "/status", nil)
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp["classifier_mode"] != "fallback" {
		t.Fatalf("expected fallback mode after degradation, got %v", resp["classifier_mode"])
	}
}

func TestStatusHandlerHealthz(t *testing.T) {
	r := setupStatusRouter(emotion.NewHealthState(), &mockPinger{})
	rec := performRequest(r, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	r = setupStatusRouter(emotion.NewHealthState(), &mockPinger{err: errors.New("db down")})
	rec = performRequest(r, http.MethodGet, "/healthz", nil)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", rec.Code)
	}
}
