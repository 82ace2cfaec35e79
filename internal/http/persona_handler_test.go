package http

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mood-mirror/internal/persona"
)

func setupPersonaRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	composer := persona.NewComposer(rand.New(rand.NewSource(42)), nil)
	h := NewPersonaHandler(zap.NewNop(), composer)

	r := gin.New()
	r.GET("/personas/:emotion", h.GetPersona)
	r.GET("/personas/:emotion/followup", h.GetFollowUp)
	return r
}

func TestPersonaHandlerGetPersona(t *testing.T) {
	r := setupPersonaRouter()

	rec := performRequest(r, http.MethodGet, "/personas/joy", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Persona persona.Profile `json:"persona"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Persona.Name != "Sunny" {
		t.Fatalf("expected Sunny, got %s", resp.Persona.Name)
	}
}

func TestPersonaHandlerGetPersona_Unknown(t *testing.T) {
	r := setupPersonaRouter()

	rec := performRequest(r, http.MethodGet, "/personas/disgust", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestPersonaHandlerGetFollowUp(t *testing.T) {
	r := setupPersonaRouter()

	rec := performRequest(r, http.MethodGet, "/personas/sadness/followup", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Persona    string   `json:"persona"`
		Activities []string `json:"suggested_activities"`
		Starter    string   `json:"conversation_starter"`
		Tip        string   `json:"tip"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Persona != "Luna" {
		t.Fatalf("expected Luna, got %s", resp.Persona)
	}
	if len(resp.Activities) != 3 || resp.Starter == "" || resp.Tip == "" {
		t.Fatalf("unexpected followup payload: %+v", resp)
	}
}
