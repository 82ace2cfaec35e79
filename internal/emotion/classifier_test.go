package emotion

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mood-mirror/internal/domain"
)

func newTestClassifier(t *testing.T, handler http.HandlerFunc) (*HFClassifier, func()) {
	t.Helper()
	server := httptest.NewServer(handler)
	c := NewHFClassifier(server.URL, "test-key", "test-model", 2*time.Second)
	return c, server.Close
}

func TestHFClassifierHappyPath(t *testing.T) {
	c, cleanup := newTestClassifier(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/test-model" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("missing auth header")
		}
		var req inferenceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode([][]map[string]any{{
			{"label": "JOY", "score": 0.81},
			{"label": "Sadness", "score": 0.12},
			{"label": "neutral", "score": 0.07},
		}})
	})
	defer cleanup()

	result, err := c.Classify(context.Background(), "great news today")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Emotion != domain.EmotionJoy {
		t.Fatalf("expected joy, got %s", result.Emotion)
	}
	if result.Confidence != 0.81 {
		t.Fatalf("expected confidence 0.81, got %v", result.Confidence)
	}
	if result.UsedFallback {
		t.Fatalf("expected used_fallback=false from primary")
	}
	if len(result.AllScores) != 3 || result.AllScores[1].Label != domain.EmotionSadness {
		t.Fatalf("expected normalized sorted scores, got %+v", result.AllScores)
	}
}

func TestHFClassifierUnknownLabelCoercedToNeutral(t *testing.T) {
	c, cleanup := newTestClassifier(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([][]map[string]any{{
			{"label": "disgust", "score": 0.9},
			{"label": "joy", "score": 0.1},
		}})
	})
	defer cleanup()

	result, err := c.Classify(context.Background(), "that is gross")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.Emotion != domain.EmotionNeutral {
		t.Fatalf("expected unknown label coerced to neutral, got %s", result.Emotion)
	}
}

func TestHFClassifierErrorStatus(t *testing.T) {
	c, cleanup := newTestClassifier(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model loading", http.StatusServiceUnavailable)
	})
	defer cleanup()

	_, err := c.Classify(context.Background(), "anything")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestHFClassifierMalformedAndEmptyResponses(t *testing.T) {
	cases := map[string]string{
		"not json":    `{"error": "oops"`,
		"empty batch": `[[]]`,
		"empty list":  `[]`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			payload := body
			c, cleanup := newTestClassifier(t, func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(payload))
			})
			defer cleanup()

			_, err := c.Classify(context.Background(), "anything")
			if !errors.Is(err, ErrUnavailable) {
				t.Fatalf("expected ErrUnavailable, got %v", err)
			}
		})
	}
}

func TestHFClassifierContextTimeout(t *testing.T) {
	c, cleanup := newTestClassifier(t, func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[[{"label":"joy","score":0.9}]]`))
	})
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := c.Classify(ctx, "anything")
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable on timeout, got %v", err)
	}
}
