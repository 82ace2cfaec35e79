package domain

import (
	"time"

	pgvector "github.com/pgvector/pgvector-go"
)

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// MoodEntry es un registro persistido de un analisis de estado de animo.
// AllScores se serializa como JSON; ScoreVector guarda la misma distribucion
// como vector de 7 dimensiones (orden de Emotions) para busqueda por similitud.
type MoodEntry struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Emotion      Emotion         `json:"emotion"`
	Confidence   float64         `json:"confidence"`
	TextInput    string          `json:"text_input"`
	PersonaUsed  string          `json:"persona_used"`
	AllScores    EmotionScores   `json:"all_scores"`
	ScoreVector  pgvector.Vector `json:"-"`
	UsedFallback bool            `json:"used_fallback"`
	Intensity    Intensity       `json:"intensity"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ScoreVectorFor proyecta la distribucion de scores sobre el orden fijo de Emotions.
func ScoreVectorFor(scores EmotionScores) pgvector.Vector {
	vec := make([]float32, len(Emotions))
	for _, s := range scores {
		for i, e := range Emotions {
			if s.Label == e {
				vec[i] = float32(s.Score)
				break
			}
		}
	}
	return pgvector.NewVector(vec)
}

// ChatMessage es un turno de chat con el acompañante, con su respuesta.
type ChatMessage struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	Message        string    `json:"message"`
	Response       string    `json:"response"`
	PersonaUsed    string    `json:"persona_used"`
	EmotionContext Emotion   `json:"emotion_context"`
	LLMGenerated   bool      `json:"llm_generated"`
	ResponseTime   float64   `json:"response_time"`
	CreatedAt      time.Time `json:"created_at"`
}
