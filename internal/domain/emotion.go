package domain

import (
	"sort"
	"strings"
)

// Emotion es una categoria emocional del conjunto cerrado soportado.
type Emotion string

const (
	EmotionJoy      Emotion = "joy"
	EmotionSadness  Emotion = "sadness"
	EmotionAnger    Emotion = "anger"
	EmotionFear     Emotion = "fear"
	EmotionSurprise Emotion = "surprise"
	EmotionLove     Emotion = "love"
	EmotionNeutral  Emotion = "neutral"
)

// Emotions lista las categorias en orden de declaracion.
// Ese orden define el desempate estable en el clasificador de keywords.
var Emotions = []Emotion{
	EmotionJoy,
	EmotionSadness,
	EmotionAnger,
	EmotionFear,
	EmotionSurprise,
	EmotionLove,
	EmotionNeutral,
}

// ParseEmotion normaliza una etiqueta externa al conjunto cerrado.
// Etiquetas desconocidas degradan a neutral en vez de ampliar el conjunto.
func ParseEmotion(label string) Emotion {
	e := Emotion(strings.ToLower(strings.TrimSpace(label)))
	if e.IsValid() {
		return e
	}
	return EmotionNeutral
}

// IsValid indica si la etiqueta pertenece al conjunto cerrado.
func (e Emotion) IsValid() bool {
	for _, known := range Emotions {
		if e == known {
			return true
		}
	}
	return false
}

// Intensity es el nivel de activacion estimado del texto.
type Intensity string

const (
	IntensityMild     Intensity = "mild"
	IntensityModerate Intensity = "moderate"
	IntensityHigh     Intensity = "high"
)

// EmotionScore es un par (categoria, score) producido por un clasificador.
type EmotionScore struct {
	Label Emotion `json:"label"`
	Score float64 `json:"score"`
}

// EmotionScores es una lista de scores ordenada de mayor a menor.
type EmotionScores []EmotionScore

// SortDesc ordena por score descendente con orden estable,
// preservando el orden previo entre empates.
func (s EmotionScores) SortDesc() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Score > s[j].Score
	})
}

// Top devuelve como maximo n scores desde el inicio de la lista.
func (s EmotionScores) Top(n int) EmotionScores {
	if n < 0 || n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// AnalysisResult es el resultado inmutable de una invocacion de analisis.
type AnalysisResult struct {
	Emotion      Emotion       `json:"emotion"`
	Confidence   float64       `json:"confidence"`
	AllScores    EmotionScores `json:"all_scores"`
	Intensity    Intensity     `json:"intensity"`
	UsedFallback bool          `json:"used_fallback"`
}

// NeutralResult construye el resultado por defecto para inputs vacios o sin señal.
func NeutralResult() AnalysisResult {
	return AnalysisResult{
		Emotion:      EmotionNeutral,
		Confidence:   0.3,
		AllScores:    EmotionScores{{Label: EmotionNeutral, Score: 0.3}},
		Intensity:    IntensityMild,
		UsedFallback: true,
	}
}
