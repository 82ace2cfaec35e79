package persona

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"mood-mirror/internal/domain"
)

// Quotes guarda las frases por emocion, inmutables despues del arranque.
type Quotes map[domain.Emotion][]string

// defaultQuotes es el set minimo embebido: el pipeline nunca falla solo
// porque falte el archivo de contenido.
var defaultQuotes = Quotes{
	domain.EmotionJoy:      {"Keep smiling!", "Happiness is contagious!"},
	domain.EmotionSadness:  {"It's okay to feel down. Better days are coming."},
	domain.EmotionAnger:    {"Take a deep breath. You've got this."},
	domain.EmotionFear:     {"Bravery is not the absence of fear."},
	domain.EmotionSurprise: {"Life is full of surprises!"},
	domain.EmotionLove:     {"You are deeply loved."},
	domain.EmotionNeutral:  {"Keep going. You're doing fine."},
}

// LoadQuotes lee el archivo JSON de frases. Ante cualquier fallo de lectura
// o parseo loguea y devuelve los defaults embebidos; nunca devuelve error.
func LoadQuotes(path string, logger *zap.Logger) Quotes {
	if logger == nil {
		logger = zap.NewNop()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("quotes file unavailable, using built-in defaults", zap.String("path", path), zap.Error(err))
		return defaultQuotes
	}

	var raw map[string][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		logger.Warn("quotes file malformed, using built-in defaults", zap.String("path", path), zap.Error(err))
		return defaultQuotes
	}

	quotes := make(Quotes, len(raw))
	for label, list := range raw {
		if len(list) == 0 {
			continue
		}
		quotes[domain.ParseEmotion(label)] = list
	}
	if len(quotes) == 0 {
		logger.Warn("quotes file empty, using built-in defaults", zap.String("path", path))
		return defaultQuotes
	}

	// Completar categorias faltantes con defaults para mantener lookups totales.
	for _, e := range domain.Emotions {
		if _, ok := quotes[e]; !ok {
			quotes[e] = defaultQuotes[e]
		}
	}

	logger.Info("quotes loaded", zap.String("path", path), zap.Int("emotions", len(quotes)))
	return quotes
}

// For devuelve las frases de una emocion, con neutral como ultimo recurso.
func (q Quotes) For(emotion domain.Emotion) []string {
	if list, ok := q[emotion]; ok && len(list) > 0 {
		return list
	}
	if list, ok := q[domain.EmotionNeutral]; ok && len(list) > 0 {
		return list
	}
	return defaultQuotes[domain.EmotionNeutral]
}

// Total cuenta las frases cargadas en todas las categorias.
func (q Quotes) Total() int {
	total := 0
	for _, list := range q {
		total += len(list)
	}
	return total
}
