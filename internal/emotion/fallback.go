package emotion

import (
	"strings"

	"mood-mirror/internal/domain"
)

// FallbackClassifier puntua emociones por solapamiento de keywords.
// Es deterministico y nunca falla; se usa cuando el modelo primario
// no esta disponible.
type FallbackClassifier struct{}

func NewFallbackClassifier() *FallbackClassifier {
	return &FallbackClassifier{}
}

// Classify recorre el lexicon en orden de declaracion acumulando
// len(keyword)/10 + peso de la categoria por cada keyword presente como
// substring. Los scores se normalizan por cantidad de palabras del texto
// mas 0.1 por match, con tope en 1.0. Sin matches devuelve neutral con
// confianza 0.3.
func (f *FallbackClassifier) Classify(text string) domain.AnalysisResult {
	lower := strings.ToLower(text)
	wordCount := len(strings.Fields(lower))
	if wordCount == 0 {
		return domain.NeutralResult()
	}

	scores := make(domain.EmotionScores, 0, len(domain.Emotions))
	for _, category := range domain.Emotions {
		entry := keywordLexicon[category]
		raw := 0.0
		matches := 0
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				raw += float64(len(keyword))/10 + entry.weight
				matches++
			}
		}
		if matches == 0 {
			continue
		}
		normalized := raw/float64(wordCount) + float64(matches)*0.1
		if normalized > 1.0 {
			normalized = 1.0
		}
		scores = append(scores, domain.EmotionScore{Label: category, Score: normalized})
	}

	if len(scores) == 0 {
		return domain.NeutralResult()
	}

	// El orden estable preserva el orden de declaracion entre empates,
	// asi el argmax queda en scores[0].
	scores.SortDesc()
	primary := scores[0]

	return domain.AnalysisResult{
		Emotion:      primary.Label,
		Confidence:   primary.Score,
		AllScores:    scores,
		Intensity:    EstimateIntensity(text, primary.Score),
		UsedFallback: true,
	}
}
