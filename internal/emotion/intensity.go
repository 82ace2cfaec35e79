package emotion

import (
	"strings"
	"unicode"

	"mood-mirror/internal/domain"
)

// intensifierWords son marcadores lexicos de activacion alta.
var intensifierWords = []string{
	"extremely", "absolutely", "completely", "totally", "incredibly",
	"very", "so", "really", "super", "ultra", "immensely",
}

// EstimateIntensity estima el nivel de activacion del texto partiendo de la
// confianza base del clasificador. Suma +0.1 por cada intensificador presente,
// +0.2 si la proporcion de mayusculas supera 0.3 (texto "gritado") y hasta
// +0.3 por signos de exclamacion. El acumulador no se recorta antes de
// umbralizar; solo importan las comparaciones finales.
func EstimateIntensity(text string, baseConfidence float64) domain.Intensity {
	score := baseConfidence
	lower := strings.ToLower(text)

	for _, word := range intensifierWords {
		if strings.Contains(lower, word) {
			score += 0.1
		}
	}

	if ratio := uppercaseRatio(text); ratio > 0.3 {
		score += 0.2
	}

	exclamations := strings.Count(text, "!")
	boost := float64(exclamations) * 0.1
	if boost > 0.3 {
		boost = 0.3
	}
	score += boost

	switch {
	case score >= 0.8:
		return domain.IntensityHigh
	case score >= 0.5:
		return domain.IntensityModerate
	default:
		return domain.IntensityMild
	}
}

// uppercaseRatio calcula la proporcion de caracteres en mayuscula.
// Texto vacio aporta 0 para evitar division por cero.
func uppercaseRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}
	upper := 0
	total := 0
	for _, r := range text {
		total++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(upper) / float64(total)
}
