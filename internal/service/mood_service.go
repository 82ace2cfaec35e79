package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mood-mirror/internal/domain"
	"mood-mirror/internal/emotion"
	"mood-mirror/internal/persona"
	"mood-mirror/internal/repository"
)

var (
	ErrInputTooShort = errors.New("input too short")
	ErrCompareCount  = errors.New("compare requires between 2 and 5 texts")
)

// maxInputLength es el tope de caracteres que se analiza; el excedente se trunca.
const maxInputLength = 2000

// sanitizePattern elimina caracteres fuera del conjunto permitido
// (letras, numeros y puntuacion comun).
var sanitizePattern = regexp.MustCompile(`[^\w\s.,!?;:'"()-]`)

// MoodService orquesta analisis de emociones, composicion de respuesta
// y persistencia de entradas de animo.
type MoodService struct {
	logger   *zap.Logger
	pipeline *emotion.Pipeline
	composer *persona.Composer
	moods    repository.MoodRepository
	now      func() time.Time
}

func NewMoodService(logger *zap.Logger, pipeline *emotion.Pipeline, composer *persona.Composer, moods repository.MoodRepository) *MoodService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MoodService{
		logger:   logger,
		pipeline: pipeline,
		composer: composer,
		moods:    moods,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CleanInput normaliza el texto del usuario: colapsa espacios, elimina
// caracteres fuera del conjunto permitido y trunca a maxInputLength.
// Menos de 3 caracteres utiles es demasiado poco para analizar.
func CleanInput(text string) (string, error) {
	cleaned := strings.Join(strings.Fields(text), " ")
	cleaned = sanitizePattern.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) < 3 {
		return "", ErrInputTooShort
	}
	if len(cleaned) > maxInputLength {
		cleaned = cleaned[:maxInputLength]
	}
	return cleaned, nil
}

// PersonaView es la proyeccion del perfil que se devuelve al cliente.
type PersonaView struct {
	Name          string   `json:"name"`
	Avatar        string   `json:"avatar"`
	Personality   string   `json:"personality"`
	Traits        []string `json:"personality_traits"`
	CoreValues    []string `json:"core_values"`
	ColorScheme   string   `json:"color_scheme"`
	IntensityDesc string   `json:"intensity_description"`
}

// AnalyzeBundle es la respuesta completa de un analisis de animo.
type AnalyzeBundle struct {
	EntryID       string               `json:"entry_id"`
	Emotion       domain.Emotion       `json:"emotion"`
	Confidence    float64              `json:"confidence"`
	Intensity     domain.Intensity     `json:"intensity"`
	UsedFallback  bool                 `json:"used_fallback"`
	AllScores     domain.EmotionScores `json:"all_scores"`
	Persona       PersonaView          `json:"persona"`
	Greeting      string               `json:"greeting"`
	Response      string               `json:"response"`
	Starter       string               `json:"conversation_starter"`
	Activities    []string             `json:"activities"`
	SpotifyTracks []string             `json:"spotify_tracks"`
	GameURL       string               `json:"game_url"`
	CreatedAt     time.Time            `json:"created_at"`
}

// Analyze limpia el texto, clasifica la emocion, arma el paquete de
// presentacion del persona y persiste la entrada. Un fallo de persistencia
// solo se loguea: el analisis ya esta hecho y se devuelve igual.
func (s *MoodService) Analyze(ctx context.Context, userID, text string) (AnalyzeBundle, error) {
	cleaned, err := CleanInput(text)
	if err != nil {
		return AnalyzeBundle{}, err
	}

	result := s.pipeline.Analyze(ctx, cleaned)
	profile := persona.Select(result.Emotion)
	now := s.now()

	bundle := AnalyzeBundle{
		EntryID:      uuid.NewString(),
		Emotion:      result.Emotion,
		Confidence:   result.Confidence,
		Intensity:    result.Intensity,
		UsedFallback: result.UsedFallback,
		AllScores:    result.AllScores,
		Persona: PersonaView{
			Name:          profile.Name,
			Avatar:        profile.Avatar,
			Personality:   profile.Personality,
			Traits:        profile.Traits,
			CoreValues:    profile.CoreValues,
			ColorScheme:   profile.ColorScheme,
			IntensityDesc: profile.IntensityLevels[result.Intensity],
		},
		Greeting:      s.composer.Greeting(profile, result.Intensity),
		Response:      s.composer.Response(profile, result.Emotion, result.Intensity),
		Starter:       s.composer.Starter(profile),
		Activities:    persona.TimeBasedActivities(profile.Activities, now.Hour()),
		SpotifyTracks: profile.SpotifyTracks,
		GameURL:       profile.GameURL,
		CreatedAt:     now,
	}

	entry := domain.MoodEntry{
		ID:           bundle.EntryID,
		UserID:       userID,
		Emotion:      result.Emotion,
		Confidence:   result.Confidence,
		TextInput:    cleaned,
		PersonaUsed:  profile.Name,
		AllScores:    result.AllScores,
		ScoreVector:  domain.ScoreVectorFor(result.AllScores),
		UsedFallback: result.UsedFallback,
		Intensity:    result.Intensity,
		CreatedAt:    now,
	}
	if err := s.moods.Create(ctx, entry); err != nil {
		s.logger.Error("persist mood entry failed", zap.String("user_id", userID), zap.Error(err))
	}

	return bundle, nil
}

// HistorySummary agrega estadisticas basicas sobre las entradas devueltas.
type HistorySummary struct {
	Total           int     `json:"total_entries"`
	MostCommon      string  `json:"most_common_emotion"`
	AvgConfidence   float64 `json:"average_confidence"`
	FallbackPercent float64 `json:"fallback_percentage"`
}

type HistoryResult struct {
	Entries []domain.MoodEntry `json:"entries"`
	Summary HistorySummary     `json:"summary"`
}

// History devuelve las ultimas 20 entradas con un resumen agregado.
func (s *MoodService) History(ctx context.Context, userID string) (HistoryResult, error) {
	entries, err := s.moods.ListRecent(ctx, userID, 20)
	if err != nil {
		return HistoryResult{}, fmt.Errorf("list mood entries: %w", err)
	}
	return HistoryResult{
		Entries: entries,
		Summary: summarize(entries),
	}, nil
}

func summarize(entries []domain.MoodEntry) HistorySummary {
	summary := HistorySummary{Total: len(entries)}
	if len(entries) == 0 {
		return summary
	}
	counts := make(map[domain.Emotion]int)
	var confidenceSum float64
	var fallbacks int
	for _, e := range entries {
		counts[e.Emotion]++
		confidenceSum += e.Confidence
		if e.UsedFallback {
			fallbacks++
		}
	}
	// Recorre Emotions en orden fijo para que los empates sean estables.
	best := domain.EmotionNeutral
	bestCount := -1
	for _, e := range domain.Emotions {
		if counts[e] > bestCount {
			best = e
			bestCount = counts[e]
		}
	}
	summary.MostCommon = string(best)
	summary.AvgConfidence = confidenceSum / float64(len(entries))
	summary.FallbackPercent = 100 * float64(fallbacks) / float64(len(entries))
	return summary
}

// AnalyticsResult es el desglose completo sobre todo el historial del usuario.
type AnalyticsResult struct {
	TotalEntries        int                `json:"total_entries"`
	EmotionBreakdown    map[string]int     `json:"emotion_breakdown"`
	IntensityPatterns   map[string]int     `json:"intensity_patterns"`
	PersonaInteractions map[string]int     `json:"persona_interactions"`
	HourlyPatterns      map[int]int        `json:"hourly_patterns"`
	ConfidenceTrend     []ConfidencePoint  `json:"confidence_trend"`
	FallbackUsage       FallbackUsageStats `json:"fallback_usage"`
}

type ConfidencePoint struct {
	Emotion    domain.Emotion `json:"emotion"`
	Confidence float64        `json:"confidence"`
	CreatedAt  time.Time      `json:"created_at"`
}

type FallbackUsageStats struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Analytics computa el desglose de emociones, intensidades, personas,
// horarios y tendencia de confianza (ultimos 10 analisis).
func (s *MoodService) Analytics(ctx context.Context, userID string) (AnalyticsResult, error) {
	entries, err := s.moods.ListAll(ctx, userID)
	if err != nil {
		return AnalyticsResult{}, fmt.Errorf("list mood entries: %w", err)
	}

	result := AnalyticsResult{
		TotalEntries:        len(entries),
		EmotionBreakdown:    make(map[string]int),
		IntensityPatterns:   make(map[string]int),
		PersonaInteractions: make(map[string]int),
		HourlyPatterns:      make(map[int]int),
		ConfidenceTrend:     []ConfidencePoint{},
	}

	for _, e := range entries {
		result.EmotionBreakdown[string(e.Emotion)]++
		result.IntensityPatterns[string(e.Intensity)]++
		result.PersonaInteractions[e.PersonaUsed]++
		result.HourlyPatterns[e.CreatedAt.Hour()]++
		if e.UsedFallback {
			result.FallbackUsage.Count++
		}
	}
	if len(entries) > 0 {
		result.FallbackUsage.Percentage = 100 * float64(result.FallbackUsage.Count) / float64(len(entries))
	}

	// Las entradas llegan ordenadas de mas reciente a mas vieja; la tendencia
	// se expone en orden cronologico sobre los ultimos 10 analisis.
	trend := entries
	if len(trend) > 10 {
		trend = trend[:10]
	}
	for i := len(trend) - 1; i >= 0; i-- {
		result.ConfidenceTrend = append(result.ConfidenceTrend, ConfidencePoint{
			Emotion:    trend[i].Emotion,
			Confidence: trend[i].Confidence,
			CreatedAt:  trend[i].CreatedAt,
		})
	}
	return result, nil
}

// Similar analiza el texto dado y busca las entradas previas del usuario con
// la distribucion emocional mas parecida, por distancia coseno.
func (s *MoodService) Similar(ctx context.Context, userID, text string, k int) ([]domain.MoodEntry, error) {
	cleaned, err := CleanInput(text)
	if err != nil {
		return nil, err
	}
	result := s.pipeline.Analyze(ctx, cleaned)
	entries, err := s.moods.SearchSimilar(ctx, userID, domain.ScoreVectorFor(result.AllScores), k)
	if err != nil {
		return nil, fmt.Errorf("search similar moods: %w", err)
	}
	return entries, nil
}

// Comparison es el resultado de analizar un texto dentro de una comparacion.
type Comparison struct {
	Text         string           `json:"text"`
	Emotion      domain.Emotion   `json:"emotion"`
	Confidence   float64          `json:"confidence"`
	Intensity    domain.Intensity `json:"intensity"`
	UsedFallback bool             `json:"used_fallback"`
	Persona      string           `json:"persona"`
}

// Compare analiza entre 2 y 5 textos lado a lado, sin persistir nada.
func (s *MoodService) Compare(ctx context.Context, texts []string) ([]Comparison, error) {
	if len(texts) < 2 || len(texts) > 5 {
		return nil, ErrCompareCount
	}
	comparisons := make([]Comparison, 0, len(texts))
	for _, text := range texts {
		cleaned, err := CleanInput(text)
		if err != nil {
			return nil, err
		}
		result := s.pipeline.Analyze(ctx, cleaned)
		comparisons = append(comparisons, Comparison{
			Text:         cleaned,
			Emotion:      result.Emotion,
			Confidence:   result.Confidence,
			Intensity:    result.Intensity,
			UsedFallback: result.UsedFallback,
			Persona:      persona.Select(result.Emotion).Name,
		})
	}
	return comparisons, nil
}
