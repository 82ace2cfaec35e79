package emotion

import (
	"context"
	"strings"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"mood-mirror/internal/domain"
)

// minAnalyzableLength es el largo minimo de texto que justifica clasificar.
const minAnalyzableLength = 3

// HealthState registra si el pipeline degrado al clasificador de fallback.
// El flip es pegajoso: una vez en fallback no se reintenta el modelo primario
// durante la vida del proceso. Cada pipeline tiene su propio estado para que
// los tests puedan construir instancias independientes.
type HealthState struct {
	fallbackActive atomic.Bool
}

func NewHealthState() *HealthState {
	return &HealthState{}
}

// MarkDegraded activa el modo fallback de forma permanente.
func (h *HealthState) MarkDegraded() {
	h.fallbackActive.Store(true)
}

// FallbackActive indica si el pipeline opera en modo degradado.
func (h *HealthState) FallbackActive() bool {
	return h.fallbackActive.Load()
}

// Pipeline orquesta el clasificador primario con fallback automatico.
// Es el unico punto de entrada de analisis para el resto de la aplicacion.
type Pipeline struct {
	primary  Classifier
	fallback *FallbackClassifier
	health   *HealthState
	logger   *zap.Logger
}

// NewPipeline construye un pipeline con estado de salud propio.
// primary puede ser nil cuando el modelo no cargo al arranque; en ese caso
// el pipeline nace degradado.
func NewPipeline(primary Classifier, fallback *FallbackClassifier, logger *zap.Logger) *Pipeline {
	if fallback == nil {
		fallback = NewFallbackClassifier()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	health := NewHealthState()
	if primary == nil {
		health.MarkDegraded()
	}
	return &Pipeline{
		primary:  primary,
		fallback: fallback,
		health:   health,
		logger:   logger,
	}
}

// Health expone el estado de degradacion del pipeline.
func (p *Pipeline) Health() *HealthState {
	return p.health
}

// Analyze clasifica el texto y siempre devuelve un resultado bien formado:
// inputs cortos cortocircuitan a neutral, los errores del clasificador
// primario activan el fallback pegajoso y se resuelven localmente.
func (p *Pipeline) Analyze(ctx context.Context, text string) domain.AnalysisResult {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minAnalyzableLength {
		return domain.NeutralResult()
	}

	if !p.health.FallbackActive() {
		result, err := p.primary.Classify(ctx, text)
		if err == nil {
			return result
		}
		p.health.MarkDegraded()
		p.logger.Warn("primary classifier failed, switching to keyword fallback", zap.Error(err))
	}

	result := p.fallback.Classify(text)
	result.UsedFallback = true
	return result
}
