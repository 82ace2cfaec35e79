package emotion

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"mood-mirror/internal/domain"
)

type mockClassifier struct {
	result domain.AnalysisResult
	err    error
	calls  int
}

func (m *mockClassifier) Classify(_ context.Context, _ string) (domain.AnalysisResult, error) {
	m.calls++
	return m.result, m.err
}

func TestPipelineShortInputShortCircuits(t *testing.T) {
	primary := &mockClassifier{}
	p := NewPipeline(primary, NewFallbackClassifier(), zap.NewNop())

	for _, input := range []string{"", "  ", "ok", "a"} {
		result := p.Analyze(context.Background(), input)
		if result.Emotion != domain.EmotionNeutral {
			t.Fatalf("input %q: expected neutral, got %s", input, result.Emotion)
		}
		if result.Confidence != 0.3 {
			t.Fatalf("input %q: expected confidence 0.3, got %v", input, result.Confidence)
		}
		if result.Intensity != domain.IntensityMild {
			t.Fatalf("input %q: expected mild, got %s", input, result.Intensity)
		}
		if !result.UsedFallback {
			t.Fatalf("input %q: expected used_fallback=true", input)
		}
	}
	if primary.calls != 0 {
		t.Fatalf("expected primary never invoked for short inputs, got %d calls", primary.calls)
	}
}

func TestPipelinePrimarySuccess(t *testing.T) {
	primary := &mockClassifier{
		result: domain.AnalysisResult{
			Emotion:    domain.EmotionJoy,
			Confidence: 0.92,
			AllScores:  domain.EmotionScores{{Label: domain.EmotionJoy, Score: 0.92}},
			Intensity:  domain.IntensityHigh,
		},
	}
	p := NewPipeline(primary, NewFallbackClassifier(), zap.NewNop())

	result := p.Analyze(context.Background(), "what a wonderful day")
	if result.Emotion != domain.EmotionJoy || result.UsedFallback {
		t.Fatalf("expected primary joy result, got %+v", result)
	}
	if p.Health().FallbackActive() {
		t.Fatalf("expected health state to remain primary_active")
	}
}

func TestPipelineStickyDegradation(t *testing.T) {
	primary := &mockClassifier{err: errors.New("model exploded")}
	p := NewPipeline(primary, NewFallbackClassifier(), zap.NewNop())

	first := p.Analyze(context.Background(), "I am so happy today")
	if !first.UsedFallback {
		t.Fatalf("expected fallback after primary failure")
	}
	if !p.Health().FallbackActive() {
		t.Fatalf("expected sticky fallback_active state")
	}

	second := p.Analyze(context.Background(), "I am so happy today")
	if !second.UsedFallback {
		t.Fatalf("expected fallback on subsequent calls")
	}
	if primary.calls != 1 {
		t.Fatalf("expected primary invoked exactly once, got %d", primary.calls)
	}
}

func TestPipelineNilPrimaryStartsDegraded(t *testing.T) {
	p := NewPipeline(nil, NewFallbackClassifier(), zap.NewNop())

	if !p.Health().FallbackActive() {
		t.Fatalf("expected pipeline without primary to start degraded")
	}
	result := p.Analyze(context.Background(), "feeling scared and anxious")
	if result.Emotion != domain.EmotionFear || !result.UsedFallback {
		t.Fatalf("expected fear via fallback, got %+v", result)
	}
}

func TestPipelineIndependentHealthState(t *testing.T) {
	failing := NewPipeline(&mockClassifier{err: errors.New("down")}, NewFallbackClassifier(), zap.NewNop())
	healthy := NewPipeline(&mockClassifier{result: domain.AnalysisResult{Emotion: domain.EmotionNeutral, AllScores: domain.EmotionScores{{Label: domain.EmotionNeutral, Score: 0.5}}}}, NewFallbackClassifier(), zap.NewNop())

	failing.Analyze(context.Background(), "whatever text")
	if healthy.Health().FallbackActive() {
		t.Fatalf("expected health state isolated per pipeline instance")
	}
}

func TestPipelineAlwaysClosedSet(t *testing.T) {
	p := NewPipeline(nil, NewFallbackClassifier(), zap.NewNop())

	inputs := []string{"", "!!", "xyz qwerty", "I LOVE EVERYTHING!!!", "absolutely furious right now", "@@@@ ####"}
	for _, input := range inputs {
		result := p.Analyze(context.Background(), input)
		if !result.Emotion.IsValid() {
			t.Fatalf("input %q: emotion %q outside closed set", input, result.Emotion)
		}
	}
}
