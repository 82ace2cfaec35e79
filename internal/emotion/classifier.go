package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mood-mirror/internal/domain"
)

// ErrUnavailable señala que el clasificador primario no puede responder:
// fallo de red, status de error, o salida vacia o malformada.
var ErrUnavailable = errors.New("primary classifier unavailable")

// Classifier define el contrato del clasificador primario de emociones.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.AnalysisResult, error)
}

// HFClassifier implementa Classifier contra la inference API de HuggingFace
// para modelos de text-classification multi-etiqueta.
type HFClassifier struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewHFClassifier construye un cliente HTTP con timeout acotado hacia el modelo.
func NewHFClassifier(baseURL, apiKey, model string, timeout time.Duration) *HFClassifier {
	if baseURL == "" {
		baseURL = "https://api-inference.huggingface.co"
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HFClassifier{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
	}
}

type inferenceRequest struct {
	Inputs string `json:"inputs"`
}

type inferenceLabel struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Classify envia el texto al modelo y normaliza la salida: etiquetas en
// minusculas coercionadas al conjunto cerrado, scores ordenados descendente,
// intensidad calculada sobre la confianza ganadora. Cualquier fallo se
// reporta como ErrUnavailable, nunca como panico.
func (c *HFClassifier) Classify(ctx context.Context, text string) (domain.AnalysisResult, error) {
	bodyBytes, err := json.Marshal(inferenceRequest{Inputs: text})
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: marshal request: %v", ErrUnavailable, err)
	}

	url := c.baseURL + "/models/" + c.model
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: do request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.AnalysisResult{}, fmt.Errorf("%w: read response: %v", ErrUnavailable, err)
	}
	if resp.StatusCode >= 400 {
		return domain.AnalysisResult{}, fmt.Errorf("%w: status=%d", ErrUnavailable, resp.StatusCode)
	}

	labels, err := decodeInferenceLabels(respBody)
	if err != nil {
		return domain.AnalysisResult{}, err
	}
	return resultFromLabels(text, labels)
}

// decodeInferenceLabels acepta los dos formatos de la inference API:
// [[{label,score}...]] (batch de uno) o [{label,score}...].
func decodeInferenceLabels(body []byte) ([]inferenceLabel, error) {
	var nested [][]inferenceLabel
	if err := json.Unmarshal(body, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}
	var flat []inferenceLabel
	if err := json.Unmarshal(body, &flat); err == nil {
		return flat, nil
	}
	return nil, fmt.Errorf("%w: malformed response", ErrUnavailable)
}

func resultFromLabels(text string, labels []inferenceLabel) (domain.AnalysisResult, error) {
	if len(labels) == 0 {
		return domain.AnalysisResult{}, fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	scores := make(domain.EmotionScores, 0, len(labels))
	for _, l := range labels {
		scores = append(scores, domain.EmotionScore{
			Label: domain.ParseEmotion(l.Label),
			Score: l.Score,
		})
	}
	scores.SortDesc()
	primary := scores[0]

	return domain.AnalysisResult{
		Emotion:      primary.Label,
		Confidence:   primary.Score,
		AllScores:    scores,
		Intensity:    EstimateIntensity(text, primary.Score),
		UsedFallback: false,
	}, nil
}
