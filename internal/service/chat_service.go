package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"mood-mirror/internal/domain"
	"mood-mirror/internal/llm"
	"mood-mirror/internal/persona"
	"mood-mirror/internal/repository"
)

var ErrMessageTooShort = errors.New("message too short")

// maxMessageLength es el tope de caracteres de un mensaje de chat.
const maxMessageLength = 1000

// ChatService maneja la conversacion terapeutica con el acompañante.
// El LLM es un colaborador opaco: cualquier error se resuelve con una
// respuesta enlatada en el tono del persona, nunca con un fallo al usuario.
type ChatService struct {
	logger   *zap.Logger
	client   llm.Client
	composer *persona.Composer
	chats    repository.ChatRepository
	timeout  time.Duration
	now      func() time.Time
}

func NewChatService(logger *zap.Logger, client llm.Client, composer *persona.Composer, chats repository.ChatRepository, timeout time.Duration) *ChatService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &ChatService{
		logger:   logger,
		client:   client,
		composer: composer,
		chats:    chats,
		timeout:  timeout,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ChatResult es la respuesta de un turno de conversacion.
type ChatResult struct {
	MessageID      string         `json:"message_id"`
	Response       string         `json:"response"`
	PersonaUsed    string         `json:"persona_used"`
	EmotionContext domain.Emotion `json:"emotion_context"`
	LLMGenerated   bool           `json:"llm_generated"`
	ResponseTime   float64        `json:"response_time"`
}

// Chat valida el mensaje, consulta al LLM con el prompt del persona y
// persiste el turno. Si el LLM falla o demora, responde con una variante
// enlatada del persona y marca llm_generated en false.
func (s *ChatService) Chat(ctx context.Context, userID, message, emotionContext string) (ChatResult, error) {
	message = strings.TrimSpace(message)
	if len(message) < 3 {
		return ChatResult{}, ErrMessageTooShort
	}
	if len(message) > maxMessageLength {
		message = message[:maxMessageLength]
	}

	emotion := domain.ParseEmotion(emotionContext)
	profile := persona.Select(emotion)

	start := s.now()
	llmCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	response, err := s.client.Generate(llmCtx, buildTherapeuticPrompt(profile, emotion, message))
	llmGenerated := err == nil
	if err != nil {
		s.logger.Warn("llm chat failed, using canned response",
			zap.String("persona", profile.Name),
			zap.Error(err),
		)
		response = s.cannedResponse(profile)
	}
	elapsed := s.now().Sub(start).Seconds()

	result := ChatResult{
		MessageID:      uuid.NewString(),
		Response:       response,
		PersonaUsed:    profile.Name,
		EmotionContext: emotion,
		LLMGenerated:   llmGenerated,
		ResponseTime:   elapsed,
	}

	record := domain.ChatMessage{
		ID:             result.MessageID,
		UserID:         userID,
		Message:        message,
		Response:       response,
		PersonaUsed:    profile.Name,
		EmotionContext: emotion,
		LLMGenerated:   llmGenerated,
		ResponseTime:   elapsed,
		CreatedAt:      start,
	}
	if err := s.chats.Create(ctx, record); err != nil {
		s.logger.Error("persist chat message failed", zap.String("user_id", userID), zap.Error(err))
	}

	return result, nil
}

// buildTherapeuticPrompt arma el prompt de sistema con la identidad del
// persona y el contexto emocional del usuario.
func buildTherapeuticPrompt(profile *persona.Profile, emotion domain.Emotion, message string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are %s, a supportive companion with a %s personality.\n", profile.Name, profile.Personality)
	fmt.Fprintf(&b, "Your core values are: %s.\n", strings.Join(profile.CoreValues, ", "))
	fmt.Fprintf(&b, "The user is currently feeling %s.\n", emotion)
	b.WriteString("Respond with warmth and empathy in 2-4 sentences. ")
	b.WriteString("Validate their feelings, never give medical advice, and gently encourage healthy coping.\n\n")
	fmt.Fprintf(&b, "User: %s", message)
	return b.String()
}

// cannedResponse elige una de tres variantes enlatadas en el tono del
// persona, sorteando con la fuente de aleatoriedad del compositor.
func (s *ChatService) cannedResponse(profile *persona.Profile) string {
	variants := []string{
		s.composer.Pattern(profile) + " Tell me more about what's on your mind.",
		"I'm here with you, even when words are hard to find. " + s.composer.Starter(profile),
		s.composer.Pattern(profile) + " Take all the time you need, I'm listening.",
	}
	return s.composer.Choose(variants)
}

// History devuelve los ultimos 20 turnos en orden cronologico.
func (s *ChatService) History(ctx context.Context, userID string) ([]domain.ChatMessage, error) {
	messages, err := s.chats.ListRecent(ctx, userID, 20)
	if err != nil {
		return nil, fmt.Errorf("list chat messages: %w", err)
	}
	// El repositorio devuelve de mas reciente a mas viejo.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Clear borra todo el historial de chat del usuario.
func (s *ChatService) Clear(ctx context.Context, userID string) error {
	if err := s.chats.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("delete chat messages: %w", err)
	}
	s.logger.Info("chat history cleared", zap.String("user_id", userID))
	return nil
}
