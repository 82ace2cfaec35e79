package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"mood-mirror/internal/domain"
)

type ChatRepository interface {
	Create(ctx context.Context, message domain.ChatMessage) error
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type PgChatRepository struct {
	pool *pgxpool.Pool
}

func NewPgChatRepository(pool *pgxpool.Pool) *PgChatRepository {
	return &PgChatRepository{pool: pool}
}

func (r *PgChatRepository) Create(ctx context.Context, message domain.ChatMessage) error {
	const query = `
		INSERT INTO chat_messages (
			id, user_id, message, response, persona_used,
			emotion_context, llm_generated, response_time, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.UserID,
		message.Message,
		message.Response,
		message.PersonaUsed,
		string(message.EmotionContext),
		message.LLMGenerated,
		message.ResponseTime,
		message.CreatedAt,
	)
	return err
}

func (r *PgChatRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, user_id, message, response, persona_used,
		       emotion_context, llm_generated, response_time, created_at
		FROM chat_messages
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var emotion string
		if err := rows.Scan(
			&m.ID,
			&m.UserID,
			&m.Message,
			&m.Response,
			&m.PersonaUsed,
			&emotion,
			&m.LLMGenerated,
			&m.ResponseTime,
			&m.CreatedAt,
		); err != nil {
			return nil, err
		}
		m.EmotionContext = domain.ParseEmotion(emotion)
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *PgChatRepository) DeleteByUser(ctx context.Context, userID string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM chat_messages WHERE user_id = $1`, userID)
	return err
}
