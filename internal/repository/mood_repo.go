package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"mood-mirror/internal/domain"
)

type MoodRepository interface {
	Create(ctx context.Context, entry domain.MoodEntry) error
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.MoodEntry, error)
	ListAll(ctx context.Context, userID string) ([]domain.MoodEntry, error)
	SearchSimilar(ctx context.Context, userID string, vec pgvector.Vector, k int) ([]domain.MoodEntry, error)
	Count(ctx context.Context) (int64, error)
}

type PgMoodRepository struct {
	pool *pgxpool.Pool
}

func NewPgMoodRepository(pool *pgxpool.Pool) *PgMoodRepository {
	return &PgMoodRepository{pool: pool}
}

func (r *PgMoodRepository) Create(ctx context.Context, entry domain.MoodEntry) error {
	const query = `
		INSERT INTO mood_entries (
			id, user_id, emotion, confidence, text_input, persona_used,
			all_scores, score_vec, used_fallback, intensity, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	scoresJSON, err := json.Marshal(entry.AllScores)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		entry.ID,
		entry.UserID,
		string(entry.Emotion),
		entry.Confidence,
		entry.TextInput,
		entry.PersonaUsed,
		scoresJSON,
		entry.ScoreVector,
		entry.UsedFallback,
		string(entry.Intensity),
		entry.CreatedAt,
	)
	return err
}

func (r *PgMoodRepository) ListRecent(ctx context.Context, userID string, limit int) ([]domain.MoodEntry, error) {
	if limit <= 0 {
		limit = 20
	}
	const query = `
		SELECT id, user_id, emotion, confidence, text_input, persona_used,
		       all_scores, used_fallback, intensity, created_at
		FROM mood_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMoodEntries(rows)
}

func (r *PgMoodRepository) ListAll(ctx context.Context, userID string) ([]domain.MoodEntry, error) {
	const query = `
		SELECT id, user_id, emotion, confidence, text_input, persona_used,
		       all_scores, used_fallback, intensity, created_at
		FROM mood_entries
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMoodEntries(rows)
}

// SearchSimilar busca entradas con distribucion emocional parecida usando
// distancia coseno sobre el vector de scores.
func (r *PgMoodRepository) SearchSimilar(ctx context.Context, userID string, vec pgvector.Vector, k int) ([]domain.MoodEntry, error) {
	if k <= 0 {
		k = 5
	}
	const query = `
		SELECT id, user_id, emotion, confidence, text_input, persona_used,
		       all_scores, used_fallback, intensity, created_at
		FROM mood_entries
		WHERE user_id = $1
		ORDER BY score_vec <=> $2
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, userID, vec, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanMoodEntries(rows)
}

func (r *PgMoodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM mood_entries`).Scan(&count)
	return count, err
}

func scanMoodEntries(rows pgxRows) ([]domain.MoodEntry, error) {
	var entries []domain.MoodEntry
	for rows.Next() {
		var e domain.MoodEntry
		var emotion, intensity string
		var scoresJSON []byte
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&emotion,
			&e.Confidence,
			&e.TextInput,
			&e.PersonaUsed,
			&scoresJSON,
			&e.UsedFallback,
			&intensity,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		e.Emotion = domain.ParseEmotion(emotion)
		e.Intensity = domain.Intensity(intensity)
		if len(scoresJSON) > 0 {
			if err := json.Unmarshal(scoresJSON, &e.AllScores); err != nil {
				return nil, err
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// pgxRows es la interfaz minima para escanear filas de pgx y simplificar tests.
type pgxRows interface {
	Next() bool
	Scan(...interface{}) error
	Err() error
	Close()
}
