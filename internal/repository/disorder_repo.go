package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"persona-sim/internal/domain"
)

// DisorderScoreRepository persiste el estado sintomático por persona.
type DisorderScoreRepository interface {
	Upsert(ctx context.Context, score domain.DisorderScore) error
	ListByPersona(ctx context.Context, personaID string) ([]domain.DisorderScore, error)
	DeleteByPersona(ctx context.Context, personaID string) error
}

// PgDisorderScoreRepository implementa DisorderScoreRepository usando pgxpool.
// Los detalles por síntoma se guardan como JSONB.
type PgDisorderScoreRepository struct {
	pool *pgxpool.Pool
}

func NewPgDisorderScoreRepository(pool *pgxpool.Pool) *PgDisorderScoreRepository {
	return &PgDisorderScoreRepository{pool: pool}
}

func (r *PgDisorderScoreRepository) Upsert(ctx context.Context, score domain.DisorderScore) error {
	const query = `
		INSERT INTO disorder_scores (
			id, persona_id, disorder, category, severity, onset_age,
			source, symptom_details, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (persona_id, disorder)
		DO UPDATE SET
			category = EXCLUDED.category,
			severity = EXCLUDED.severity,
			onset_age = EXCLUDED.onset_age,
			source = EXCLUDED.source,
			symptom_details = EXCLUDED.symptom_details,
			updated_at = EXCLUDED.updated_at
	`

	details, err := json.Marshal(score.SymptomDetails)
	if err != nil {
		return err
	}

	_, err = r.pool.Exec(ctx, query,
		score.ID,
		score.PersonaID,
		score.Disorder,
		score.Category,
		score.Severity,
		score.OnsetAge,
		score.Source,
		details,
		score.CreatedAt,
		score.UpdatedAt,
	)
	return err
}

func (r *PgDisorderScoreRepository) ListByPersona(ctx context.Context, personaID string) ([]domain.DisorderScore, error) {
	const query = `
		SELECT id, persona_id, disorder, category, severity, onset_age,
			source, symptom_details, created_at, updated_at
		FROM disorder_scores
		WHERE persona_id = $1
		ORDER BY severity DESC, disorder
	`
	rows, err := r.pool.Query(ctx, query, personaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []domain.DisorderScore
	for rows.Next() {
		var s domain.DisorderScore
		var details []byte
		if err := rows.Scan(
			&s.ID,
			&s.PersonaID,
			&s.Disorder,
			&s.Category,
			&s.Severity,
			&s.OnsetAge,
			&s.Source,
			&details,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &s.SymptomDetails); err != nil {
				return nil, err
			}
		}
		scores = append(scores, s)
	}
	return scores, rows.Err()
}

func (r *PgDisorderScoreRepository) DeleteByPersona(ctx context.Context, personaID string) error {
	const query = `DELETE FROM disorder_scores WHERE persona_id = $1`
	_, err := r.pool.Exec(ctx, query, personaID)
	return err
}
