package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"persona-sim/internal/domain"
)

// InterventionRepository persiste los cursos de terapia aplicados.
type InterventionRepository interface {
	Create(ctx context.Context, iv domain.Intervention) error
	ListByPersona(ctx context.Context, personaID string) ([]domain.Intervention, error)
}

// PgInterventionRepository implementa InterventionRepository usando pgxpool.
type PgInterventionRepository struct {
	pool *pgxpool.Pool
}

func NewPgInterventionRepository(pool *pgxpool.Pool) *PgInterventionRepository {
	return &PgInterventionRepository{pool: pool}
}

func (r *PgInterventionRepository) Create(ctx context.Context, iv domain.Intervention) error {
	const query = `
		INSERT INTO interventions (
			id, persona_id, therapy, target_disorder, duration_weeks,
			adherence, effect, match_score, duration_assessment, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		iv.ID,
		iv.PersonaID,
		iv.Therapy,
		iv.TargetDisorder,
		iv.DurationWeeks,
		iv.Adherence,
		iv.Effect,
		iv.MatchScore,
		iv.DurationAssessment,
		iv.CreatedAt,
	)
	return err
}

func (r *PgInterventionRepository) ListByPersona(ctx context.Context, personaID string) ([]domain.Intervention, error) {
	const query = `
		SELECT id, persona_id, therapy, target_disorder, duration_weeks,
			adherence, effect, match_score, duration_assessment, created_at
		FROM interventions
		WHERE persona_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, personaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ivs []domain.Intervention
	for rows.Next() {
		var iv domain.Intervention
		if err := rows.Scan(
			&iv.ID,
			&iv.PersonaID,
			&iv.Therapy,
			&iv.TargetDisorder,
			&iv.DurationWeeks,
			&iv.Adherence,
			&iv.Effect,
			&iv.MatchScore,
			&iv.DurationAssessment,
			&iv.CreatedAt,
		); err != nil {
			return nil, err
		}
		ivs = append(ivs, iv)
	}
	return ivs, rows.Err()
}
