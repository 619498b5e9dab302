package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"persona-sim/internal/domain"
)

// ExperienceRepository persiste la historia de eventos de cada persona.
type ExperienceRepository interface {
	Create(ctx context.Context, exp domain.Experience) error
	ListByPersona(ctx context.Context, personaID string) ([]domain.Experience, error)
}

// PgExperienceRepository implementa ExperienceRepository usando pgxpool.
type PgExperienceRepository struct {
	pool *pgxpool.Pool
}

func NewPgExperienceRepository(pool *pgxpool.Pool) *PgExperienceRepository {
	return &PgExperienceRepository{pool: pool}
}

func (r *PgExperienceRepository) Create(ctx context.Context, exp domain.Experience) error {
	const query = `
		INSERT INTO experiences (
			id, persona_id, description, category, severity, kind, age_at_event, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		exp.ID,
		exp.PersonaID,
		exp.Description,
		exp.Category,
		exp.Severity,
		exp.Kind,
		exp.AgeAtEvent,
		exp.CreatedAt,
	)
	return err
}

func (r *PgExperienceRepository) ListByPersona(ctx context.Context, personaID string) ([]domain.Experience, error) {
	const query = `
		SELECT id, persona_id, description, category, severity, kind, age_at_event, created_at
		FROM experiences
		WHERE persona_id = $1
		ORDER BY age_at_event, created_at
	`
	rows, err := r.pool.Query(ctx, query, personaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exps []domain.Experience
	for rows.Next() {
		var e domain.Experience
		if err := rows.Scan(
			&e.ID,
			&e.PersonaID,
			&e.Description,
			&e.Category,
			&e.Severity,
			&e.Kind,
			&e.AgeAtEvent,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		exps = append(exps, e)
	}
	return exps, rows.Err()
}
