package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"persona-sim/internal/domain"
)

// PersonaRepository define el contrato de persistencia para personas.
type PersonaRepository interface {
	Create(ctx context.Context, persona domain.Persona) error
	GetByID(ctx context.Context, id string) (domain.Persona, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Persona, error)
	UpdateTraits(ctx context.Context, persona domain.Persona) error
	Delete(ctx context.Context, id string) error
}

// PgPersonaRepository implementa PersonaRepository usando pgxpool.
type PgPersonaRepository struct {
	pool *pgxpool.Pool
}

func NewPgPersonaRepository(pool *pgxpool.Pool) *PgPersonaRepository {
	return &PgPersonaRepository{pool: pool}
}

func (r *PgPersonaRepository) Create(ctx context.Context, p domain.Persona) error {
	const query = `
		INSERT INTO personas (
			id, user_id, name, age, backstory,
			openness, conscientiousness, extraversion, agreeableness, neuroticism,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.UserID,
		p.Name,
		p.Age,
		p.Backstory,
		p.Traits.Openness,
		p.Traits.Conscientiousness,
		p.Traits.Extraversion,
		p.Traits.Agreeableness,
		p.Traits.Neuroticism,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

func (r *PgPersonaRepository) GetByID(ctx context.Context, id string) (domain.Persona, error) {
	const query = `
		SELECT id, user_id, name, age, backstory,
			openness, conscientiousness, extraversion, agreeableness, neuroticism,
			created_at, updated_at
		FROM personas
		WHERE id = $1
	`
	var p domain.Persona
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Age,
		&p.Backstory,
		&p.Traits.Openness,
		&p.Traits.Conscientiousness,
		&p.Traits.Extraversion,
		&p.Traits.Agreeableness,
		&p.Traits.Neuroticism,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *PgPersonaRepository) ListByUser(ctx context.Context, userID string) ([]domain.Persona, error) {
	const query = `
		SELECT id, user_id, name, age, backstory,
			openness, conscientiousness, extraversion, agreeableness, neuroticism,
			created_at, updated_at
		FROM personas
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var personas []domain.Persona
	for rows.Next() {
		var p domain.Persona
		if err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Age,
			&p.Backstory,
			&p.Traits.Openness,
			&p.Traits.Conscientiousness,
			&p.Traits.Extraversion,
			&p.Traits.Agreeableness,
			&p.Traits.Neuroticism,
			&p.CreatedAt,
			&p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		personas = append(personas, p)
	}
	return personas, rows.Err()
}

func (r *PgPersonaRepository) UpdateTraits(ctx context.Context, p domain.Persona) error {
	const query = `
		UPDATE personas
		SET openness = $2, conscientiousness = $3, extraversion = $4,
			agreeableness = $5, neuroticism = $6, updated_at = $7
		WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID,
		p.Traits.Openness,
		p.Traits.Conscientiousness,
		p.Traits.Extraversion,
		p.Traits.Agreeableness,
		p.Traits.Neuroticism,
		p.UpdatedAt,
	)
	return err
}

func (r *PgPersonaRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM personas WHERE id = $1`
	_, err := r.pool.Exec(ctx, query, id)
	return err
}
