package repository

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"persona-sim/internal/domain"
)

// SnapshotRepository persiste la línea de tiempo clínica de cada persona.
type SnapshotRepository interface {
	Create(ctx context.Context, snap domain.PersonaSnapshot) error
	ListByPersona(ctx context.Context, personaID string) ([]domain.PersonaSnapshot, error)
}

// PgSnapshotRepository implementa SnapshotRepository usando pgxpool. Traits
// y trastornos se guardan como JSONB: los snapshots son inmutables y solo se
// leen completos, nunca se consultan por campo.
type PgSnapshotRepository struct {
	pool *pgxpool.Pool
}

func NewPgSnapshotRepository(pool *pgxpool.Pool) *PgSnapshotRepository {
	return &PgSnapshotRepository{pool: pool}
}

func (r *PgSnapshotRepository) Create(ctx context.Context, snap domain.PersonaSnapshot) error {
	const query = `
		INSERT INTO persona_snapshots (id, persona_id, reason, traits, disorders, taken_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	traits, err := json.Marshal(snap.Traits)
	if err != nil {
		return err
	}
	disorders, err := json.Marshal(snap.Disorders)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, query,
		snap.ID,
		snap.PersonaID,
		snap.Reason,
		traits,
		disorders,
		snap.TakenAt,
	)
	return err
}

func (r *PgSnapshotRepository) ListByPersona(ctx context.Context, personaID string) ([]domain.PersonaSnapshot, error) {
	const query = `
		SELECT id, persona_id, reason, traits, disorders, taken_at
		FROM persona_snapshots
		WHERE persona_id = $1
		ORDER BY taken_at
	`
	rows, err := r.pool.Query(ctx, query, personaID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []domain.PersonaSnapshot
	for rows.Next() {
		var s domain.PersonaSnapshot
		var traits, disorders []byte
		if err := rows.Scan(
			&s.ID,
			&s.PersonaID,
			&s.Reason,
			&traits,
			&disorders,
			&s.TakenAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(traits, &s.Traits); err != nil {
			return nil, err
		}
		if len(disorders) > 0 {
			if err := json.Unmarshal(disorders, &s.Disorders); err != nil {
				return nil, err
			}
		}
		snaps = append(snaps, s)
	}
	return snaps, rows.Err()
}
