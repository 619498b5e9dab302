package service

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5"

	"persona-sim/internal/domain"
)

/*
========================
 Repos en memoria para tests
========================
*/

type memPersonaRepo struct {
	items map[string]domain.Persona
}

func newMemPersonaRepo() *memPersonaRepo {
	return &memPersonaRepo{items: make(map[string]domain.Persona)}
}

func (r *memPersonaRepo) Create(_ context.Context, persona domain.Persona) error {
	r.items[persona.ID] = persona
	return nil
}

func (r *memPersonaRepo) GetByID(_ context.Context, id string) (domain.Persona, error) {
	persona, ok := r.items[id]
	if !ok {
		return domain.Persona{}, pgx.ErrNoRows
	}
	return persona, nil
}

func (r *memPersonaRepo) ListByUser(_ context.Context, userID string) ([]domain.Persona, error) {
	var out []domain.Persona
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *memPersonaRepo) UpdateTraits(_ context.Context, persona domain.Persona) error {
	stored, ok := r.items[persona.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Traits = persona.Traits
	stored.UpdatedAt = persona.UpdatedAt
	r.items[persona.ID] = stored
	return nil
}

func (r *memPersonaRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type memDisorderRepo struct {
	items map[string]map[string]domain.DisorderScore // personaID -> disorder -> score
}

func newMemDisorderRepo() *memDisorderRepo {
	return &memDisorderRepo{items: make(map[string]map[string]domain.DisorderScore)}
}

func (r *memDisorderRepo) Upsert(_ context.Context, score domain.DisorderScore) error {
	byDisorder, ok := r.items[score.PersonaID]
	if !ok {
		byDisorder = make(map[string]domain.DisorderScore)
		r.items[score.PersonaID] = byDisorder
	}
	byDisorder[score.Disorder] = score
	return nil
}

func (r *memDisorderRepo) ListByPersona(_ context.Context, personaID string) ([]domain.DisorderScore, error) {
	var out []domain.DisorderScore
	for _, score := range r.items[personaID] {
		out = append(out, score)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Severity != out[j].Severity {
			return out[i].Severity > out[j].Severity
		}
		return out[i].Disorder < out[j].Disorder
	})
	return out, nil
}

func (r *memDisorderRepo) DeleteByPersona(_ context.Context, personaID string) error {
	delete(r.items, personaID)
	return nil
}

type memExperienceRepo struct {
	items []domain.Experience
}

func (r *memExperienceRepo) Create(_ context.Context, exp domain.Experience) error {
	r.items = append(r.items, exp)
	return nil
}

func (r *memExperienceRepo) ListByPersona(_ context.Context, personaID string) ([]domain.Experience, error) {
	var out []domain.Experience
	for _, e := range r.items {
		if e.PersonaID == personaID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].AgeAtEvent < out[j].AgeAtEvent })
	return out, nil
}

type memInterventionRepo struct {
	items []domain.Intervention
}

func (r *memInterventionRepo) Create(_ context.Context, iv domain.Intervention) error {
	r.items = append(r.items, iv)
	return nil
}

func (r *memInterventionRepo) ListByPersona(_ context.Context, personaID string) ([]domain.Intervention, error) {
	var out []domain.Intervention
	for _, iv := range r.items {
		if iv.PersonaID == personaID {
			out = append(out, iv)
		}
	}
	return out, nil
}

type memSnapshotRepo struct {
	items []domain.PersonaSnapshot
}

func (r *memSnapshotRepo) Create(_ context.Context, snap domain.PersonaSnapshot) error {
	r.items = append(r.items, snap)
	return nil
}

func (r *memSnapshotRepo) ListByPersona(_ context.Context, personaID string) ([]domain.PersonaSnapshot, error) {
	var out []domain.PersonaSnapshot
	for _, snap := range r.items {
		if snap.PersonaID == personaID {
			out = append(out, snap)
		}
	}
	return out, nil
}
