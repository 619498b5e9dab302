package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"persona-sim/internal/domain"
	"persona-sim/internal/psych"
)

func newTestPersonaService() (*PersonaService, *memPersonaRepo, *memDisorderRepo, *memSnapshotRepo) {
	personas := newMemPersonaRepo()
	disorders := newMemDisorderRepo()
	snapshots := &memSnapshotRepo{}
	svc := NewPersonaService(zap.NewNop(), personas, disorders, snapshots)
	return svc, personas, disorders, snapshots
}

func TestPersonaService_CreatePersonaSeedsFromBackstory(t *testing.T) {
	svc, _, _, snapshots := newTestPersonaService()
	ctx := context.Background()

	state, err := svc.CreatePersona(ctx, CreatePersonaInput{
		UserID:    "u1",
		Name:      "  Marta  ",
		Age:       20,
		Backstory: "She was molested by a neighbor as a child.",
	})
	if err != nil {
		t.Fatalf("create persona: %v", err)
	}
	if state.Persona.Name != "Marta" {
		t.Fatalf("expected trimmed name, got %q", state.Persona.Name)
	}
	if state.Persona.ID == "" {
		t.Fatalf("expected generated id")
	}

	var ptsd *domain.DisorderScore
	for i := range state.Disorders {
		if state.Disorders[i].Disorder == "ptsd" {
			ptsd = &state.Disorders[i]
		}
	}
	if ptsd == nil {
		t.Fatalf("expected ptsd seed, got %+v", state.Disorders)
	}
	if ptsd.Severity != 0.85 {
		t.Fatalf("expected ptsd severity 0.85, got %v", ptsd.Severity)
	}
	if ptsd.Source != domain.DisorderSourceBackstory {
		t.Fatalf("expected backstory source, got %q", ptsd.Source)
	}
	if ptsd.OnsetAge != 20 {
		t.Fatalf("expected onset at baseline age, got %d", ptsd.OnsetAge)
	}

	if len(snapshots.items) != 1 {
		t.Fatalf("expected one snapshot, got %d", len(snapshots.items))
	}
	if snapshots.items[0].Reason != domain.SnapshotReasonCreated {
		t.Fatalf("unexpected snapshot reason %q", snapshots.items[0].Reason)
	}
	if len(snapshots.items[0].Disorders) != len(state.Disorders) {
		t.Fatalf("snapshot should carry the seeded disorders")
	}
}

func TestPersonaService_CreatePersonaCleanBackstory(t *testing.T) {
	svc, _, _, _ := newTestPersonaService()

	state, err := svc.CreatePersona(context.Background(), CreatePersonaInput{
		UserID:    "u1",
		Name:      "Leo",
		Age:       30,
		Backstory: "A calm and uneventful upbringing in the countryside.",
	})
	if err != nil {
		t.Fatalf("create persona: %v", err)
	}
	if len(state.Disorders) != 0 {
		t.Fatalf("expected no seeds for benign backstory, got %+v", state.Disorders)
	}
}

func TestPersonaService_CreatePersonaValidation(t *testing.T) {
	svc, _, _, _ := newTestPersonaService()
	ctx := context.Background()

	if _, err := svc.CreatePersona(ctx, CreatePersonaInput{Name: "   ", Age: 10}); !errors.Is(err, psych.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.CreatePersona(ctx, CreatePersonaInput{Name: "Leo", Age: -1}); !errors.Is(err, psych.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative age, got %v", err)
	}
}

func TestPersonaService_GetListDelete(t *testing.T) {
	svc, personas, disorders, _ := newTestPersonaService()
	ctx := context.Background()

	state, err := svc.CreatePersona(ctx, CreatePersonaInput{
		UserID:    "u1",
		Name:      "Marta",
		Age:       12,
		Backstory: "Her mother was an alcoholic and she was often left alone.",
	})
	if err != nil {
		t.Fatalf("create persona: %v", err)
	}
	id := state.Persona.ID

	got, err := svc.GetPersona(ctx, id)
	if err != nil {
		t.Fatalf("get persona: %v", err)
	}
	if got.Persona.ID != id {
		t.Fatalf("expected persona %q, got %q", id, got.Persona.ID)
	}
	if len(got.Disorders) == 0 {
		t.Fatalf("expected seeded disorders on read")
	}

	list, err := svc.ListPersonas(ctx, "u1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one persona, got %d (%v)", len(list), err)
	}

	if err := svc.DeletePersona(ctx, id); err != nil {
		t.Fatalf("delete persona: %v", err)
	}
	if _, ok := personas.items[id]; ok {
		t.Fatalf("expected persona removed")
	}
	if scores, _ := disorders.ListByPersona(ctx, id); len(scores) != 0 {
		t.Fatalf("expected disorder scores removed, got %+v", scores)
	}
}

func TestPersonaService_Timeline(t *testing.T) {
	svc, _, _, snapshots := newTestPersonaService()
	ctx := context.Background()

	state, err := svc.CreatePersona(ctx, CreatePersonaInput{UserID: "u1", Name: "Leo", Age: 8})
	if err != nil {
		t.Fatalf("create persona: %v", err)
	}

	timeline, err := svc.Timeline(ctx, state.Persona.ID)
	if err != nil {
		t.Fatalf("timeline: %v", err)
	}
	if len(timeline) != len(snapshots.items) || len(timeline) != 1 {
		t.Fatalf("expected the creation snapshot, got %d", len(timeline))
	}
}
