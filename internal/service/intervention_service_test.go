package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"persona-sim/internal/domain"
	"persona-sim/internal/llm"
	"persona-sim/internal/psych"
)

type interventionFixture struct {
	svc           *InterventionService
	disorders     *memDisorderRepo
	interventions *memInterventionRepo
	snapshots     *memSnapshotRepo
}

func newInterventionFixture(t *testing.T, scores ...domain.DisorderScore) interventionFixture {
	t.Helper()
	ctx := context.Background()

	personas := newMemPersonaRepo()
	if err := personas.Create(ctx, testPersona(30, "")); err != nil {
		t.Fatalf("seed persona: %v", err)
	}
	disorders := newMemDisorderRepo()
	for _, score := range scores {
		if err := disorders.Upsert(ctx, score); err != nil {
			t.Fatalf("seed disorder: %v", err)
		}
	}
	interventions := &memInterventionRepo{}
	snapshots := &memSnapshotRepo{}
	svc := NewInterventionService(
		zap.NewNop(),
		psych.DefaultTherapyCatalog(),
		nil,
		personas,
		disorders,
		interventions,
		snapshots,
	)
	return interventionFixture{
		svc:           svc,
		disorders:     disorders,
		interventions: interventions,
		snapshots:     snapshots,
	}
}

func depressionScore(severity float64, symptoms map[string]float64) domain.DisorderScore {
	now := time.Now().UTC()
	return domain.DisorderScore{
		ID:             "d1",
		PersonaID:      "p1",
		Disorder:       "depression",
		Category:       psych.CategoryMood,
		Severity:       severity,
		OnsetAge:       12,
		Source:         domain.DisorderSourceAssessment,
		SymptomDetails: symptoms,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestInterventionService_ApplyReducesSeverity(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.9, map[string]float64{
		"depression": 0.8,
		"anxiety":    0.6,
	}))

	report, err := fx.svc.ApplyIntervention(context.Background(), "p1", ApplyInterventionInput{
		Therapy:        "CBT",
		TargetDisorder: "depression",
		DurationWeeks:  16,
		Adherence:      1.0,
	})
	if err != nil {
		t.Fatalf("apply intervention: %v", err)
	}

	// CBT cubre ambos síntomas: match 1.0. Efecto base 0.5 * (16/24) = 0.33.
	// 16 semanas sobre 12 recomendadas: factor de duración 1.0.
	iv := report.Intervention
	if math.Abs(iv.MatchScore-1.0) > 1e-9 {
		t.Fatalf("match score = %v; want 1.0", iv.MatchScore)
	}
	if math.Abs(iv.Effect-0.33) > 1e-9 {
		t.Fatalf("effect = %v; want 0.33", iv.Effect)
	}

	dep := disorderFor(t, report.Disorders, "depression")
	if math.Abs(dep.Severity-0.57) > 1e-9 {
		t.Fatalf("severity = %v; want 0.9 - 0.33 = 0.57", dep.Severity)
	}
	// Los síntomas se reescalan en proporción a la nueva severidad.
	if math.Abs(dep.SymptomDetails["depression"]-0.51) > 1e-9 {
		t.Fatalf("depression symptom = %v; want 0.51", dep.SymptomDetails["depression"])
	}
	if math.Abs(dep.SymptomDetails["anxiety"]-0.38) > 1e-9 {
		t.Fatalf("anxiety symptom = %v; want 0.38", dep.SymptomDetails["anxiety"])
	}

	stored, _ := fx.disorders.ListByPersona(context.Background(), "p1")
	if math.Abs(stored[0].Severity-0.57) > 1e-9 {
		t.Fatalf("expected persisted severity 0.57, got %v", stored[0].Severity)
	}
	if len(fx.interventions.items) != 1 {
		t.Fatalf("expected intervention recorded")
	}
	if len(fx.snapshots.items) != 1 || fx.snapshots.items[0].Reason != domain.SnapshotReasonIntervention {
		t.Fatalf("expected intervention snapshot, got %+v", fx.snapshots.items)
	}
	if report.Explanation == "" {
		t.Fatalf("expected match explanation")
	}
}

func TestInterventionService_NoSymptomOverlapMeansNoReduction(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.8, map[string]float64{
		"flashbacks":   0.7,
		"night_terror": 0.6,
	}))

	report, err := fx.svc.ApplyIntervention(context.Background(), "p1", ApplyInterventionInput{
		Therapy:        "CBT",
		TargetDisorder: "depression",
		DurationWeeks:  24,
		Adherence:      1.0,
	})
	if err != nil {
		t.Fatalf("apply intervention: %v", err)
	}
	if report.Intervention.MatchScore != 0 {
		t.Fatalf("expected zero match, got %v", report.Intervention.MatchScore)
	}
	dep := disorderFor(t, report.Disorders, "depression")
	if math.Abs(dep.Severity-0.8) > 1e-9 {
		t.Fatalf("expected severity unchanged at 0.8, got %v", dep.Severity)
	}
}

func TestInterventionService_SeverityFloorsAtZero(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.1, map[string]float64{
		"depression": 0.1,
	}))

	report, err := fx.svc.ApplyIntervention(context.Background(), "p1", ApplyInterventionInput{
		Therapy:        "CBT",
		TargetDisorder: "depression",
		DurationWeeks:  20,
		Adherence:      1.0,
	})
	if err != nil {
		t.Fatalf("apply intervention: %v", err)
	}
	dep := disorderFor(t, report.Disorders, "depression")
	if dep.Severity != 0 {
		t.Fatalf("expected severity floored at 0, got %v", dep.Severity)
	}
	if dep.SymptomDetails["depression"] != 0 {
		t.Fatalf("expected symptoms scaled to 0, got %v", dep.SymptomDetails)
	}
}

func TestInterventionService_UnknownTherapy(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.8, nil))

	if _, err := fx.svc.ApplyIntervention(context.Background(), "p1", ApplyInterventionInput{
		Therapy:        "hypnosis",
		TargetDisorder: "depression",
		DurationWeeks:  12,
		Adherence:      1.0,
	}); !errors.Is(err, psych.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown therapy, got %v", err)
	}
}

func TestInterventionService_TargetDisorderAbsent(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.8, nil))

	if _, err := fx.svc.ApplyIntervention(context.Background(), "p1", ApplyInterventionInput{
		Therapy:        "CBT",
		TargetDisorder: "ptsd",
		DurationWeeks:  12,
		Adherence:      1.0,
	}); !errors.Is(err, psych.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent disorder, got %v", err)
	}
}

func TestInterventionService_InvalidAdherence(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.8, map[string]float64{"depression": 0.8}))

	if _, err := fx.svc.ApplyIntervention(context.Background(), "p1", ApplyInterventionInput{
		Therapy:        "CBT",
		TargetDisorder: "depression",
		DurationWeeks:  12,
		Adherence:      1.5,
	}); !errors.Is(err, psych.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for adherence > 1, got %v", err)
	}
}

func TestInterventionService_ListInterventions(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.9, map[string]float64{"depression": 0.8}))
	ctx := context.Background()

	if _, err := fx.svc.ApplyIntervention(ctx, "p1", ApplyInterventionInput{
		Therapy:        "CBT",
		TargetDisorder: "depression",
		DurationWeeks:  12,
		Adherence:      0.8,
	}); err != nil {
		t.Fatalf("apply intervention: %v", err)
	}

	list, err := fx.svc.ListInterventions(ctx, "p1")
	if err != nil || len(list) != 1 {
		t.Fatalf("expected one intervention, got %d (%v)", len(list), err)
	}
	if list[0].Therapy != "CBT" || list[0].TargetDisorder != "depression" {
		t.Fatalf("unexpected intervention %+v", list[0])
	}
}

func TestInterventionService_LLMNarrativeUsedWhenAvailable(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.9, map[string]float64{"depression": 0.8}))
	fx.svc.llmClient = &llm.MockClient{
		Response: "  CBT produced a meaningful but partial reduction in depressive symptoms.  ",
	}

	report, err := fx.svc.ApplyIntervention(context.Background(), "p1", ApplyInterventionInput{
		Therapy:        "CBT",
		TargetDisorder: "depression",
		DurationWeeks:  16,
		Adherence:      1.0,
	})
	if err != nil {
		t.Fatalf("apply intervention: %v", err)
	}
	want := "CBT produced a meaningful but partial reduction in depressive symptoms."
	if report.Explanation != want {
		t.Fatalf("explanation = %q; want trimmed llm narrative", report.Explanation)
	}
}

func TestInterventionService_LLMFailureFallsBackToCatalogExplanation(t *testing.T) {
	fx := newInterventionFixture(t, depressionScore(0.9, map[string]float64{"depression": 0.8}))
	fx.svc.llmClient = &llm.MockClient{Err: errors.New("timeout")}

	report, err := fx.svc.ApplyIntervention(context.Background(), "p1", ApplyInterventionInput{
		Therapy:        "CBT",
		TargetDisorder: "depression",
		DurationWeeks:  16,
		Adherence:      1.0,
	})
	if err != nil {
		t.Fatalf("apply intervention: %v", err)
	}
	if report.Explanation == "" || !strings.Contains(report.Explanation, "Cognitive") {
		t.Fatalf("expected catalog explanation fallback, got %q", report.Explanation)
	}
}
