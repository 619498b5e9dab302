package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"persona-sim/internal/domain"
	"persona-sim/internal/llm"
	"persona-sim/internal/psych"
	"persona-sim/internal/repository"
)

/*
========================
 Servicio de intervenciones
========================
*/

// InterventionService aplica cursos de terapia sobre el estado sintomático
// de una persona: calcula match, efecto y reducción, y deja el snapshot.
type InterventionService struct {
	logger        *zap.Logger
	catalog       *psych.TherapyCatalog
	llmClient     llm.LLMClient
	personas      repository.PersonaRepository
	disorders     repository.DisorderScoreRepository
	interventions repository.InterventionRepository
	snapshots     repository.SnapshotRepository
}

// NewInterventionService construye el servicio. llmClient puede ser nil; en
// ese caso la explicación del curso es siempre la determinista del catálogo.
func NewInterventionService(
	logger *zap.Logger,
	catalog *psych.TherapyCatalog,
	llmClient llm.LLMClient,
	personas repository.PersonaRepository,
	disorders repository.DisorderScoreRepository,
	interventions repository.InterventionRepository,
	snapshots repository.SnapshotRepository,
) *InterventionService {
	return &InterventionService{
		logger:        logger,
		catalog:       catalog,
		llmClient:     llmClient,
		personas:      personas,
		disorders:     disorders,
		interventions: interventions,
		snapshots:     snapshots,
	}
}

type ApplyInterventionInput struct {
	Therapy        string
	TargetDisorder string
	DurationWeeks  int
	Adherence      float64
}

// InterventionReport resume el curso aplicado y el estado resultante.
type InterventionReport struct {
	Intervention domain.Intervention    `json:"intervention"`
	Disorders    []domain.DisorderScore `json:"disorders"`
	Explanation  string                 `json:"explanation"`
}

// ApplyIntervention calcula el efecto del curso y reduce la severidad del
// trastorno objetivo, escalando sus síntomas en proporción.
func (s *InterventionService) ApplyIntervention(ctx context.Context, personaID string, input ApplyInterventionInput) (InterventionReport, error) {
	persona, err := s.personas.GetByID(ctx, personaID)
	if err != nil {
		return InterventionReport{}, err
	}

	therapy, err := s.catalog.Get(input.Therapy)
	if err != nil {
		return InterventionReport{}, err
	}

	scores, err := s.disorders.ListByPersona(ctx, personaID)
	if err != nil {
		return InterventionReport{}, err
	}

	targetIdx := -1
	for i, score := range scores {
		if score.Disorder == input.TargetDisorder {
			targetIdx = i
			break
		}
	}
	if targetIdx == -1 {
		return InterventionReport{}, fmt.Errorf("%w: persona has no disorder %q", psych.ErrNotFound, input.TargetDisorder)
	}
	target := scores[targetIdx]

	symptoms := symptomNames(target.SymptomDetails)
	matchScore := s.catalog.MatchScore(string(therapy.ID), symptoms)

	effect, err := s.catalog.InterventionEffect(input.TargetDisorder, string(therapy.ID), input.DurationWeeks, input.Adherence)
	if err != nil {
		return InterventionReport{}, err
	}

	// La reducción final pondera el efecto base por la calidad del match y
	// el ajuste de duración respecto a lo recomendado para la modalidad.
	durationFactor := 1.0
	if minWeeks, ok := psych.MinRecommendedWeeks(therapy); ok {
		durationFactor = psych.DurationImpact(input.DurationWeeks, minWeeks)
	}
	reduction := round2(effect * matchScore * durationFactor)

	now := time.Now().UTC()
	oldSeverity := target.Severity
	target.Severity = round2(math.Max(0, oldSeverity-reduction))
	target.SymptomDetails = scaleSymptoms(target.SymptomDetails, target.Severity, oldSeverity)
	target.UpdatedAt = now
	scores[targetIdx] = target

	if err := s.disorders.Upsert(ctx, target); err != nil {
		return InterventionReport{}, fmt.Errorf("upsert disorder %s: %w", target.Disorder, err)
	}

	iv := domain.Intervention{
		ID:                 uuid.NewString(),
		PersonaID:          personaID,
		Therapy:            string(therapy.ID),
		TargetDisorder:     input.TargetDisorder,
		DurationWeeks:      input.DurationWeeks,
		Adherence:          input.Adherence,
		Effect:             reduction,
		MatchScore:         matchScore,
		DurationAssessment: psych.DurationAssessment(input.DurationWeeks, therapy),
		CreatedAt:          now,
	}
	if err := s.interventions.Create(ctx, iv); err != nil {
		return InterventionReport{}, fmt.Errorf("create intervention: %w", err)
	}

	snap := domain.PersonaSnapshot{
		ID:        uuid.NewString(),
		PersonaID: personaID,
		Reason:    domain.SnapshotReasonIntervention,
		Traits:    persona.Traits,
		Disorders: scores,
		TakenAt:   now,
	}
	if err := s.snapshots.Create(ctx, snap); err != nil {
		return InterventionReport{}, fmt.Errorf("snapshot: %w", err)
	}

	s.logger.Info("intervention applied",
		zap.String("persona_id", personaID),
		zap.String("therapy", iv.Therapy),
		zap.String("disorder", iv.TargetDisorder),
		zap.Float64("reduction", reduction),
		zap.Float64("match_score", matchScore),
	)

	return InterventionReport{
		Intervention: iv,
		Disorders:    scores,
		Explanation:  s.explainIntervention(ctx, persona, therapy, target, input, matchScore, oldSeverity),
	}, nil
}

// explainIntervention intenta la narrativa vía LLM y cae a la explicación
// determinista del catálogo cuando no hay cliente o la llamada falla.
func (s *InterventionService) explainIntervention(
	ctx context.Context,
	persona domain.Persona,
	therapy psych.Therapy,
	target domain.DisorderScore,
	input ApplyInterventionInput,
	matchScore, oldSeverity float64,
) string {
	fallback := s.catalog.ExplainMatch(string(therapy.ID), symptomNames(target.SymptomDetails), matchScore)
	if s.llmClient == nil {
		return fallback
	}

	prompt := buildInterventionNarrativePrompt(persona, therapy, target, input, matchScore, oldSeverity, target.Severity)
	raw, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("llm narrative failed, using catalog explanation", zap.Error(err))
		return fallback
	}
	narrative := strings.TrimSpace(raw)
	if narrative == "" {
		return fallback
	}
	return narrative
}

// ListInterventions devuelve los cursos aplicados a una persona.
func (s *InterventionService) ListInterventions(ctx context.Context, personaID string) ([]domain.Intervention, error) {
	return s.interventions.ListByPersona(ctx, personaID)
}

func symptomNames(details map[string]float64) []string {
	names := make([]string, 0, len(details))
	for name := range details {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// scaleSymptoms reescala los síntomas al nuevo nivel de severidad.
func scaleSymptoms(details map[string]float64, newSeverity, oldSeverity float64) map[string]float64 {
	if len(details) == 0 {
		return details
	}
	factor := 0.0
	if oldSeverity > 0 {
		factor = newSeverity / oldSeverity
	}
	out := make(map[string]float64, len(details))
	for name, v := range details {
		out[name] = round2(v * factor)
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
