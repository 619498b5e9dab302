package service

import (
	"context"
	"encoding/json"
	"fmt"
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
 Servicio de experiencias
========================
*/

// ExperienceService registra eventos de vida y recalcula el estado
// sintomático de la persona. La clasificación de texto libre intenta el LLM
// primero y cae al clasificador determinista si no hay cliente o falla.
type ExperienceService struct {
	logger      *zap.Logger
	llmClient   llm.LLMClient
	personas    repository.PersonaRepository
	experiences repository.ExperienceRepository
	disorders   repository.DisorderScoreRepository
	snapshots   repository.SnapshotRepository
	assessor    *psych.Assessor
	stages      *psych.StageTable
}

func NewExperienceService(
	logger *zap.Logger,
	llmClient llm.LLMClient,
	personas repository.PersonaRepository,
	experiences repository.ExperienceRepository,
	disorders repository.DisorderScoreRepository,
	snapshots repository.SnapshotRepository,
	assessor *psych.Assessor,
	stages *psych.StageTable,
) *ExperienceService {
	return &ExperienceService{
		logger:      logger,
		llmClient:   llmClient,
		personas:    personas,
		experiences: experiences,
		disorders:   disorders,
		snapshots:   snapshots,
		assessor:    assessor,
		stages:      stages,
	}
}

type ApplyExperienceInput struct {
	Description string
	Category    string
	Severity    string
	Kind        string
	AgeAtEvent  int
}

// ExperienceReport es el resultado de aplicar una experiencia: el evento
// clasificado, el estado sintomático recalculado y el contexto evolutivo.
type ExperienceReport struct {
	Experience   domain.Experience      `json:"experience"`
	Disorders    []domain.DisorderScore `json:"disorders"`
	StageContext string                 `json:"stage_context,omitempty"`
}

// ApplyExperience clasifica el evento, lo persiste y recalcula el fold
// completo de trastornos sobre toda la historia de la persona.
func (s *ExperienceService) ApplyExperience(ctx context.Context, personaID string, input ApplyExperienceInput) (ExperienceReport, error) {
	persona, err := s.personas.GetByID(ctx, personaID)
	if err != nil {
		return ExperienceReport{}, err
	}
	if input.AgeAtEvent < 0 || input.AgeAtEvent > persona.Age {
		return ExperienceReport{}, fmt.Errorf("%w: age_at_event %d outside [0, %d]", psych.ErrInvalidInput, input.AgeAtEvent, persona.Age)
	}

	cls, err := s.classify(ctx, input)
	if err != nil {
		return ExperienceReport{}, err
	}

	now := time.Now().UTC()
	exp := domain.Experience{
		ID:          uuid.NewString(),
		PersonaID:   personaID,
		Description: input.Description,
		Category:    cls.Category,
		Severity:    cls.Severity,
		Kind:        cls.Kind,
		AgeAtEvent:  input.AgeAtEvent,
		CreatedAt:   now,
	}
	if err := s.experiences.Create(ctx, exp); err != nil {
		return ExperienceReport{}, fmt.Errorf("create experience: %w", err)
	}

	scores, err := s.recomputeDisorders(ctx, persona, now)
	if err != nil {
		return ExperienceReport{}, err
	}

	snap := domain.PersonaSnapshot{
		ID:        uuid.NewString(),
		PersonaID: persona.ID,
		Reason:    domain.SnapshotReasonExperience,
		Traits:    persona.Traits,
		Disorders: scores,
		TakenAt:   now,
	}
	if err := s.snapshots.Create(ctx, snap); err != nil {
		return ExperienceReport{}, fmt.Errorf("snapshot: %w", err)
	}

	s.logger.Info("experience applied",
		zap.String("persona_id", persona.ID),
		zap.String("category", exp.Category),
		zap.String("severity", exp.Severity),
		zap.Int("age_at_event", exp.AgeAtEvent),
		zap.Int("disorders", len(scores)),
	)

	return ExperienceReport{
		Experience:   exp,
		Disorders:    scores,
		StageContext: stageContextFor(s.stages, exp.AgeAtEvent, psych.EventKind(exp.Kind)),
	}, nil
}

// ListExperiences devuelve la historia de eventos de una persona.
func (s *ExperienceService) ListExperiences(ctx context.Context, personaID string) ([]domain.Experience, error) {
	return s.experiences.ListByPersona(ctx, personaID)
}

// classify resuelve categoría/severidad/signo del input: campos explícitos
// primero, después LLM, después keywords.
func (s *ExperienceService) classify(ctx context.Context, input ApplyExperienceInput) (experienceClass, error) {
	if input.Category != "" && input.Severity != "" {
		return normalizeClass(experienceClass{
			Category: input.Category,
			Severity: input.Severity,
			Kind:     input.Kind,
		})
	}

	if s.llmClient != nil {
		if cls, err := s.classifyWithLLM(ctx, input); err == nil {
			return cls, nil
		} else {
			s.logger.Warn("llm classification failed, using keyword fallback", zap.Error(err))
		}
	}

	return classifyDeterministic(input.Description), nil
}

func (s *ExperienceService) classifyWithLLM(ctx context.Context, input ApplyExperienceInput) (experienceClass, error) {
	stageCtx := stageContextFor(s.stages, input.AgeAtEvent, psych.ParseEventKind(input.Kind))
	prompt := buildClassifierPrompt(input.Description, input.AgeAtEvent, stageCtx)

	raw, err := s.llmClient.Generate(ctx, prompt)
	if err != nil {
		return experienceClass{}, fmt.Errorf("llm generate: %w", err)
	}

	body := extractFirstJSONObject(cleanLLMJSONResponse(raw))
	if body == "" {
		return experienceClass{}, fmt.Errorf("no json object in llm response")
	}
	var cls experienceClass
	if err := json.Unmarshal([]byte(body), &cls); err != nil {
		return experienceClass{}, fmt.Errorf("parse llm response: %w", err)
	}
	return normalizeClass(cls)
}

// recomputeDisorders reconstruye el estado sintomático desde cero: fold de
// toda la historia de eventos más las semillas del backstory, resolviendo
// duplicados por severidad máxima.
func (s *ExperienceService) recomputeDisorders(ctx context.Context, persona domain.Persona, now time.Time) ([]domain.DisorderScore, error) {
	history, err := s.experiences.ListByPersona(ctx, persona.ID)
	if err != nil {
		return nil, err
	}

	events := make([]psych.LifeEvent, 0, len(history))
	for _, e := range history {
		events = append(events, psych.LifeEvent{
			ID:         e.ID,
			Category:   psych.EventCategory(e.Category),
			Severity:   psych.SeverityLevel(e.Severity),
			AgeAtEvent: e.AgeAtEvent,
		})
	}

	risks, err := s.assessor.Assess(events)
	if err != nil {
		return nil, fmt.Errorf("assess history: %w", err)
	}

	seeds := psych.DeduplicateSeeds(psych.AnalyzeBackstory(persona.Backstory, persona.Age))
	bySeed := make(map[string]psych.DisorderSeed, len(seeds))
	for _, seed := range seeds {
		bySeed[string(seed.Disorder)] = seed
	}

	var scores []domain.DisorderScore
	seen := make(map[string]struct{}, len(risks))
	for _, risk := range risks {
		score := domain.DisorderScore{
			ID:             uuid.NewString(),
			PersonaID:      persona.ID,
			Disorder:       string(risk.Disorder),
			Category:       risk.Category,
			Severity:       risk.Severity,
			OnsetAge:       risk.OnsetAge,
			Source:         domain.DisorderSourceAssessment,
			SymptomDetails: risk.Symptoms,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		// La semilla del backstory gana si es más severa.
		if seed, ok := bySeed[score.Disorder]; ok && seed.Severity > score.Severity {
			score.Severity = seed.Severity
			score.Source = domain.DisorderSourceBackstory
			score.SymptomDetails = seed.SymptomDetails
			if seed.OnsetAge < score.OnsetAge {
				score.OnsetAge = seed.OnsetAge
			}
		}
		seen[score.Disorder] = struct{}{}
		scores = append(scores, score)
	}

	for _, seed := range seeds {
		if _, ok := seen[string(seed.Disorder)]; ok {
			continue
		}
		scores = append(scores, domain.DisorderScore{
			ID:             uuid.NewString(),
			PersonaID:      persona.ID,
			Disorder:       string(seed.Disorder),
			Category:       seed.Category,
			Severity:       seed.Severity,
			OnsetAge:       seed.OnsetAge,
			Source:         domain.DisorderSourceBackstory,
			SymptomDetails: seed.SymptomDetails,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	for _, score := range scores {
		if err := s.disorders.Upsert(ctx, score); err != nil {
			return nil, fmt.Errorf("upsert disorder %s: %w", score.Disorder, err)
		}
	}
	return scores, nil
}
