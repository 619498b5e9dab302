package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"persona-sim/internal/domain"
	"persona-sim/internal/psych"
	"persona-sim/internal/repository"
)

/*
========================
 Servicio de personas
========================
*/

// PersonaService coordina la creación y consulta de personas simuladas:
// deriva el baseline de personalidad desde el backstory y siembra el estado
// sintomático inicial.
type PersonaService struct {
	logger    *zap.Logger
	personas  repository.PersonaRepository
	disorders repository.DisorderScoreRepository
	snapshots repository.SnapshotRepository
}

func NewPersonaService(
	logger *zap.Logger,
	personas repository.PersonaRepository,
	disorders repository.DisorderScoreRepository,
	snapshots repository.SnapshotRepository,
) *PersonaService {
	return &PersonaService{
		logger:    logger,
		personas:  personas,
		disorders: disorders,
		snapshots: snapshots,
	}
}

var ErrPersonaNotFound = errors.New("persona not found")

type CreatePersonaInput struct {
	UserID    string
	Name      string
	Age       int
	Backstory string
}

// PersonaState agrupa la persona con su estado sintomático actual.
type PersonaState struct {
	Persona   domain.Persona         `json:"persona"`
	Disorders []domain.DisorderScore `json:"disorders"`
}

// CreatePersona deriva señales y baseline del backstory, siembra trastornos
// iniciales y deja el primer snapshot de la línea de tiempo.
func (s *PersonaService) CreatePersona(ctx context.Context, input CreatePersonaInput) (PersonaState, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return PersonaState{}, fmt.Errorf("%w: persona without name", psych.ErrInvalidInput)
	}
	if input.Age < 0 {
		return PersonaState{}, fmt.Errorf("%w: negative age %d", psych.ErrInvalidInput, input.Age)
	}

	signals := psych.ExtractSignals(input.Backstory)
	traits := psych.DeriveBaseline(signals)

	now := time.Now().UTC()
	persona := domain.Persona{
		ID:        uuid.NewString(),
		UserID:    input.UserID,
		Name:      name,
		Age:       input.Age,
		Backstory: input.Backstory,
		Traits:    traits,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.personas.Create(ctx, persona); err != nil {
		return PersonaState{}, fmt.Errorf("create persona: %w", err)
	}

	seeds := psych.DeduplicateSeeds(psych.AnalyzeBackstory(input.Backstory, input.Age))
	scores := make([]domain.DisorderScore, 0, len(seeds))
	for _, seed := range seeds {
		score := domain.DisorderScore{
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
		}
		if err := s.disorders.Upsert(ctx, score); err != nil {
			s.logger.Warn("disorder seed upsert failed",
				zap.Error(err),
				zap.String("persona_id", persona.ID),
				zap.String("disorder", score.Disorder),
			)
			return PersonaState{}, fmt.Errorf("seed disorder %s: %w", score.Disorder, err)
		}
		scores = append(scores, score)
	}

	if err := s.takeSnapshot(ctx, persona, scores, domain.SnapshotReasonCreated, now); err != nil {
		return PersonaState{}, err
	}

	s.logger.Info("persona created",
		zap.String("persona_id", persona.ID),
		zap.Int("age", persona.Age),
		zap.Int("seeded_disorders", len(scores)),
	)
	return PersonaState{Persona: persona, Disorders: scores}, nil
}

// GetPersona devuelve la persona con su estado sintomático actual.
func (s *PersonaService) GetPersona(ctx context.Context, id string) (PersonaState, error) {
	persona, err := s.personas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return PersonaState{}, ErrPersonaNotFound
		}
		return PersonaState{}, err
	}
	scores, err := s.disorders.ListByPersona(ctx, id)
	if err != nil {
		return PersonaState{}, err
	}
	return PersonaState{Persona: persona, Disorders: scores}, nil
}

// ListPersonas devuelve todas las personas de un usuario.
func (s *PersonaService) ListPersonas(ctx context.Context, userID string) ([]domain.Persona, error) {
	return s.personas.ListByUser(ctx, userID)
}

// DeletePersona borra la persona y su estado sintomático.
func (s *PersonaService) DeletePersona(ctx context.Context, id string) error {
	if err := s.disorders.DeleteByPersona(ctx, id); err != nil {
		return err
	}
	return s.personas.Delete(ctx, id)
}

// Timeline devuelve la línea de tiempo clínica de la persona.
func (s *PersonaService) Timeline(ctx context.Context, personaID string) ([]domain.PersonaSnapshot, error) {
	return s.snapshots.ListByPersona(ctx, personaID)
}

func (s *PersonaService) takeSnapshot(ctx context.Context, persona domain.Persona, scores []domain.DisorderScore, reason string, at time.Time) error {
	snap := domain.PersonaSnapshot{
		ID:        uuid.NewString(),
		PersonaID: persona.ID,
		Reason:    reason,
		Traits:    persona.Traits,
		Disorders: scores,
		TakenAt:   at,
	}
	if err := s.snapshots.Create(ctx, snap); err != nil {
		return fmt.Errorf("snapshot %s: %w", reason, err)
	}
	return nil
}
