package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"persona-sim/internal/domain"
	"persona-sim/internal/psych"
	"persona-sim/internal/service"
)

type stubPersonaRepo struct {
	items map[string]domain.Persona
}

func (r *stubPersonaRepo) Create(_ context.Context, p domain.Persona) error {
	r.items[p.ID] = p
	return nil
}

func (r *stubPersonaRepo) GetByID(_ context.Context, id string) (domain.Persona, error) {
	p, ok := r.items[id]
	if !ok {
		return domain.Persona{}, pgx.ErrNoRows
	}
	return p, nil
}

func (r *stubPersonaRepo) ListByUser(_ context.Context, userID string) ([]domain.Persona, error) {
	var out []domain.Persona
	for _, p := range r.items {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubPersonaRepo) UpdateTraits(_ context.Context, p domain.Persona) error {
	stored, ok := r.items[p.ID]
	if !ok {
		return pgx.ErrNoRows
	}
	stored.Traits = p.Traits
	r.items[p.ID] = stored
	return nil
}

func (r *stubPersonaRepo) Delete(_ context.Context, id string) error {
	delete(r.items, id)
	return nil
}

type stubDisorderRepo struct {
	items map[string]map[string]domain.DisorderScore
}

func (r *stubDisorderRepo) Upsert(_ context.Context, score domain.DisorderScore) error {
	byDisorder, ok := r.items[score.PersonaID]
	if !ok {
		byDisorder = make(map[string]domain.DisorderScore)
		r.items[score.PersonaID] = byDisorder
	}
	byDisorder[score.Disorder] = score
	return nil
}

func (r *stubDisorderRepo) ListByPersona(_ context.Context, personaID string) ([]domain.DisorderScore, error) {
	var out []domain.DisorderScore
	for _, s := range r.items[personaID] {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Disorder < out[j].Disorder })
	return out, nil
}

func (r *stubDisorderRepo) DeleteByPersona(_ context.Context, personaID string) error {
	delete(r.items, personaID)
	return nil
}

type stubExperienceRepo struct {
	items []domain.Experience
}

func (r *stubExperienceRepo) Create(_ context.Context, exp domain.Experience) error {
	r.items = append(r.items, exp)
	return nil
}

func (r *stubExperienceRepo) ListByPersona(_ context.Context, personaID string) ([]domain.Experience, error) {
	var out []domain.Experience
	for _, e := range r.items {
		if e.PersonaID == personaID {
			out = append(out, e)
		}
	}
	return out, nil
}

type stubInterventionRepo struct {
	items []domain.Intervention
}

func (r *stubInterventionRepo) Create(_ context.Context, iv domain.Intervention) error {
	r.items = append(r.items, iv)
	return nil
}

func (r *stubInterventionRepo) ListByPersona(_ context.Context, personaID string) ([]domain.Intervention, error) {
	var out []domain.Intervention
	for _, iv := range r.items {
		if iv.PersonaID == personaID {
			out = append(out, iv)
		}
	}
	return out, nil
}

type stubSnapshotRepo struct {
	items []domain.PersonaSnapshot
}

func (r *stubSnapshotRepo) Create(_ context.Context, snap domain.PersonaSnapshot) error {
	r.items = append(r.items, snap)
	return nil
}

func (r *stubSnapshotRepo) ListByPersona(_ context.Context, personaID string) ([]domain.PersonaSnapshot, error) {
	var out []domain.PersonaSnapshot
	for _, snap := range r.items {
		if snap.PersonaID == personaID {
			out = append(out, snap)
		}
	}
	return out, nil
}

func newPersonaTestRouter(t *testing.T) (*gin.Engine, *service.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	personas := &stubPersonaRepo{items: make(map[string]domain.Persona)}
	disorders := &stubDisorderRepo{items: make(map[string]map[string]domain.DisorderScore)}
	experiences := &stubExperienceRepo{}
	interventions := &stubInterventionRepo{}
	snapshots := &stubSnapshotRepo{}

	personaServ := service.NewPersonaService(logger, personas, disorders, snapshots)
	experienceServ := service.NewExperienceService(
		logger, nil, personas, experiences, disorders, snapshots,
		psych.NewAssessor(psych.DefaultTaxonomy()), psych.DefaultStageTable(),
	)
	interventionServ := service.NewInterventionService(
		logger, psych.DefaultTherapyCatalog(), nil, personas, disorders, interventions, snapshots,
	)

	jwtServ := service.NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, service.NewMemoryRefreshTokenStore())
	personaH := NewPersonaHandler(logger, personaServ, experienceServ, interventionServ)

	r := gin.New()
	group := r.Group("/personas")
	group.Use(JWTAuthMiddleware(jwtServ))
	group.POST("", personaH.CreatePersona)
	group.GET("", personaH.ListPersonas)
	group.GET("/:id", personaH.GetPersona)
	group.DELETE("/:id", personaH.DeletePersona)
	group.GET("/:id/timeline", personaH.Timeline)
	group.POST("/:id/experiences", personaH.ApplyExperience)
	group.POST("/:id/interventions", personaH.ApplyIntervention)
	return r, jwtServ
}

func bearerFor(t *testing.T, jwtServ *service.JWTService, userID string) string {
	t.Helper()
	pair, err := jwtServ.GeneratePair(context.Background(), domain.User{
		ID:        userID,
		Email:     userID + "@example.com",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}
	return "Bearer " + pair.AccessToken
}

func doAuthedJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := newJSONRequest(t, method, path, body)
	req.Header.Set("Authorization", token)
	r.ServeHTTP(rec, req)
	return rec
}

func TestPersonaHandler_LifecycleFlow(t *testing.T) {
	r, jwtServ := newPersonaTestRouter(t)
	token := bearerFor(t, jwtServ, "u1")

	rec := doAuthedJSON(t, r, http.MethodPost, "/personas", token, gin.H{
		"name":      "Marta",
		"age":       20,
		"backstory": "She was molested by a neighbor as a child.",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create persona: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}
	var created service.PersonaState
	decodeJSON(t, rec, &created)
	if created.Persona.ID == "" || len(created.Disorders) == 0 {
		t.Fatalf("expected persona with seeded disorders, got %+v", created)
	}
	id := created.Persona.ID

	rec = doAuthedJSON(t, r, http.MethodGet, "/personas/"+id, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("get persona: expected 200, got %d", rec.Code)
	}

	rec = doAuthedJSON(t, r, http.MethodPost, "/personas/"+id+"/experiences", token, gin.H{
		"description":  "Lost her father in an accident.",
		"category":     "loss",
		"severity":     "severe",
		"kind":         "trauma",
		"age_at_event": 15,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("apply experience: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doAuthedJSON(t, r, http.MethodPost, "/personas/"+id+"/interventions", token, gin.H{
		"therapy":         "EMDR",
		"target_disorder": "ptsd",
		"duration_weeks":  12,
		"adherence":       0.9,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("apply intervention: expected 201, got %d (%s)", rec.Code, rec.Body.String())
	}

	rec = doAuthedJSON(t, r, http.MethodGet, "/personas/"+id+"/timeline", token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("timeline: expected 200, got %d", rec.Code)
	}
	var timeline struct {
		Timeline []domain.PersonaSnapshot `json:"timeline"`
	}
	decodeJSON(t, rec, &timeline)
	if len(timeline.Timeline) != 3 {
		t.Fatalf("expected 3 snapshots (created, experience, intervention), got %d", len(timeline.Timeline))
	}

	rec = doAuthedJSON(t, r, http.MethodDelete, "/personas/"+id, token, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete persona: expected 200, got %d", rec.Code)
	}
	rec = doAuthedJSON(t, r, http.MethodGet, "/personas/"+id, token, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestPersonaHandler_OwnershipIsEnforced(t *testing.T) {
	r, jwtServ := newPersonaTestRouter(t)
	owner := bearerFor(t, jwtServ, "u1")
	intruder := bearerFor(t, jwtServ, "u2")

	rec := doAuthedJSON(t, r, http.MethodPost, "/personas", owner, gin.H{
		"name": "Marta",
		"age":  20,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create persona: expected 201, got %d", rec.Code)
	}
	var created service.PersonaState
	decodeJSON(t, rec, &created)

	rec = doAuthedJSON(t, r, http.MethodGet, "/personas/"+created.Persona.ID, intruder, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign persona, got %d", rec.Code)
	}

	rec = doAuthedJSON(t, r, http.MethodGet, "/personas", intruder, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", rec.Code)
	}
	var list struct {
		Personas []domain.Persona `json:"personas"`
	}
	decodeJSON(t, rec, &list)
	if len(list.Personas) != 0 {
		t.Fatalf("expected empty list for other user, got %d", len(list.Personas))
	}
}

func TestPersonaHandler_RequiresToken(t *testing.T) {
	r, _ := newPersonaTestRouter(t)

	rec := httptest.NewRecorder()
	req := newJSONRequest(t, http.MethodGet, "/personas", nil)
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
}
