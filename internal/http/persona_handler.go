package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"persona-sim/internal/psych"
	"persona-sim/internal/service"
)

// PersonaHandler mantiene dependencias para los endpoints de personas y su
// ciclo de vida clínico (experiencias, intervenciones, línea de tiempo).
type PersonaHandler struct {
	logger           *zap.Logger
	personaServ      *service.PersonaService
	experienceServ   *service.ExperienceService
	interventionServ *service.InterventionService
}

func NewPersonaHandler(
	logger *zap.Logger,
	personaServ *service.PersonaService,
	experienceServ *service.ExperienceService,
	interventionServ *service.InterventionService,
) *PersonaHandler {
	return &PersonaHandler{
		logger:           logger,
		personaServ:      personaServ,
		experienceServ:   experienceServ,
		interventionServ: interventionServ,
	}
}

// ownedPersona resuelve la persona del path y verifica que pertenezca al
// usuario autenticado. Devuelve false si ya respondió el error.
func (h *PersonaHandler) ownedPersona(c *gin.Context) (service.PersonaState, bool) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth claims"})
		return service.PersonaState{}, false
	}

	state, err := h.personaServ.GetPersona(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPersonaNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "persona not found"})
			return service.PersonaState{}, false
		}
		h.logger.Error("get persona failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load persona"})
		return service.PersonaState{}, false
	}
	if state.Persona.UserID != claims.UserID {
		// 404 y no 403: no filtramos la existencia de personas ajenas.
		c.JSON(http.StatusNotFound, gin.H{"error": "persona not found"})
		return service.PersonaState{}, false
	}
	return state, true
}

// CreatePersona maneja POST /personas.
func (h *PersonaHandler) CreatePersona(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth claims"})
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required"`
		Age       int    `json:"age" binding:"min=0"`
		Backstory string `json:"backstory"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid create persona request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	state, err := h.personaServ.CreatePersona(c.Request.Context(), service.CreatePersonaInput{
		UserID:    claims.UserID,
		Name:      req.Name,
		Age:       req.Age,
		Backstory: req.Backstory,
	})
	if err != nil {
		if errors.Is(err, psych.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("create persona failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create persona"})
		return
	}

	c.JSON(http.StatusCreated, state)
}

// GetPersona maneja GET /personas/:id.
func (h *PersonaHandler) GetPersona(c *gin.Context) {
	state, ok := h.ownedPersona(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, state)
}

// ListPersonas maneja GET /personas.
func (h *PersonaHandler) ListPersonas(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing auth claims"})
		return
	}

	personas, err := h.personaServ.ListPersonas(c.Request.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("list personas failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list personas"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"personas": personas})
}

// DeletePersona maneja DELETE /personas/:id.
func (h *PersonaHandler) DeletePersona(c *gin.Context) {
	state, ok := h.ownedPersona(c)
	if !ok {
		return
	}

	if err := h.personaServ.DeletePersona(c.Request.Context(), state.Persona.ID); err != nil {
		h.logger.Error("delete persona failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete persona"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// Timeline maneja GET /personas/:id/timeline.
func (h *PersonaHandler) Timeline(c *gin.Context) {
	state, ok := h.ownedPersona(c)
	if !ok {
		return
	}

	snapshots, err := h.personaServ.Timeline(c.Request.Context(), state.Persona.ID)
	if err != nil {
		h.logger.Error("timeline failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load timeline"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"timeline": snapshots})
}

// ApplyExperience maneja POST /personas/:id/experiences.
func (h *PersonaHandler) ApplyExperience(c *gin.Context) {
	state, ok := h.ownedPersona(c)
	if !ok {
		return
	}

	var req struct {
		Description string `json:"description" binding:"required"`
		Category    string `json:"category"`
		Severity    string `json:"severity"`
		Kind        string `json:"kind"`
		AgeAtEvent  int    `json:"age_at_event" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid experience request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.experienceServ.ApplyExperience(c.Request.Context(), state.Persona.ID, service.ApplyExperienceInput{
		Description: req.Description,
		Category:    req.Category,
		Severity:    req.Severity,
		Kind:        req.Kind,
		AgeAtEvent:  req.AgeAtEvent,
	})
	if err != nil {
		if errors.Is(err, psych.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error("apply experience failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not apply experience"})
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListExperiences maneja GET /personas/:id/experiences.
func (h *PersonaHandler) ListExperiences(c *gin.Context) {
	state, ok := h.ownedPersona(c)
	if !ok {
		return
	}

	experiences, err := h.experienceServ.ListExperiences(c.Request.Context(), state.Persona.ID)
	if err != nil {
		h.logger.Error("list experiences failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list experiences"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"experiences": experiences})
}

// ApplyIntervention maneja POST /personas/:id/interventions.
func (h *PersonaHandler) ApplyIntervention(c *gin.Context) {
	state, ok := h.ownedPersona(c)
	if !ok {
		return
	}

	var req struct {
		Therapy        string  `json:"therapy" binding:"required"`
		TargetDisorder string  `json:"target_disorder" binding:"required"`
		DurationWeeks  int     `json:"duration_weeks" binding:"min=0"`
		Adherence      float64 `json:"adherence"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid intervention request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	report, err := h.interventionServ.ApplyIntervention(c.Request.Context(), state.Persona.ID, service.ApplyInterventionInput{
		Therapy:        req.Therapy,
		TargetDisorder: req.TargetDisorder,
		DurationWeeks:  req.DurationWeeks,
		Adherence:      req.Adherence,
	})
	if err != nil {
		switch {
		case errors.Is(err, psych.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		case errors.Is(err, psych.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		default:
			h.logger.Error("apply intervention failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not apply intervention"})
			return
		}
	}
	c.JSON(http.StatusCreated, report)
}

// ListInterventions maneja GET /personas/:id/interventions.
func (h *PersonaHandler) ListInterventions(c *gin.Context) {
	state, ok := h.ownedPersona(c)
	if !ok {
		return
	}

	interventions, err := h.interventionServ.ListInterventions(c.Request.Context(), state.Persona.ID)
	if err != nil {
		h.logger.Error("list interventions failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list interventions"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"interventions": interventions})
}
