package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"persona-sim/internal/psych"
)

// ReferenceHandler expone el material clínico de solo lectura: taxonomía de
// trastornos, catálogo de terapias y etapas de desarrollo.
type ReferenceHandler struct {
	taxonomy *psych.Taxonomy
	catalog  *psych.TherapyCatalog
	stages   *psych.StageTable
}

func NewReferenceHandler(taxonomy *psych.Taxonomy, catalog *psych.TherapyCatalog, stages *psych.StageTable) *ReferenceHandler {
	return &ReferenceHandler{
		taxonomy: taxonomy,
		catalog:  catalog,
		stages:   stages,
	}
}

// ListDisorders maneja GET /reference/disorders. Acepta ?category= para
// filtrar.
func (h *ReferenceHandler) ListDisorders(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, gin.H{"disorders": h.taxonomy.ByCategory(category)})
		return
	}

	disorders := make([]psych.Disorder, 0, len(h.taxonomy.IDs()))
	for _, id := range h.taxonomy.IDs() {
		if d, err := h.taxonomy.Get(id); err == nil {
			disorders = append(disorders, d)
		}
	}
	c.JSON(http.StatusOK, gin.H{"disorders": disorders})
}

// GetDisorder maneja GET /reference/disorders/:id.
func (h *ReferenceHandler) GetDisorder(c *gin.Context) {
	d, err := h.taxonomy.Get(psych.DisorderID(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "disorder not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"disorder": d})
}

// ListTherapies maneja GET /reference/therapies. Acepta ?symptom= para
// filtrar por lo que tratan.
func (h *ReferenceHandler) ListTherapies(c *gin.Context) {
	ids := h.catalog.IDs()
	if symptom := c.Query("symptom"); symptom != "" {
		ids = h.catalog.TherapiesForSymptom(symptom)
	}

	therapies := make([]psych.Therapy, 0, len(ids))
	for _, id := range ids {
		if t, err := h.catalog.Get(string(id)); err == nil {
			therapies = append(therapies, t)
		}
	}
	c.JSON(http.StatusOK, gin.H{"therapies": therapies})
}

// GetTherapy maneja GET /reference/therapies/:id.
func (h *ReferenceHandler) GetTherapy(c *gin.Context) {
	t, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "therapy not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"therapy": t})
}

// MatchTherapy maneja GET /reference/therapies/:id/match?symptoms=a,b y
// devuelve el score de afinidad con su explicación.
func (h *ReferenceHandler) MatchTherapy(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.catalog.Get(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "therapy not found"})
		return
	}

	var symptoms []string
	for _, s := range strings.Split(c.Query("symptoms"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			symptoms = append(symptoms, s)
		}
	}
	if len(symptoms) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "symptoms query parameter is required"})
		return
	}

	score := h.catalog.MatchScore(id, symptoms)
	c.JSON(http.StatusOK, gin.H{
		"therapy":     id,
		"symptoms":    symptoms,
		"match_score": score,
		"explanation": h.catalog.ExplainMatch(id, symptoms, score),
	})
}

// GetStage maneja GET /reference/stages/:age — clasifica la edad y devuelve
// etapa, capacidad de afrontamiento y terapias recomendadas.
func (h *ReferenceHandler) GetStage(c *gin.Context) {
	age, err := strconv.Atoi(c.Param("age"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "age must be an integer"})
		return
	}

	stage, err := h.stages.Classify(age)
	if err != nil {
		if errors.Is(err, psych.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not classify age"})
		return
	}

	coping, _ := h.stages.CopingCapacity(age)
	therapies, _ := h.stages.RecommendedTherapies(age)
	c.JSON(http.StatusOK, gin.H{
		"stage":                 stage,
		"coping_capacity":       coping,
		"recommended_therapies": therapies,
	})
}
