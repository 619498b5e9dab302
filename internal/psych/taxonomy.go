package psych

import (
	"fmt"
	"sort"
	"strings"
)

/*
========================
 Taxonomía de trastornos
========================
*/

// DisorderID identifica un trastorno del catálogo (ej: "ptsd").
type DisorderID string

// Disorder es una entrada de referencia, alineada a DSM-5-TR / ICD-11.
// Solo lectura: se carga una vez al inicio y nunca muta.
type Disorder struct {
	ID            DisorderID `json:"id"`
	Category      string     `json:"category"`
	DSMCode       string     `json:"dsm_code"`
	FullName      string     `json:"full_name"`
	Symptoms      []string   `json:"symptoms"`
	Subtypes      []string   `json:"subtypes,omitempty"`
	Comorbidities []string   `json:"common_comorbidities,omitempty"`
}

// Taxonomy es el catálogo validado de trastornos. Seguro para compartir
// entre goroutines sin locks: nunca se escribe después de construir.
type Taxonomy struct {
	byID  map[DisorderID]Disorder
	order []DisorderID
}

// NewTaxonomy valida y construye un catálogo. Reglas: cada trastorno tiene
// exactamente una categoría no vacía y síntomas no vacíos sin duplicados.
func NewTaxonomy(disorders []Disorder) (*Taxonomy, error) {
	byID := make(map[DisorderID]Disorder, len(disorders))
	order := make([]DisorderID, 0, len(disorders))

	for _, d := range disorders {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: disorder with empty id", ErrInvalidInput)
		}
		if _, dup := byID[d.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate disorder id %q", ErrInvalidInput, d.ID)
		}
		if strings.TrimSpace(d.Category) == "" {
			return nil, fmt.Errorf("%w: disorder %q without category", ErrInvalidInput, d.ID)
		}
		seen := make(map[string]struct{}, len(d.Symptoms))
		for _, s := range d.Symptoms {
			if strings.TrimSpace(s) == "" {
				return nil, fmt.Errorf("%w: disorder %q has empty symptom id", ErrInvalidInput, d.ID)
			}
			if _, dup := seen[s]; dup {
				return nil, fmt.Errorf("%w: disorder %q repeats symptom %q", ErrInvalidInput, d.ID, s)
			}
			seen[s] = struct{}{}
		}
		byID[d.ID] = d
		order = append(order, d.ID)
	}

	return &Taxonomy{byID: byID, order: order}, nil
}

// DefaultTaxonomy carga el catálogo completo del simulador. Entra en pánico
// solo si los datos embebidos están rotos, que es un bug de compilación.
func DefaultTaxonomy() *Taxonomy {
	t, err := NewTaxonomy(defaultDisorders)
	if err != nil {
		panic(err)
	}
	return t
}

// Get busca un trastorno por id. Id desconocido devuelve ErrNotFound.
func (t *Taxonomy) Get(id DisorderID) (Disorder, error) {
	d, ok := t.byID[id]
	if !ok {
		return Disorder{}, fmt.Errorf("%w: disorder %q", ErrNotFound, id)
	}
	return d, nil
}

// Has indica si el id existe en el catálogo.
func (t *Taxonomy) Has(id DisorderID) bool {
	_, ok := t.byID[id]
	return ok
}

// Symptoms devuelve los síntomas de un trastorno, o lista vacía si no existe.
func (t *Taxonomy) Symptoms(id DisorderID) []string {
	d, ok := t.byID[id]
	if !ok {
		return nil
	}
	return append([]string{}, d.Symptoms...)
}

// ByCategory devuelve los trastornos de una categoría, en orden de catálogo.
func (t *Taxonomy) ByCategory(category string) []Disorder {
	var out []Disorder
	for _, id := range t.order {
		if d := t.byID[id]; d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Categories lista las categorías únicas, ordenadas.
func (t *Taxonomy) Categories() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, id := range t.order {
		cat := t.byID[id].Category
		if _, ok := seen[cat]; ok {
			continue
		}
		seen[cat] = struct{}{}
		out = append(out, cat)
	}
	sort.Strings(out)
	return out
}

// IDs lista todos los ids en orden de catálogo.
func (t *Taxonomy) IDs() []DisorderID {
	return append([]DisorderID{}, t.order...)
}
