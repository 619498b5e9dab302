package psych

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func newTestAssessor(t *testing.T, opts ...AssessorOption) *Assessor {
	t.Helper()
	return NewAssessor(DefaultTaxonomy(), opts...)
}

func riskFor(t *testing.T, risks []DisorderRisk, id DisorderID) DisorderRisk {
	t.Helper()
	for _, r := range risks {
		if r.Disorder == id {
			return r
		}
	}
	t.Fatalf("disorder %q not present in %d risks", id, len(risks))
	return DisorderRisk{}
}

func TestAssessEmptyHistory(t *testing.T) {
	a := newTestAssessor(t)
	risks, err := a.Assess(nil)
	if err != nil {
		t.Fatalf("Assess(nil) error: %v", err)
	}
	if len(risks) != 0 {
		t.Fatalf("Assess(nil) = %d risks; want 0", len(risks))
	}
}

func TestAssessSingleAbuseEvent(t *testing.T) {
	a := newTestAssessor(t)
	risks, err := a.Assess([]LifeEvent{
		{ID: "ev-1", Category: CatAbuse, Severity: SeveritySevere, AgeAtEvent: 8},
	})
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}

	// abuse severo a los 8: complex_ptsd = 0.7 * 0.9 * 1.5 (ventana ≤12).
	cp := riskFor(t, risks, "complex_ptsd")
	if math.Abs(cp.Severity-0.945) > 1e-9 {
		t.Fatalf("complex_ptsd severity = %v; want 0.945", cp.Severity)
	}
	if cp.OnsetAge != 8 {
		t.Fatalf("complex_ptsd onset age = %d; want 8", cp.OnsetAge)
	}
	if len(cp.ContributingEvents) != 1 || cp.ContributingEvents[0] != "ev-1" {
		t.Fatalf("contributing events = %v; want [ev-1]", cp.ContributingEvents)
	}
	if cp.Category != CategoryTraumaStress {
		t.Fatalf("complex_ptsd category = %q; want %q", cp.Category, CategoryTraumaStress)
	}

	// ptsd no tiene ventana etaria: 0.8 * 0.9.
	ptsd := riskFor(t, risks, "ptsd")
	if math.Abs(ptsd.Severity-0.72) > 1e-9 {
		t.Fatalf("ptsd severity = %v; want 0.72", ptsd.Severity)
	}
}

func TestAssessOrderIndependent(t *testing.T) {
	a := newTestAssessor(t)
	events := []LifeEvent{
		{ID: "a", Category: CatAbuse, Severity: SeverityModerate, AgeAtEvent: 6},
		{ID: "b", Category: CatLoss, Severity: SeveritySevere, AgeAtEvent: 14},
		{ID: "c", Category: CatBullying, Severity: SeverityMild, AgeAtEvent: 10},
	}
	reversed := []LifeEvent{events[2], events[1], events[0]}

	fwd, err := a.Assess(events)
	if err != nil {
		t.Fatalf("Assess(forward) error: %v", err)
	}
	rev, err := a.Assess(reversed)
	if err != nil {
		t.Fatalf("Assess(reversed) error: %v", err)
	}

	if len(fwd) != len(rev) {
		t.Fatalf("risk counts differ: %d vs %d", len(fwd), len(rev))
	}
	for i := range fwd {
		if fwd[i].Disorder != rev[i].Disorder {
			t.Fatalf("risk %d disorder differs: %s vs %s", i, fwd[i].Disorder, rev[i].Disorder)
		}
		if math.Abs(fwd[i].Severity-rev[i].Severity) > 1e-9 {
			t.Fatalf("risk %s severity differs: %v vs %v", fwd[i].Disorder, fwd[i].Severity, rev[i].Severity)
		}
		if fwd[i].OnsetAge != rev[i].OnsetAge {
			t.Fatalf("risk %s onset differs: %d vs %d", fwd[i].Disorder, fwd[i].OnsetAge, rev[i].OnsetAge)
		}
	}
}

func TestAssessSeveritySaturatesAtOne(t *testing.T) {
	a := newTestAssessor(t)
	events := make([]LifeEvent, 0, 6)
	for i := 0; i < 6; i++ {
		events = append(events, LifeEvent{
			ID:         string(rune('a' + i)),
			Category:   CatSexualAbuse,
			Severity:   SeverityExtreme,
			AgeAtEvent: 7 + i,
		})
	}
	risks, err := a.Assess(events)
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	ptsd := riskFor(t, risks, "ptsd")
	if ptsd.Severity != 1.0 {
		t.Fatalf("ptsd severity = %v; want saturation at 1.0", ptsd.Severity)
	}
	if len(ptsd.ContributingEvents) != 6 {
		t.Fatalf("contributing events = %d; want all 6", len(ptsd.ContributingEvents))
	}
}

func TestAssessOnsetAgeIsEarliestEvent(t *testing.T) {
	a := newTestAssessor(t)
	risks, err := a.Assess([]LifeEvent{
		{ID: "late", Category: CatLoss, Severity: SeverityMild, AgeAtEvent: 30},
		{ID: "early", Category: CatLoss, Severity: SeverityMild, AgeAtEvent: 12},
	})
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	dep := riskFor(t, risks, "depression")
	if dep.OnsetAge != 12 {
		t.Fatalf("depression onset age = %d; want 12", dep.OnsetAge)
	}
}

func TestAssessUnknownCategoryContributesNothing(t *testing.T) {
	a := newTestAssessor(t)
	risks, err := a.Assess([]LifeEvent{
		{ID: "x", Category: "alien_abduction", Severity: SeverityExtreme, AgeAtEvent: 20},
	})
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	if len(risks) != 0 {
		t.Fatalf("unknown category produced %d risks; want 0", len(risks))
	}
}

func TestAssessAgeVulnerabilityWindow(t *testing.T) {
	a := newTestAssessor(t)

	// Misma pérdida con severidad severa: dentro de la ventana 13-25 el
	// trastorno por consumo de sustancias amplifica 1.4x; fuera, no.
	inside, err := a.Assess([]LifeEvent{
		{ID: "in", Category: CatLoss, Severity: SeveritySevere, AgeAtEvent: 18},
	})
	if err != nil {
		t.Fatalf("Assess(inside) error: %v", err)
	}
	outside, err := a.Assess([]LifeEvent{
		{ID: "out", Category: CatLoss, Severity: SeveritySevere, AgeAtEvent: 30},
	})
	if err != nil {
		t.Fatalf("Assess(outside) error: %v", err)
	}

	in := riskFor(t, inside, "substance_use_disorder")
	out := riskFor(t, outside, "substance_use_disorder")
	if math.Abs(in.Severity-0.3*0.9*1.4) > 1e-9 {
		t.Fatalf("inside-window severity = %v; want %v", in.Severity, 0.3*0.9*1.4)
	}
	if math.Abs(out.Severity-0.3*0.9) > 1e-9 {
		t.Fatalf("outside-window severity = %v; want %v", out.Severity, 0.3*0.9)
	}
}

func TestAssessOutputOrderDeterministic(t *testing.T) {
	a := newTestAssessor(t)
	risks, err := a.Assess([]LifeEvent{
		{ID: "ev", Category: CatDomesticViolence, Severity: SeverityModerate, AgeAtEvent: 9},
	})
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	for i := 1; i < len(risks); i++ {
		prev, cur := risks[i-1], risks[i]
		if cur.Severity > prev.Severity {
			t.Fatalf("risks not sorted by severity desc at %d: %v then %v", i, prev.Severity, cur.Severity)
		}
		if cur.Severity == prev.Severity && cur.Disorder < prev.Disorder {
			t.Fatalf("tie at severity %v not broken by id: %s then %s", cur.Severity, prev.Disorder, cur.Disorder)
		}
	}
}

func TestAssessInvalidEvents(t *testing.T) {
	a := newTestAssessor(t)
	tests := []struct {
		name  string
		event LifeEvent
	}{
		{"missing id", LifeEvent{Category: CatLoss, Severity: SeverityMild, AgeAtEvent: 5}},
		{"negative age", LifeEvent{ID: "x", Category: CatLoss, Severity: SeverityMild, AgeAtEvent: -1}},
		{"unknown severity", LifeEvent{ID: "x", Category: CatLoss, Severity: "catastrophic", AgeAtEvent: 5}},
		{"empty severity", LifeEvent{ID: "x", Category: CatLoss, AgeAtEvent: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := a.Assess([]LifeEvent{tt.event}); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("Assess error = %v; want ErrInvalidInput", err)
			}
		})
	}
}

func TestSymptomBreakdownDeterministicByDefault(t *testing.T) {
	a := newTestAssessor(t)
	first := a.SymptomBreakdown("depression", 0.6)
	second := a.SymptomBreakdown("depression", 0.6)
	if len(first) == 0 {
		t.Fatal("empty breakdown for depression")
	}
	for s, v := range first {
		if v != 0.6 {
			t.Fatalf("symptom %q = %v; want 0.6 with zero variance", s, v)
		}
		if second[s] != v {
			t.Fatalf("breakdown not deterministic for %q: %v vs %v", s, v, second[s])
		}
	}
}

func TestSymptomBreakdownWithVarianceStaysBounded(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	a := newTestAssessor(t, WithVariance(UniformVariance(r)))

	for _, overall := range []float64{0.0, 0.1, 0.5, 0.95, 1.0} {
		got := a.SymptomBreakdown("ptsd", overall)
		for s, v := range got {
			if v < 0.0 || v > 1.0 {
				t.Fatalf("symptom %q = %v out of [0,1] at overall %v", s, v, overall)
			}
		}
	}
}

func TestSymptomBreakdownUnknownDisorder(t *testing.T) {
	a := newTestAssessor(t)
	if got := a.SymptomBreakdown("no_such_disorder", 0.5); len(got) != 0 {
		t.Fatalf("breakdown for unknown disorder = %v; want empty", got)
	}
}

func TestParseSeverity(t *testing.T) {
	if s, err := ParseSeverity("  Severe "); err != nil || s != SeveritySevere {
		t.Fatalf("ParseSeverity(Severe) = %v, %v", s, err)
	}
	if _, err := ParseSeverity("lethal"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ParseSeverity(lethal) error = %v; want ErrInvalidInput", err)
	}
}

func TestWithRiskTableOverride(t *testing.T) {
	table := map[EventCategory]map[DisorderID]float64{
		CatLoss: {"depression": 1.0},
	}
	a := newTestAssessor(t, WithRiskTable(table))
	risks, err := a.Assess([]LifeEvent{
		{ID: "e", Category: CatLoss, Severity: SeverityExtreme, AgeAtEvent: 40},
	})
	if err != nil {
		t.Fatalf("Assess error: %v", err)
	}
	if len(risks) != 1 || risks[0].Disorder != "depression" {
		t.Fatalf("risks = %v; want only depression", risks)
	}
	if risks[0].Severity != 1.0 {
		t.Fatalf("depression severity = %v; want 1.0", risks[0].Severity)
	}
}
