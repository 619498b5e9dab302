package psych

import (
	"errors"
	"strings"
	"testing"
)

func TestClassifyPartitionsAllAges(t *testing.T) {
	table := DefaultStageTable()

	// Sin huecos ni solapamientos: cada edad cae en exactamente una etapa.
	for age := 0; age <= 130; age++ {
		stage, err := table.Classify(age)
		if err != nil {
			t.Fatalf("Classify(%d) error: %v", age, err)
		}
		if age < stage.MinAge || (stage.MaxAge >= 0 && age > stage.MaxAge) {
			t.Fatalf("Classify(%d) = %s [%d,%d]; age outside stage range", age, stage.Name, stage.MinAge, stage.MaxAge)
		}
	}

	// Bordes exactos.
	boundaries := map[int]string{
		0: "early_childhood", 5: "early_childhood",
		6: "middle_childhood", 11: "middle_childhood",
		12: "adolescence", 18: "adolescence",
		19: "young_adult", 25: "young_adult",
		26: "adult", 120: "adult",
	}
	for age, want := range boundaries {
		stage, _ := table.Classify(age)
		if stage.Name != want {
			t.Fatalf("Classify(%d) = %s; want %s", age, stage.Name, want)
		}
	}
}

func TestClassifyNegativeAgeIsInvalid(t *testing.T) {
	table := DefaultStageTable()
	if _, err := table.Classify(-1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Classify(-1) error = %v; want ErrInvalidInput", err)
	}
	if _, err := table.ImpactMultiplier(-3, EventTrauma); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("ImpactMultiplier(-3) error = %v; want ErrInvalidInput", err)
	}
}

func TestImpactMultiplierMonotonicNonIncreasing(t *testing.T) {
	table := DefaultStageTable()

	for _, kind := range []EventKind{EventTrauma, EventPositive} {
		prev := -1.0
		for age := 0; age <= 60; age++ {
			mult, err := table.ImpactMultiplier(age, kind)
			if err != nil {
				t.Fatalf("ImpactMultiplier(%d, %s) error: %v", age, kind, err)
			}
			if prev >= 0 && mult > prev {
				t.Fatalf("multiplier increased with age: %v at %d > %v at %d (%s)", mult, age, prev, age-1, kind)
			}
			prev = mult
		}
	}
}

func TestPositiveMultiplierNeverExceedsTrauma(t *testing.T) {
	table := DefaultStageTable()
	for age := 0; age <= 60; age++ {
		trauma, _ := table.ImpactMultiplier(age, EventTrauma)
		positive, _ := table.ImpactMultiplier(age, EventPositive)
		if positive > trauma {
			t.Fatalf("positive %v > trauma %v at age %d", positive, trauma, age)
		}
	}
}

func TestParseEventKind(t *testing.T) {
	tests := []struct {
		raw  string
		want EventKind
	}{
		{"positive", EventPositive},
		{"Achievement", EventPositive},
		{"HEALING", EventPositive},
		{"trauma", EventTrauma},
		{"loss", EventTrauma},
		{"", EventTrauma},
	}
	for _, tt := range tests {
		if got := ParseEventKind(tt.raw); got != tt.want {
			t.Fatalf("ParseEventKind(%q) = %s; want %s", tt.raw, got, tt.want)
		}
	}
}

func TestCopingCapacityGrowsWithAge(t *testing.T) {
	table := DefaultStageTable()

	child, err := table.CopingCapacity(3)
	if err != nil {
		t.Fatalf("CopingCapacity(3) error: %v", err)
	}
	adult, err := table.CopingCapacity(40)
	if err != nil {
		t.Fatalf("CopingCapacity(40) error: %v", err)
	}
	if child.CognitiveProcessing >= adult.CognitiveProcessing {
		t.Fatalf("cognitive processing: child %v >= adult %v", child.CognitiveProcessing, adult.CognitiveProcessing)
	}
	if child.Agency >= adult.Agency {
		t.Fatalf("agency: child %v >= adult %v", child.Agency, adult.Agency)
	}
}

func TestRecommendedTherapiesByAge(t *testing.T) {
	table := DefaultStageTable()

	early, err := table.RecommendedTherapies(4)
	if err != nil {
		t.Fatalf("RecommendedTherapies(4) error: %v", err)
	}
	if len(early) == 0 || early[0] != "play_therapy" {
		t.Fatalf("RecommendedTherapies(4) = %v; want play_therapy first", early)
	}

	adult, _ := table.RecommendedTherapies(30)
	found := false
	for _, m := range adult {
		if m == "Somatic_Experiencing" {
			found = true
		}
	}
	if !found {
		t.Fatalf("RecommendedTherapies(30) = %v; want Somatic_Experiencing included", adult)
	}
}

func TestExplainImpactIncludesStageContext(t *testing.T) {
	table := DefaultStageTable()
	got, err := table.ExplainImpact(7, EventTrauma)
	if err != nil {
		t.Fatalf("ExplainImpact error: %v", err)
	}
	for _, want := range []string{"Age 7", "Middle Childhood", "1.5x", "Key Developmental Tasks"} {
		if !strings.Contains(got, want) {
			t.Fatalf("ExplainImpact output missing %q:\n%s", want, got)
		}
	}
}
