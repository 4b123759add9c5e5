package scan

import "testing"

func TestCategoryTableShape(t *testing.T) {
	t.Parallel()

	expected := []string{
		"X-Ray",
		"CT Scan",
		"MRI",
		"Ultrasound",
		"PET Scan",
		"Mammogram",
		"DEXA Scan",
		"Fluoroscopy",
	}

	names := ScanTypes()
	if len(names) != len(expected) {
		t.Fatalf("expected %d categories, got %d", len(expected), len(names))
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("category %d: expected %q, got %q", i, name, names[i])
		}
	}
}

func TestCategoryDescriptions(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for _, name := range ScanTypes() {
		description := DescriptionFor(name)
		if description == "" {
			t.Errorf("category %q has empty description", name)
		}
		if other, ok := seen[description]; ok {
			t.Errorf("categories %q and %q share a description", name, other)
		}
		seen[description] = name
	}

	if DescriptionFor("Astrology Chart") != "" {
		t.Error("unknown category should have empty description")
	}
}

func TestRuleWeightsPositive(t *testing.T) {
	t.Parallel()

	for _, cat := range categories {
		if len(cat.Rules) == 0 {
			t.Errorf("category %q has no rules", cat.Name)
		}
		for i, rule := range cat.Rules {
			if rule.Weight <= 0 {
				t.Errorf("category %q rule %d has non-positive weight %f", cat.Name, i, rule.Weight)
			}
			if rule.Match == nil {
				t.Errorf("category %q rule %d has nil predicate", cat.Name, i)
			}
		}
	}
}

func TestXRayRulesAllFire(t *testing.T) {
	t.Parallel()

	fv := FeatureVector{
		DarkRatio:     0.4,
		Contrast:      180,
		MeanIntensity: 80,
		StdIntensity:  60,
		EdgeDensity:   0.1,
	}

	scores := scoreCategories(fv)
	if scores[0] != 6.5 {
		t.Errorf("expected X-Ray raw score 6.5 with all rules firing, got %f", scores[0])
	}
}

func TestIntervalBoundsAreStrict(t *testing.T) {
	t.Parallel()

	// dark_ratio exactly 0.3 sits on the X-Ray threshold and must not fire.
	// All other features are kept outside every X-Ray predicate.
	onBoundary := FeatureVector{
		DarkRatio:     0.3,
		Contrast:      200,
		MeanIntensity: 150,
		StdIntensity:  10,
		EdgeDensity:   0.3,
	}
	if scores := scoreCategories(onBoundary); scores[0] != 0 {
		t.Errorf("dark_ratio == 0.3 must not satisfy the strict threshold, X-Ray score %f", scores[0])
	}

	pastBoundary := onBoundary
	pastBoundary.DarkRatio = 0.31
	if scores := scoreCategories(pastBoundary); scores[0] != 3.0 {
		t.Errorf("dark_ratio 0.31 with contrast 200 should score 3.0, got %f", scores[0])
	}

	// aspect_ratio exactly 1.15 sits on the open CT interval boundary.
	ctBoundary := FeatureVector{AspectRatio: 1.15, MeanIntensity: 200, Entropy: 0, EdgeDensity: 0}
	if scores := scoreCategories(ctBoundary); scores[1] != 0 {
		t.Errorf("aspect_ratio == 1.15 must not satisfy the open interval, CT score %f", scores[1])
	}
}

func TestDarkRatioMonotonicEffectOnXRay(t *testing.T) {
	t.Parallel()

	base := FeatureVector{
		DarkRatio:     0.1,
		Contrast:      160,
		MeanIntensity: 150,
		StdIntensity:  10,
		EdgeDensity:   0.3,
	}
	shifted := base
	shifted.DarkRatio = 0.5

	baseScores := scoreCategories(base)
	shiftedScores := scoreCategories(shifted)

	gain := shiftedScores[0] - baseScores[0]
	if gain < 3.0 {
		t.Errorf("crossing the 0.3 dark_ratio threshold should add at least 3.0 to X-Ray, gained %f", gain)
	}
}
