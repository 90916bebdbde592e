package usecase

import (
	"context"
	"testing"

	"github.com/labelproof/backend/internal/domain"
)

// stubEntries is a fixed EntryProvider for checker tests.
type stubEntries struct {
	entries []domain.ReferenceEntry
}

func (s stubEntries) Get(ctx context.Context) []domain.ReferenceEntry {
	return s.entries
}

// panickingEntries simulates an upstream failure escaping a checker.
type panickingEntries struct{}

func (panickingEntries) Get(ctx context.Context) []domain.ReferenceEntry {
	panic("reference store exploded")
}

func newGRASChecker(entries []domain.ReferenceEntry) *GRASChecker {
	matcher := NewTieredMatcher(MatchConfig{Domain: "GRAS", FuzzyStyle: FuzzyTokens}, nil)
	return NewGRASChecker(stubEntries{entries}, matcher, nil)
}

func TestGRASCheckerMatched(t *testing.T) {
	checker := newGRASChecker([]domain.ReferenceEntry{
		{CanonicalName: "Ascorbic acid", Synonyms: []string{"vitamin c"}, CASNumber: "50-81-7"},
	})

	result := checker.Check(context.Background(), []string{"Vitamin C (95%)"})

	if result.Report.Matched != 1 {
		t.Errorf("Matched = %d, want 1", result.Report.Matched)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("Recommendations = %d, want 0 for a matched ingredient", len(result.Recommendations))
	}
	if len(result.Table) != 1 || result.Table[0].Status != domain.StatusCompliant {
		t.Errorf("Table = %+v, want one Compliant row", result.Table)
	}
}

func TestGRASCheckerUnmatched(t *testing.T) {
	checker := newGRASChecker([]domain.ReferenceEntry{
		{CanonicalName: "Ascorbic acid"},
	})

	result := checker.Check(context.Background(), []string{"unobtainium extract"})

	// Absence from the GRAS lists is never a violation on its own.
	if result.Report.Unmatched != 1 {
		t.Errorf("Unmatched = %d, want 1", result.Report.Unmatched)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("Recommendations = %d, want exactly 1", len(result.Recommendations))
	}
	rec := result.Recommendations[0]
	if rec.Priority != domain.PriorityMedium {
		t.Errorf("Priority = %s, want medium (never critical or high)", rec.Priority)
	}
	if rec.Citation != grasSelfAffirmCiting {
		t.Errorf("Citation = %s, want %s", rec.Citation, grasSelfAffirmCiting)
	}
	if len(result.Table) != 1 || result.Table[0].Status != domain.StatusRequiresVerification {
		t.Errorf("Table = %+v, want one Requires Verification row", result.Table)
	}
}

func TestGRASCheckerSkipsEmptyIngredients(t *testing.T) {
	checker := newGRASChecker(nil)

	result := checker.Check(context.Background(), []string{"  ", "(annotation only)"})

	if result.Report.Checked != 0 {
		t.Errorf("Checked = %d, want 0", result.Report.Checked)
	}
}

func newNDIChecker(notified, grandfathered []domain.ReferenceEntry) *NDIChecker {
	matcher := NewTieredMatcher(MatchConfig{Domain: "NDI", FuzzyStyle: FuzzyTokens}, nil)
	return NewNDIChecker(stubEntries{notified}, stubEntries{grandfathered}, matcher, nil)
}

func TestNDICheckerNotified(t *testing.T) {
	checker := newNDIChecker(
		[]domain.ReferenceEntry{{CanonicalName: "Nicotinamide riboside", NoticeNumber: "NDI 882"}},
		nil,
	)

	result := checker.Check(context.Background(), []string{"Nicotinamide Riboside"})

	if result.Report.Matched != 1 {
		t.Errorf("Matched = %d, want 1", result.Report.Matched)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("Recommendations = %d, want 0", len(result.Recommendations))
	}
	if len(result.Table) != 1 || result.Table[0].Detail != "NDI notification NDI 882" {
		t.Errorf("Table = %+v, want notification number cited", result.Table)
	}
}

func TestNDICheckerGrandfathered(t *testing.T) {
	checker := newNDIChecker(
		[]domain.ReferenceEntry{{CanonicalName: "Nicotinamide riboside", NoticeNumber: "NDI 882"}},
		[]domain.ReferenceEntry{{CanonicalName: "Ginseng root", Synonyms: []string{"panax ginseng"}}},
	)

	result := checker.Check(context.Background(), []string{"Panax Ginseng"})

	// Present only in the grandfather list: compliant with zero added
	// recommendations.
	if result.Report.Matched != 1 {
		t.Errorf("Matched = %d, want 1", result.Report.Matched)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("Recommendations = %d, want 0", len(result.Recommendations))
	}
	if len(result.Table) != 1 || result.Table[0].Status != domain.StatusCompliant {
		t.Errorf("Table = %+v, want one Compliant row", result.Table)
	}
}

func TestNDICheckerUnmatched(t *testing.T) {
	checker := newNDIChecker(nil, nil)

	result := checker.Check(context.Background(), []string{"novel peptide blend"})

	if len(result.Recommendations) != 1 {
		t.Fatalf("Recommendations = %d, want 1", len(result.Recommendations))
	}
	if result.Recommendations[0].Priority != domain.PriorityMedium {
		t.Errorf("Priority = %s, want medium", result.Recommendations[0].Priority)
	}
}

func majorAllergens() []domain.ReferenceEntry {
	return []domain.ReferenceEntry{
		{CanonicalName: "Milk", Synonyms: []string{"casein", "whey", "butter"}},
		{CanonicalName: "Tree nuts", Synonyms: []string{"almond", "walnut", "jelly"}},
		{CanonicalName: "Wheat", Synonyms: []string{"gluten", "semolina"}},
	}
}

func newAllergenChecker(entries []domain.ReferenceEntry) *AllergenChecker {
	matcher := NewTieredMatcher(MatchConfig{Domain: "Allergen", FuzzyStyle: FuzzyDerivatives}, nil)
	return NewAllergenChecker(stubEntries{entries}, matcher, nil)
}

func TestAllergenCheckerUndeclared(t *testing.T) {
	checker := newAllergenChecker(majorAllergens())

	result := checker.Check(context.Background(), []string{"whey protein concentrate"}, nil)

	if result.Report.Matched != 1 {
		t.Errorf("Matched = %d, want 1", result.Report.Matched)
	}
	if len(result.Recommendations) != 1 {
		t.Fatalf("Recommendations = %d, want 1", len(result.Recommendations))
	}
	rec := result.Recommendations[0]
	if rec.Priority != domain.PriorityHigh {
		t.Errorf("Priority = %s, want high for undeclared allergen", rec.Priority)
	}
	if rec.Citation != falcpaCiting {
		t.Errorf("Citation = %s, want %s", rec.Citation, falcpaCiting)
	}
}

func TestAllergenCheckerDeclared(t *testing.T) {
	checker := newAllergenChecker(majorAllergens())

	result := checker.Check(context.Background(), []string{"whey protein concentrate"}, []string{"Milk"})

	if len(result.Recommendations) != 0 {
		t.Errorf("Recommendations = %d, want 0 for declared allergen", len(result.Recommendations))
	}
	if len(result.Table) != 1 || result.Table[0].Status != domain.StatusDeclared {
		t.Errorf("Table = %+v, want one Declared row", result.Table)
	}
}

func TestAllergenCheckerFalsePositiveException(t *testing.T) {
	checker := newAllergenChecker(majorAllergens())

	// "royal jelly" must never be treated as a tree-nut "jelly" derivative.
	result := checker.Check(context.Background(), []string{"Royal Jelly"}, nil)

	if result.Report.Matched != 0 {
		t.Errorf("Matched = %d, want 0", result.Report.Matched)
	}
	if len(result.Recommendations) != 0 {
		t.Errorf("Recommendations = %d, want 0", len(result.Recommendations))
	}
	if len(result.Table) != 0 {
		t.Errorf("Table = %+v, want empty", result.Table)
	}
}

func TestAllergenCheckerMultipleAllergensPerIngredient(t *testing.T) {
	checker := newAllergenChecker(majorAllergens())

	// One ingredient can imply several distinct allergens.
	result := checker.Check(context.Background(), []string{"almond butter with gluten"}, nil)

	if len(result.Report.Results) != 3 {
		t.Fatalf("Results = %d, want 3 (milk, tree nuts, wheat)", len(result.Report.Results))
	}
	if len(result.Recommendations) != 3 {
		t.Errorf("Recommendations = %d, want 3", len(result.Recommendations))
	}
}

func TestAllergenCheckerNoDuplicateRecommendationPerAllergen(t *testing.T) {
	checker := newAllergenChecker(majorAllergens())

	result := checker.Check(context.Background(), []string{"whey powder", "sweet cream butter"}, nil)

	// Both ingredients imply milk; one recommendation is enough.
	if len(result.Recommendations) != 1 {
		t.Errorf("Recommendations = %d, want 1 for the same allergen", len(result.Recommendations))
	}
	if len(result.Table) != 2 {
		t.Errorf("Table = %d rows, want 2", len(result.Table))
	}
}
