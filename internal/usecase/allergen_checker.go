package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/labelproof/backend/internal/domain"
	"go.uber.org/zap"
)

const (
	allergenDomain = "Allergen"
	falcpaCiting   = "21 U.S.C. § 343(w)"
)

// allergenExceptions are normalized ingredient strings that superficially
// resemble allergen derivatives but do not indicate any major allergen.
// "royal jelly" must never be treated as a "jelly"-style derivative, and
// "cocoa butter" contains no dairy butter.
var allergenExceptions = map[string]bool{
	"royal jelly":     true,
	"cocoa butter":    true,
	"shea butter":     true,
	"cream of tartar": true,
	"buckwheat":       true,
	"water chestnut":  true,
	"water chestnuts": true,
}

// AllergenChecker detects major food allergens implied by label ingredients.
// It applies to every product category. Multiple distinct allergens may each
// match the same ingredient; for any single allergen the first satisfying
// tier wins.
type AllergenChecker struct {
	allergens domain.EntryProvider
	matcher   *TieredMatcher
	logger    *zap.Logger
}

func NewAllergenChecker(allergens domain.EntryProvider, matcher *TieredMatcher, logger *zap.Logger) *AllergenChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AllergenChecker{allergens: allergens, matcher: matcher, logger: logger}
}

// Check evaluates each ingredient against every major allergen. An allergen
// already listed in the draft's declared set produces a table row only; an
// undeclared allergen produces a high-priority labeling recommendation.
func (c *AllergenChecker) Check(ctx context.Context, ingredients []string, declared []string) CheckResult {
	allergens := c.allergens.Get(ctx)

	declaredSet := make(map[string]bool, len(declared))
	for _, a := range declared {
		declaredSet[strings.ToLower(strings.TrimSpace(a))] = true
	}

	report := &domain.DomainReport{Domain: allergenDomain}
	result := CheckResult{Report: report}

	// Avoid duplicate recommendations when several ingredients imply the
	// same undeclared allergen.
	flagged := make(map[string]bool)

	for _, raw := range ingredients {
		ingredient := Normalize(raw)
		if ingredient == "" {
			continue
		}
		report.Checked++

		// False-positive exception filter runs before any matching.
		if allergenExceptions[ingredient] {
			continue
		}

		matchedAny := false
		for i := range allergens {
			match := c.matcher.Match(ingredient, allergens[i:i+1])
			if !match.Matched() {
				continue
			}

			matchedAny = true
			report.Results = append(report.Results, match)

			allergen := match.Entry.CanonicalName
			if declaredSet[strings.ToLower(allergen)] {
				result.Table = append(result.Table, domain.ComplianceRow{
					Domain:     allergenDomain,
					Ingredient: ingredient,
					Status:     domain.StatusDeclared,
					Detail:     allergen,
				})
				continue
			}

			result.Table = append(result.Table, domain.ComplianceRow{
				Domain:     allergenDomain,
				Ingredient: ingredient,
				Status:     domain.StatusUndeclared,
				Detail:     allergen,
			})
			if !flagged[allergen] {
				flagged[allergen] = true
				result.Recommendations = append(result.Recommendations, domain.Recommendation{
					Priority: domain.PriorityHigh,
					Text: fmt.Sprintf("Ingredient %q indicates the major allergen %q, which the label "+
						"does not declare. Add it to the allergen statement.", ingredient, allergen),
					Citation: falcpaCiting,
				})
			}
		}

		if matchedAny {
			report.Matched++
		} else {
			report.Unmatched++
		}
	}

	c.logger.Info("allergen check completed",
		zap.Int("checked", report.Checked),
		zap.Int("detected", report.Matched),
		zap.Int("undeclared", len(result.Recommendations)))

	return result
}
