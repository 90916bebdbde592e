package usecase

import (
	"context"
	"fmt"

	"github.com/labelproof/backend/internal/domain"
	"go.uber.org/zap"
)

const (
	grasDomain           = "GRAS"
	grasSelfAffirmCiting = "21 CFR 170.30"
)

// GRASChecker verifies ingredients against the generally-recognized-as-safe
// determination lists. It applies only to conventional food and beverage
// categories; dietary supplements follow the NDI pathway instead.
//
// An unmatched ingredient is never a violation on its own: absence from the
// GRAS lists maps to a medium-priority verification recommendation, not a
// non-compliant finding.
type GRASChecker struct {
	entries domain.EntryProvider
	matcher *TieredMatcher
	logger  *zap.Logger
}

func NewGRASChecker(entries domain.EntryProvider, matcher *TieredMatcher, logger *zap.Logger) *GRASChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GRASChecker{entries: entries, matcher: matcher, logger: logger}
}

// CheckResult carries one checker's contribution to the final report.
type CheckResult struct {
	Report          *domain.DomainReport
	Recommendations []domain.Recommendation
	Table           []domain.ComplianceRow
}

// Check evaluates each ingredient against the GRAS reference set.
func (c *GRASChecker) Check(ctx context.Context, ingredients []string) CheckResult {
	entries := c.entries.Get(ctx)

	report := &domain.DomainReport{Domain: grasDomain}
	result := CheckResult{Report: report}

	for _, raw := range ingredients {
		ingredient := Normalize(raw)
		if ingredient == "" {
			continue
		}
		report.Checked++

		match := c.matcher.Match(ingredient, entries)
		report.Results = append(report.Results, match)

		if match.Matched() {
			report.Matched++
			detail := match.Entry.CanonicalName
			if match.Entry.CASNumber != "" {
				detail = fmt.Sprintf("%s (CAS %s)", detail, match.Entry.CASNumber)
			}
			result.Table = append(result.Table, domain.ComplianceRow{
				Domain:     grasDomain,
				Ingredient: ingredient,
				Status:     domain.StatusCompliant,
				Detail:     detail,
			})
			continue
		}

		report.Unmatched++
		result.Table = append(result.Table, domain.ComplianceRow{
			Domain:     grasDomain,
			Ingredient: ingredient,
			Status:     domain.StatusRequiresVerification,
			Detail:     "not found in GRAS determination lists",
		})
		result.Recommendations = append(result.Recommendations, domain.Recommendation{
			Priority: domain.PriorityMedium,
			Text: fmt.Sprintf("Ingredient %q was not found in the GRAS determination lists. "+
				"Verify its regulatory status or document a GRAS self-affirmation.", ingredient),
			Citation: grasSelfAffirmCiting,
		})
	}

	c.logger.Info("GRAS check completed",
		zap.Int("checked", report.Checked),
		zap.Int("matched", report.Matched),
		zap.Int("unmatched", report.Unmatched))

	return result
}
