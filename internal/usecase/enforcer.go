package usecase

import "github.com/labelproof/backend/internal/domain"

// EnforceVerdict reconciles the verdict with the recommendation list. It
// only ever moves the verdict toward what the worst unresolved
// recommendation implies and is idempotent over an unchanged list:
//
//  1. Any critical or high recommendation forces non_compliant.
//  2. Otherwise a medium recommendation demotes compliant or
//     likely_compliant to potentially_non_compliant.
//  3. Otherwise, with only low recommendations present, non_compliant and
//     potentially_non_compliant relax to likely_compliant.
//  4. Otherwise the verdict is unchanged.
func EnforceVerdict(recommendations []domain.Recommendation, current domain.Verdict) domain.Verdict {
	var hasSevere, hasMedium, hasLow bool
	for _, rec := range recommendations {
		switch rec.Priority {
		case domain.PriorityCritical, domain.PriorityHigh:
			hasSevere = true
		case domain.PriorityMedium:
			hasMedium = true
		case domain.PriorityLow:
			hasLow = true
		}
	}

	switch {
	case hasSevere:
		return domain.VerdictNonCompliant
	case hasMedium:
		if current == domain.VerdictCompliant || current == domain.VerdictLikelyCompliant {
			return domain.VerdictPotentiallyNonCompliant
		}
	case hasLow:
		if current == domain.VerdictNonCompliant || current == domain.VerdictPotentiallyNonCompliant {
			return domain.VerdictLikelyCompliant
		}
	}

	return current
}
