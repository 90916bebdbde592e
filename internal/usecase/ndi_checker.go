package usecase

import (
	"context"
	"fmt"

	"github.com/labelproof/backend/internal/domain"
	"go.uber.org/zap"
)

const (
	ndiDomain        = "NDI"
	ndiStatuteCiting = "21 U.S.C. § 350b(a)"
)

// NDIChecker verifies dietary supplement ingredients against the new
// dietary ingredient notification list, falling back to the pre-1994
// grandfather list for ingredients marketed before the statutory cutoff.
type NDIChecker struct {
	notifications domain.EntryProvider
	grandfathered domain.EntryProvider
	matcher       *TieredMatcher
	logger        *zap.Logger
}

func NewNDIChecker(notifications, grandfathered domain.EntryProvider, matcher *TieredMatcher, logger *zap.Logger) *NDIChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NDIChecker{
		notifications: notifications,
		grandfathered: grandfathered,
		matcher:       matcher,
		logger:        logger,
	}
}

// Check evaluates each ingredient against the notification list, then the
// grandfather list. Absence from both is a medium-priority verification
// item, never an automatic violation.
func (c *NDIChecker) Check(ctx context.Context, ingredients []string) CheckResult {
	notified := c.notifications.Get(ctx)
	grandfathered := c.grandfathered.Get(ctx)

	report := &domain.DomainReport{Domain: ndiDomain}
	result := CheckResult{Report: report}

	for _, raw := range ingredients {
		ingredient := Normalize(raw)
		if ingredient == "" {
			continue
		}
		report.Checked++

		match := c.matcher.Match(ingredient, notified)
		if match.Matched() {
			report.Matched++
			report.Results = append(report.Results, match)
			result.Table = append(result.Table, domain.ComplianceRow{
				Domain:     ndiDomain,
				Ingredient: ingredient,
				Status:     domain.StatusCompliant,
				Detail:     fmt.Sprintf("NDI notification %s", match.Entry.NoticeNumber),
			})
			continue
		}

		// Secondary lookup: ingredients marketed before the NDI cutoff are
		// exempt from notification.
		match = c.matcher.Match(ingredient, grandfathered)
		report.Results = append(report.Results, match)
		if match.Matched() {
			report.Matched++
			result.Table = append(result.Table, domain.ComplianceRow{
				Domain:     ndiDomain,
				Ingredient: ingredient,
				Status:     domain.StatusCompliant,
				Detail:     "pre-DSHEA grandfathered dietary ingredient",
			})
			continue
		}

		report.Unmatched++
		result.Table = append(result.Table, domain.ComplianceRow{
			Domain:     ndiDomain,
			Ingredient: ingredient,
			Status:     domain.StatusRequiresVerification,
			Detail:     "not found in NDI notification or grandfather lists",
		})
		result.Recommendations = append(result.Recommendations, domain.Recommendation{
			Priority: domain.PriorityMedium,
			Text: fmt.Sprintf("Ingredient %q requires NDI verification: it appears in neither "+
				"the NDI notification list nor the pre-1994 grandfather list.", ingredient),
			Citation: ndiStatuteCiting,
		})
	}

	c.logger.Info("NDI check completed",
		zap.Int("checked", report.Checked),
		zap.Int("matched", report.Matched),
		zap.Int("unmatched", report.Unmatched))

	return result
}
