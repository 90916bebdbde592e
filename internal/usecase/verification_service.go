package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labelproof/backend/internal/domain"
	"github.com/labelproof/backend/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const monitoringCiting = "FDA guidance monitoring"

// VerificationService is the engine's sole entry point. It fans the three
// domain checks out as independent tasks gated by product category, joins
// them tolerating partial failure, merges their contributions and runs the
// verdict enforcer last, once the recommendation list is complete.
type VerificationService struct {
	gras     *GRASChecker
	ndi      *NDIChecker
	allergen *AllergenChecker
	logger   *zap.Logger
	metrics  *metrics.Metrics
	now      func() time.Time
}

func NewVerificationService(
	gras *GRASChecker,
	ndi *NDIChecker,
	allergen *AllergenChecker,
	logger *zap.Logger,
	m *metrics.Metrics,
) *VerificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VerificationService{
		gras:     gras,
		ndi:      ndi,
		allergen: allergen,
		logger:   logger,
		metrics:  m,
		now:      time.Now,
	}
}

// PostProcess merges the three domain checks with the AI draft into one
// internally consistent compliance verdict and remediation list.
func (s *VerificationService) PostProcess(
	ctx context.Context,
	draft domain.AIDraft,
	ingredients []string,
	category domain.ProductCategory,
) (*domain.FinalReport, error) {
	// A list that normalizes to nothing is as invalid as an empty one.
	ingredients = NormalizeAll(ingredients)
	if len(ingredients) == 0 {
		return nil, domain.ErrInvalidRequest
	}
	if !category.Valid() {
		return nil, domain.ErrUnknownCategory
	}

	// GRAS and NDI are mutually exclusive by category; allergen always runs.
	var grasResult, ndiResult, allergenResult *CheckResult

	g, gctx := errgroup.WithContext(ctx)

	if category.IsConventional() {
		g.Go(s.isolated(grasDomain, func() {
			r := s.gras.Check(gctx, ingredients)
			grasResult = &r
		}))
	}
	if category == domain.CategoryDietarySupplement {
		g.Go(s.isolated(ndiDomain, func() {
			r := s.ndi.Check(gctx, ingredients)
			ndiResult = &r
		}))
	}
	g.Go(s.isolated(allergenDomain, func() {
		r := s.allergen.Check(gctx, ingredients, draft.DeclaredAllergens)
		allergenResult = &r
	}))

	// Branches never return errors; a failed branch logs and contributes
	// nothing.
	_ = g.Wait()

	report := &domain.FinalReport{
		ID:          uuid.NewString(),
		GeneratedAt: s.now(),
		Category:    category,
	}

	for _, result := range []*CheckResult{grasResult, ndiResult, allergenResult} {
		if result == nil {
			continue
		}
		report.Recommendations = append(report.Recommendations, result.Recommendations...)
		report.ComplianceTable = append(report.ComplianceTable, result.Table...)
	}
	if grasResult != nil {
		report.GRAS = grasResult.Report
	}
	if ndiResult != nil {
		report.NDI = ndiResult.Report
	}
	if allergenResult != nil {
		report.Allergen = allergenResult.Report
	}

	report.Recommendations = append(report.Recommendations, domain.Recommendation{
		Priority: domain.PriorityLow,
		Text: "Continue monitoring FDA rulemaking and guidance for changes affecting " +
			"the ingredients on this label.",
		Citation: monitoringCiting,
	})

	// The enforcer must see the complete recommendation list, so it runs
	// last.
	current := draft.Verdict
	if !current.Valid() {
		current = domain.VerdictCompliant
	}
	report.Verdict = EnforceVerdict(report.Recommendations, current)

	if s.metrics != nil {
		s.metrics.ObserveVerification(string(report.Verdict))
	}
	s.logger.Info("verification completed",
		zap.String("reportId", report.ID),
		zap.String("category", string(category)),
		zap.Int("ingredients", len(ingredients)),
		zap.Int("recommendations", len(report.Recommendations)),
		zap.String("verdict", string(report.Verdict)))

	return report, nil
}

// isolated wraps one checker branch so a panic is caught at the fan-out
// boundary: the branch is logged and skipped while its siblings complete.
func (s *VerificationService) isolated(domainName string, run func()) func() error {
	return func() error {
		defer func() {
			if r := recover(); r != nil {
				if s.metrics != nil {
					s.metrics.ObserveCheckerFailure(domainName)
				}
				s.logger.Error("checker failed, continuing without its report",
					zap.String("domain", domainName),
					zap.Any("panic", r))
			}
		}()
		run()
		return nil
	}
}
