package domain

import "time"

// Priority ranks how urgently a recommendation must be addressed.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Verdict is the overall compliance outcome for a label.
type Verdict string

const (
	VerdictCompliant               Verdict = "compliant"
	VerdictLikelyCompliant         Verdict = "likely_compliant"
	VerdictPotentiallyNonCompliant Verdict = "potentially_non_compliant"
	VerdictNonCompliant            Verdict = "non_compliant"
)

// Valid reports whether the verdict is one of the supported values.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictCompliant, VerdictLikelyCompliant,
		VerdictPotentiallyNonCompliant, VerdictNonCompliant:
		return true
	}
	return false
}

// Recommendation is one remediation item. The list is append-only during
// aggregation.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Text     string   `json:"text"`
	Citation string   `json:"regulationCitation,omitempty"`
}

// Compliance table row statuses.
const (
	StatusCompliant            = "Compliant"
	StatusRequiresVerification = "Requires Verification"
	StatusDeclared             = "Declared"
	StatusUndeclared           = "Undeclared"
)

// ComplianceRow is one line of the per-ingredient compliance table.
type ComplianceRow struct {
	Domain     string `json:"domain"`
	Ingredient string `json:"ingredient"`
	Status     string `json:"status"`
	Detail     string `json:"detail,omitempty"`
}

// DomainReport aggregates the match results for one regulatory domain.
// Reports are created fresh per request and never persisted by the engine.
type DomainReport struct {
	Domain    string        `json:"domain"`
	Checked   int           `json:"checked"`
	Matched   int           `json:"matched"`
	Unmatched int           `json:"unmatched"`
	Results   []MatchResult `json:"results"`
}

// AIDraft is the subset of the AI-generated draft analysis the engine reads.
// The full draft schema is owned by the draft producer.
type AIDraft struct {
	Verdict           Verdict  `json:"verdict,omitempty"`
	DeclaredAllergens []string `json:"declaredAllergens,omitempty"`
	Summary           string   `json:"summary,omitempty"`
}

// FinalReport is the engine's verdict together with everything that
// justifies it. A domain report is nil when that check did not apply to the
// product category or its checker failed.
type FinalReport struct {
	ID              string           `json:"id"`
	GeneratedAt     time.Time        `json:"generatedAt"`
	Category        ProductCategory  `json:"productCategory"`
	GRAS            *DomainReport    `json:"grasReport,omitempty"`
	NDI             *DomainReport    `json:"ndiReport,omitempty"`
	Allergen        *DomainReport    `json:"allergenReport,omitempty"`
	Recommendations []Recommendation `json:"recommendations"`
	ComplianceTable []ComplianceRow  `json:"complianceTable"`
	Verdict         Verdict          `json:"verdict"`
}
