package domain

// MatchType identifies which matching tier produced a result.
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchSynonym MatchType = "synonym"
	MatchFuzzy   MatchType = "fuzzy"
	MatchNone    MatchType = "none"
)

// Confidence is the qualitative strength of a match.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceNone   Confidence = "none"
)

// MatchResult is the outcome of matching one normalized ingredient against
// one reference set. Entry is nil when MatchType is MatchNone.
type MatchResult struct {
	Ingredient string          `json:"ingredient"`
	Entry      *ReferenceEntry `json:"matchedEntry,omitempty"`
	MatchType  MatchType       `json:"matchType"`
	Confidence Confidence      `json:"confidence"`
}

// Matched reports whether any tier produced a match.
func (r MatchResult) Matched() bool {
	return r.MatchType != MatchNone && r.Entry != nil
}

// NoMatch builds the empty result for an ingredient no tier could satisfy.
func NoMatch(ingredient string) MatchResult {
	return MatchResult{
		Ingredient: ingredient,
		MatchType:  MatchNone,
		Confidence: ConfidenceNone,
	}
}
