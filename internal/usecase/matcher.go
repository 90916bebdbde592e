package usecase

import (
	"regexp"
	"strings"

	"github.com/labelproof/backend/internal/domain"
	"go.uber.org/zap"
)

// Fuzzy tier thresholds. Short tokens and short derivatives produce too
// many false positives to be worth matching.
const (
	minSignificantTokenLength = 3 // tokens must be longer than this
	minDerivativeLength       = 4 // derivatives shorter than this are skipped
)

// FuzzyStyle selects the domain-specific containment test for the fuzzy tier.
type FuzzyStyle int

const (
	// FuzzyNone disables the fuzzy tier.
	FuzzyNone FuzzyStyle = iota
	// FuzzyTokens searches significant ingredient tokens against canonical
	// names, last word first (GRAS/NDI style).
	FuzzyTokens
	// FuzzyDerivatives searches entry derivatives inside the ingredient on
	// word boundaries (allergen style).
	FuzzyDerivatives
)

// MatchConfig holds configuration for a tiered matcher.
type MatchConfig struct {
	Domain             string
	FuzzyStyle         FuzzyStyle
	EnableDebugLogging bool
}

// matchStrategy evaluates one tier. A nil result means the tier produced no
// candidate and the next tier runs.
type matchStrategy func(ingredient string, entries []domain.ReferenceEntry) *domain.MatchResult

// TieredMatcher matches a normalized ingredient against one reference set
// through an ordered list of strategies: exact, synonym, then a
// domain-specific fuzzy tier. The first tier producing a candidate wins and
// short-circuits the rest.
type TieredMatcher struct {
	domain             string
	strategies         []matchStrategy
	enableDebugLogging bool
	logger             *zap.Logger
}

// NewTieredMatcher creates a matcher for one regulatory domain.
func NewTieredMatcher(config MatchConfig, logger *zap.Logger) *TieredMatcher {
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &TieredMatcher{
		domain:             config.Domain,
		enableDebugLogging: config.EnableDebugLogging,
		logger:             logger,
	}

	m.strategies = []matchStrategy{matchExact, matchSynonym}
	switch config.FuzzyStyle {
	case FuzzyTokens:
		m.strategies = append(m.strategies, matchFuzzyTokens)
	case FuzzyDerivatives:
		m.strategies = append(m.strategies, matchFuzzyDerivatives)
	}

	return m
}

// Match runs the tiers in order against the reference entries.
func (m *TieredMatcher) Match(ingredient string, entries []domain.ReferenceEntry) domain.MatchResult {
	for _, strategy := range m.strategies {
		if result := strategy(ingredient, entries); result != nil {
			if m.enableDebugLogging {
				m.logger.Debug("ingredient matched",
					zap.String("domain", m.domain),
					zap.String("ingredient", ingredient),
					zap.String("entry", result.Entry.CanonicalName),
					zap.String("matchType", string(result.MatchType)))
			}
			return *result
		}
	}

	return domain.NoMatch(ingredient)
}

// matchExact: tier 1, case-insensitive equality against canonical names.
func matchExact(ingredient string, entries []domain.ReferenceEntry) *domain.MatchResult {
	for i := range entries {
		if strings.EqualFold(ingredient, entries[i].CanonicalName) {
			return &domain.MatchResult{
				Ingredient: ingredient,
				Entry:      &entries[i],
				MatchType:  domain.MatchExact,
				Confidence: domain.ConfidenceHigh,
			}
		}
	}
	return nil
}

// matchSynonym: tier 2, case-insensitive equality against any synonym or
// derivative. Entries are evaluated in arrival order; the first hit wins.
func matchSynonym(ingredient string, entries []domain.ReferenceEntry) *domain.MatchResult {
	for i := range entries {
		for _, synonym := range entries[i].Synonyms {
			if strings.EqualFold(ingredient, synonym) {
				return &domain.MatchResult{
					Ingredient: ingredient,
					Entry:      &entries[i],
					MatchType:  domain.MatchSynonym,
					Confidence: domain.ConfidenceHigh,
				}
			}
		}
	}
	return nil
}

// matchFuzzyTokens: tier 3, GRAS style. Significant tokens are evaluated in
// reverse order, since trailing words are typically the core ingredient
// ("modified corn starch" -> "starch" first). Among candidate entries whose
// canonical name contains the token, an entry carrying the token as a whole
// word beats one that does not, then the textually shorter (more specific)
// name wins.
func matchFuzzyTokens(ingredient string, entries []domain.ReferenceEntry) *domain.MatchResult {
	tokens := significantTokens(ingredient)

	for i := len(tokens) - 1; i >= 0; i-- {
		token := tokens[i]

		var best *domain.ReferenceEntry
		bestWholeWord := false
		for j := range entries {
			name := strings.ToLower(entries[j].CanonicalName)
			if !strings.Contains(name, token) {
				continue
			}

			wholeWord := containsWholeWord(name, token)
			switch {
			case best == nil:
				best = &entries[j]
				bestWholeWord = wholeWord
			case wholeWord && !bestWholeWord:
				best = &entries[j]
				bestWholeWord = true
			case wholeWord == bestWholeWord &&
				len(entries[j].CanonicalName) < len(best.CanonicalName):
				best = &entries[j]
			}
		}

		if best != nil {
			return &domain.MatchResult{
				Ingredient: ingredient,
				Entry:      best,
				MatchType:  domain.MatchFuzzy,
				Confidence: domain.ConfidenceMedium,
			}
		}
	}

	return nil
}

// matchFuzzyDerivatives: tier 3, allergen style. Each entry's derivatives
// are searched inside the ingredient on word boundaries; derivatives shorter
// than minDerivativeLength are skipped to suppress false positives. The
// first satisfying derivative wins.
func matchFuzzyDerivatives(ingredient string, entries []domain.ReferenceEntry) *domain.MatchResult {
	for i := range entries {
		for _, derivative := range entries[i].Synonyms {
			if len(derivative) < minDerivativeLength {
				continue
			}
			if containsWholeWord(ingredient, strings.ToLower(derivative)) {
				return &domain.MatchResult{
					Ingredient: ingredient,
					Entry:      &entries[i],
					MatchType:  domain.MatchFuzzy,
					Confidence: domain.ConfidenceMedium,
				}
			}
		}
	}
	return nil
}

// significantTokens splits a normalized ingredient into tokens longer than
// minSignificantTokenLength.
func significantTokens(ingredient string) []string {
	var tokens []string
	for _, word := range strings.Fields(ingredient) {
		if len(word) > minSignificantTokenLength {
			tokens = append(tokens, word)
		}
	}
	return tokens
}

// containsWholeWord reports whether needle occurs in haystack bounded by
// word boundaries.
func containsWholeWord(haystack, needle string) bool {
	pattern, err := regexp.Compile(`\b` + regexp.QuoteMeta(needle) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(haystack)
}
