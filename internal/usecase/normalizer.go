package usecase

import (
	"regexp"
	"strings"
)

// Package-level compiled regex patterns for performance
var (
	multipleSpacesRegex = regexp.MustCompile(`\s+`)

	// Matches parenthetical annotations like "(95%)" or "(as ascorbic acid)"
	parentheticalRegex = regexp.MustCompile(`\([^)]*\)`)

	// Matches leading stereoisomer prefixes: "d-", "l-", "dl-"
	stereoisomerPrefixRegex = regexp.MustCompile(`^(?:dl|d|l)-`)

	// Matches a trailing percentage token like "95%", "0.5 %"
	trailingPercentRegex = regexp.MustCompile(`(?:^|\s)\d+(?:\.\d+)?\s*%$`)
)

// Normalize canonicalizes a raw label ingredient string for matching.
// It is pure, total and idempotent: Normalize(Normalize(x)) == Normalize(x).
//
// Steps are order-sensitive: lowercase, trim, collapse whitespace, strip
// parentheticals, strip everything after the first comma/semicolon, strip
// stereoisomer prefixes, strip trailing percentage tokens.
func Normalize(raw string) string {
	s := strings.ToLower(raw)
	s = strings.TrimSpace(s)
	s = multipleSpacesRegex.ReplaceAllString(s, " ")

	s = parentheticalRegex.ReplaceAllString(s, " ")

	if idx := strings.IndexAny(s, ",;"); idx >= 0 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Prefixes can chain ("dl-l-cysteine"); strip to a fixed point so the
	// result is stable under re-normalization.
	for {
		stripped := stereoisomerPrefixRegex.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = stripped
	}

	for {
		stripped := trailingPercentRegex.ReplaceAllString(s, "")
		if stripped == s {
			break
		}
		s = strings.TrimSpace(stripped)
	}

	s = multipleSpacesRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeAll normalizes an ingredient list, dropping entries that
// normalize to the empty string.
func NormalizeAll(raw []string) []string {
	normalized := make([]string, 0, len(raw))
	for _, ingredient := range raw {
		if n := Normalize(ingredient); n != "" {
			normalized = append(normalized, n)
		}
	}
	return normalized
}
