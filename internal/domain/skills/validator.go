package skills

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	// DefaultValidThreshold is the partial-ratio floor for vocabulary validation.
	DefaultValidThreshold = 85

	// minCandidateLen rejects short tokens from the substring and fuzzy
	// branches: a two-character token aligns perfectly inside almost any
	// longer vocabulary entry.
	minCandidateLen = 3
)

// Normalize case-folds a skill and maps known raw forms to their canonical
// spelling. Unknown terms pass through case-folded.
func Normalize(skill string) string {
	lower := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := skillAliases[lower]; ok {
		return canonical
	}
	return lower
}

// FuzzyMatch reports whether the partial-ratio similarity of a and b reaches
// threshold. Empty input never matches.
func FuzzyMatch(a, b string, threshold int) bool {
	a = strings.TrimSpace(a)
	b = strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	return fuzzy.PartialRatio(strings.ToLower(a), strings.ToLower(b)) >= threshold
}

// IsValid reports whether skill is backed by the vocabulary. Checks run
// cheapest-first and short-circuit: exact equality, bidirectional substring
// containment, then fuzzy partial-ratio against every entry.
func (v *Vocabulary) IsValid(skill string, threshold int) bool {
	if v == nil {
		return false
	}
	s := strings.ToLower(strings.TrimSpace(skill))
	if s == "" {
		return false
	}

	if v.Contains(s) {
		return true
	}

	if len(s) < minCandidateLen {
		return false
	}

	for _, known := range v.entries {
		if strings.Contains(known, s) || strings.Contains(s, known) {
			return true
		}
	}

	for _, known := range v.entries {
		if FuzzyMatch(s, known, threshold) {
			return true
		}
	}

	return false
}
