// Package reference holds the static lookup tables that ship with the
// survey dataset: the learning-outcome glossary and the state-to-region
// mapping. Both are display/grouping aids and carry no computation.
package reference

import (
	"sort"

	"nascli/pkg/contracts/domain"
)

// OutcomeDescription returns the published description for a
// learning-outcome code, if one is known.
func OutcomeDescription(code string) (domain.LearningOutcome, bool) {
	lo, ok := outcomeDescriptions[code]
	return lo, ok
}

// Outcomes returns every known learning outcome sorted by code.
func Outcomes() []domain.LearningOutcome {
	out := make([]domain.LearningOutcome, 0, len(outcomeDescriptions))
	for _, lo := range outcomeDescriptions {
		out = append(out, lo)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// OutcomesBySubject returns the known learning outcomes for one subject
// area, sorted by code.
func OutcomesBySubject(s domain.Subject) []domain.LearningOutcome {
	var out []domain.LearningOutcome
	for _, lo := range outcomeDescriptions {
		if lo.Subject == s {
			out = append(out, lo)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
