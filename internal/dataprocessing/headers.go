package dataprocessing

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"nascli/pkg/contracts/domain"
)

// CleanHeader normalizes a verbose dataset header into an
// identifier-safe column name: everything from the first parenthesis
// onward is dropped, surrounding whitespace is trimmed and internal
// whitespace collapses to single underscores.
//
// The transform is idempotent: a header without parentheses passes
// through unchanged apart from whitespace normalization.
func CleanHeader(raw string) string {
	name := raw
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	return strings.Join(strings.Fields(name), "_")
}

// CleanHeaders applies CleanHeader to every header in order.
func CleanHeaders(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = CleanHeader(h)
	}
	return out
}

var digitRunPattern = regexp.MustCompile(`[0-9]+`)

// ExtractYear locates the first run of exactly four consecutive digits
// in a free-text year label (e.g. "Calendar Year (Jan - Dec) 2021") and
// parses it. The second return value is false when no four-digit run
// exists; callers must treat the year as absent rather than zero.
func ExtractYear(label string) (int, bool) {
	for _, run := range digitRunPattern.FindAllString(label, -1) {
		if len(run) == 4 {
			year, err := strconv.Atoi(run)
			if err != nil {
				return 0, false
			}
			return year, true
		}
	}
	return 0, false
}

// outcomeCodePattern matches the learning-outcome code embedded in a
// cleaned measurement header, e.g.
// "Average_Performance_Of_Students_In_M601_Learning_Outcome".
var outcomeCodePattern = regexp.MustCompile(`_In_([A-Za-z]+[0-9]+)_`)

// OutcomeCode extracts the learning-outcome code from a cleaned header.
// Headers that carry no code (identity and survey-scale columns) return
// false.
func OutcomeCode(cleaned string) (string, bool) {
	m := outcomeCodePattern.FindStringSubmatch(cleaned)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// SubjectForCode maps a learning-outcome code to its subject area via a
// case-sensitive prefix match. Multi-letter prefixes are checked first
// so the buckets are disjoint by construction ("Sci703" is science, not
// social science; "Sst605" never matches the "S" of anything else).
func SubjectForCode(code string) (domain.Subject, bool) {
	switch {
	case strings.HasPrefix(code, "Sci"):
		return domain.SubjectScience, true
	case strings.HasPrefix(code, "Sst"):
		return domain.SubjectSocialScience, true
	case strings.HasPrefix(code, "M"):
		return domain.SubjectMathematics, true
	case strings.HasPrefix(code, "L"):
		return domain.SubjectLanguage, true
	}
	return "", false
}

// Classification partitions the measurement columns of one dataset
// shape into subject buckets. It is computed once per load and stays
// valid as long as the column set does not change.
type Classification struct {
	buckets map[domain.Subject][]string
}

// Classify builds the subject buckets from the dataset's learning-outcome
// codes. Codes matching none of the four subject prefixes are excluded
// from every bucket.
func Classify(codes []string) Classification {
	buckets := make(map[domain.Subject][]string, 4)
	for _, code := range codes {
		subject, ok := SubjectForCode(code)
		if !ok {
			continue
		}
		buckets[subject] = append(buckets[subject], code)
	}
	for _, codes := range buckets {
		sort.Strings(codes)
	}
	return Classification{buckets: buckets}
}

// Codes returns the outcome codes backing one subject, sorted.
func (c Classification) Codes(s domain.Subject) []string {
	return c.buckets[s]
}

// Empty reports whether a subject has no backing measurement columns in
// this dataset shape. An empty bucket keeps that subject's average
// absent for every record.
func (c Classification) Empty(s domain.Subject) bool {
	return len(c.buckets[s]) == 0
}
