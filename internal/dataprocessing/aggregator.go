package dataprocessing

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/volatiletech/null/v8"

	"nascli/pkg/contracts/domain"
)

// Aggregator derives subject averages and group summaries from parsed
// survey records. All methods are pure over their inputs; the struct
// only carries the outcome classification and a logger.
type Aggregator struct {
	classification Classification
	logger         *slog.Logger
}

// NewAggregator creates an Aggregator for the dataset's classification.
func NewAggregator(c Classification, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{classification: c, logger: logger}
}

// KeyFunc extracts the grouping key from a record. An empty key means
// the record cannot participate in the grouping and is excluded.
type KeyFunc func(domain.SurveyRecord) string

// ByState groups records by state name.
func ByState(r domain.SurveyRecord) string { return r.State }

// ByDistrict groups records by district name.
func ByDistrict(r domain.SurveyRecord) string { return r.District }

// GroupResult carries the summaries of one grouping pass together with
// the count of records excluded for carrying an empty grouping key.
type GroupResult struct {
	Summaries []domain.GroupSummary
	Excluded  int
}

// RecordScores computes per-subject averages for a single record over
// the outcome columns present in that record. A subject with no present
// values stays absent. Overall averages the subject averages that
// exist, so one missing subject never drags the overall toward zero.
func (a *Aggregator) RecordScores(r domain.SurveyRecord) domain.PerformanceScores {
	var scores domain.PerformanceScores

	var overallSum float64
	var overallN int
	for _, subject := range domain.Subjects() {
		var sum float64
		var n int
		for _, code := range a.classification.Codes(subject) {
			v, ok := r.Scores[code]
			if !ok {
				continue
			}
			sum += v
			n++
		}
		if n == 0 {
			continue
		}
		mean := sum / float64(n)
		scores.SetSubject(subject, null.Float64From(mean))
		overallSum += mean
		overallN++
	}

	if overallN > 0 {
		scores.Overall = null.Float64From(overallSum / float64(overallN))
	}
	return scores
}

// Summarize groups records by key and averages the record-level subject
// scores within each group, again skipping absent values. Summaries are
// ordered by ascending key so repeated runs over the same data produce
// identical output.
func (a *Aggregator) Summarize(records []domain.SurveyRecord, key KeyFunc) GroupResult {
	type accum struct {
		summary  domain.GroupSummary
		sums     map[domain.Subject]float64
		counts   map[domain.Subject]int
		overall  float64
		overallN int
	}

	groups := make(map[string]*accum)
	excluded := 0

	for _, r := range records {
		k := strings.TrimSpace(key(r))
		if k == "" {
			excluded++
			continue
		}

		g, ok := groups[k]
		if !ok {
			g = &accum{
				summary: domain.GroupSummary{Key: k},
				sums:    make(map[domain.Subject]float64),
				counts:  make(map[domain.Subject]int),
			}
			groups[k] = g
		}

		g.summary.Records++
		g.summary.SchoolsSurveyed += r.SchoolsSurveyed
		g.summary.StudentsSurveyed += r.StudentsSurveyed

		scores := a.RecordScores(r)
		for _, subject := range domain.Subjects() {
			v := scores.Subject(subject)
			if !v.Valid {
				continue
			}
			g.sums[subject] += v.Float64
			g.counts[subject]++
		}
		if scores.Overall.Valid {
			g.overall += scores.Overall.Float64
			g.overallN++
		}
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	summaries := make([]domain.GroupSummary, 0, len(keys))
	for _, k := range keys {
		g := groups[k]
		for _, subject := range domain.Subjects() {
			if n := g.counts[subject]; n > 0 {
				g.summary.Scores.SetSubject(subject, null.Float64From(g.sums[subject]/float64(n)))
			}
		}
		if g.overallN > 0 {
			g.summary.Scores.Overall = null.Float64From(g.overall / float64(g.overallN))
		}
		summaries = append(summaries, g.summary)
	}

	if excluded > 0 {
		a.logger.Debug("records excluded from grouping",
			slog.Int("excluded", excluded),
			slog.Int("groups", len(summaries)))
	}

	return GroupResult{Summaries: summaries, Excluded: excluded}
}

// RankOrder selects ascending or descending ranking.
type RankOrder string

const (
	OrderAscending  RankOrder = "asc"
	OrderDescending RankOrder = "desc"
)

// RankMetric is a subject name or "overall".
const MetricOverall = "overall"

// Rank orders summaries by the chosen metric. Summaries with no value
// for the metric sort after all ranked entries regardless of order, and
// equal values break ties by ascending key so the ranking is stable
// across runs. limit <= 0 means no truncation.
func Rank(summaries []domain.GroupSummary, metric string, order RankOrder, limit int) []domain.GroupSummary {
	metricValue := func(s domain.GroupSummary) null.Float64 {
		if metric == MetricOverall {
			return s.Scores.Overall
		}
		if subject, ok := domain.ParseSubject(metric); ok {
			return s.Scores.Subject(subject)
		}
		return null.Float64{}
	}

	ranked := make([]domain.GroupSummary, len(summaries))
	copy(ranked, summaries)

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := metricValue(ranked[i]), metricValue(ranked[j])
		switch {
		case vi.Valid && !vj.Valid:
			return true
		case !vi.Valid && vj.Valid:
			return false
		case !vi.Valid && !vj.Valid:
			return ranked[i].Key < ranked[j].Key
		}
		if vi.Float64 != vj.Float64 {
			if order == OrderAscending {
				return vi.Float64 < vj.Float64
			}
			return vi.Float64 > vj.Float64
		}
		return ranked[i].Key < ranked[j].Key
	})

	if limit > 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}

// FilterRecords narrows records to a single survey year and/or class.
// A zero year or class means no filtering on that dimension; records
// with an absent year never match an explicit year filter.
func FilterRecords(records []domain.SurveyRecord, year, class int) []domain.SurveyRecord {
	if year == 0 && class == 0 {
		return records
	}
	out := make([]domain.SurveyRecord, 0, len(records))
	for _, r := range records {
		if year != 0 && (!r.Year.Valid || int(r.Year.Int) != year) {
			continue
		}
		if class != 0 && r.Class != class {
			continue
		}
		out = append(out, r)
	}
	return out
}

// Years returns the distinct valid survey years present, ascending.
func Years(records []domain.SurveyRecord) []int {
	seen := make(map[int]struct{})
	for _, r := range records {
		if r.Year.Valid {
			seen[int(r.Year.Int)] = struct{}{}
		}
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}
