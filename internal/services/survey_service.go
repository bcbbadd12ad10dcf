package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"nascli/internal/config"
	"nascli/internal/dataprocessing"
	apperrors "nascli/internal/errors"
	"nascli/internal/infrastructure"
	"nascli/internal/reference"
	"nascli/pkg/contracts/domain"
)

// SurveyService loads the survey dataset and answers summary, ranking and
// overview queries. The parsed dataset is memoized keyed by the file's
// path, modification time and size, so concurrent requests share a single
// parse and an edited file is picked up on the next request.
type SurveyService struct {
	config  *config.Config
	paths   *config.Paths
	logger  *slog.Logger
	metrics *infrastructure.BusinessMetrics

	group singleflight.Group
	cache datasetCache
}

// NewSurveyService creates a survey service with the default logger.
func NewSurveyService(cfg *config.Config, paths *config.Paths) *SurveyService {
	return NewSurveyServiceWithLogger(cfg, paths, slog.Default())
}

// NewSurveyServiceWithLogger creates a survey service with a specific logger.
func NewSurveyServiceWithLogger(cfg *config.Config, paths *config.Paths, logger *slog.Logger) *SurveyService {
	if logger == nil {
		logger = slog.Default()
	}

	logger.Info("SurveyService initialized",
		slog.String("dataset_file", cfg.GetDatasetFile()),
		slog.Bool("allow_sample_fallback", cfg.Dataset.AllowSampleFallback))

	return &SurveyService{
		config: cfg,
		paths:  paths,
		logger: logger,
	}
}

// SetMetrics attaches business metrics instruments. Safe to leave unset,
// recording helpers tolerate a nil receiver.
func (s *SurveyService) SetMetrics(m *infrastructure.BusinessMetrics) {
	s.metrics = m
}

// Overview summarizes the loaded dataset: national subject means, record
// counts, distinct years and parsing quality counters.
type Overview struct {
	Source          string                   `json:"source"`
	Records         int                      `json:"records"`
	States          int                      `json:"states"`
	Districts       int                      `json:"districts"`
	Years           []int                    `json:"years"`
	OutcomeCodes    []string                 `json:"outcome_codes"`
	National        domain.PerformanceScores `json:"national"`
	SchoolsSurveyed int64                    `json:"schools_surveyed"`
	StudentsSurveyed int64                   `json:"students_surveyed"`
	MalformedYears  int                      `json:"malformed_years"`
	SkippedRows     int                      `json:"skipped_rows"`
	LoadedAt        time.Time                `json:"loaded_at"`
}

// RankingsRequest selects the grouping, metric, direction and size of a
// ranking query.
type RankingsRequest struct {
	Group  string `validate:"required,oneof=state district region"`
	Metric string `validate:"required,oneof=overall mathematics science social_science language"`
	Order  string `validate:"required,oneof=asc desc"`
	Limit  int    `validate:"gte=0,lte=1000"`
}

// Rankings is the result of a ranking query.
type Rankings struct {
	Group   string                `json:"group"`
	Metric  string                `json:"metric"`
	Order   string                `json:"order"`
	Entries []domain.GroupSummary `json:"entries"`
}

// Overview returns dataset-level statistics.
func (s *SurveyService) Overview(ctx context.Context) (*Overview, error) {
	snap, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	states := make(map[string]struct{})
	districts := make(map[string]struct{})
	var schools, students int64
	for _, r := range snap.dataset.Records {
		if r.State != "" {
			states[r.State] = struct{}{}
		}
		if r.District != "" {
			districts[r.District] = struct{}{}
		}
		schools += r.SchoolsSurveyed
		students += r.StudentsSurveyed
	}

	agg := dataprocessing.NewAggregator(snap.dataset.Classification, s.logger)
	national := agg.Summarize(snap.dataset.Records, func(domain.SurveyRecord) string { return "India" })

	ov := &Overview{
		Source:           snap.source,
		Records:          len(snap.dataset.Records),
		States:           len(states),
		Districts:        len(districts),
		Years:            dataprocessing.Years(snap.dataset.Records),
		OutcomeCodes:     snap.dataset.OutcomeCodes,
		SchoolsSurveyed:  schools,
		StudentsSurveyed: students,
		MalformedYears:   snap.dataset.MalformedYears,
		SkippedRows:      snap.dataset.SkippedRows,
		LoadedAt:         snap.loadedAt,
	}
	if len(national.Summaries) > 0 {
		ov.National = national.Summaries[0].Scores
	}
	return ov, nil
}

// StateSummaries returns per-state aggregates sorted by state name.
func (s *SurveyService) StateSummaries(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
	return s.summaries(ctx, "state", dataprocessing.ByState, year, class)
}

// DistrictSummaries returns per-district aggregates, optionally restricted
// to a single state. An unknown state yields ErrStateNotFound.
func (s *SurveyService) DistrictSummaries(ctx context.Context, state string, year, class int) ([]domain.GroupSummary, error) {
	snap, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	records := dataprocessing.FilterRecords(snap.dataset.Records, year, class)
	if state != "" {
		matched := records[:0:0]
		for _, r := range records {
			if strings.EqualFold(r.State, state) {
				matched = append(matched, r)
			}
		}
		if len(matched) == 0 && !s.stateExists(snap.dataset.Records, state) {
			return nil, fmt.Errorf("state %q: %w", state, ErrStateNotFound)
		}
		records = matched
	}

	start := time.Now()
	agg := dataprocessing.NewAggregator(snap.dataset.Classification, s.logger)
	result := agg.Summarize(records, dataprocessing.ByDistrict)
	infrastructure.RecordSummaryQuery(ctx, s.metrics, "district", time.Since(start))
	return result.Summaries, nil
}

// RegionSummaries groups records by zonal council region.
func (s *SurveyService) RegionSummaries(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
	return s.summaries(ctx, "region", func(r domain.SurveyRecord) string {
		return reference.RegionForState(r.State)
	}, year, class)
}

// Rankings orders group summaries by a metric with absent values last.
func (s *SurveyService) Rankings(ctx context.Context, req RankingsRequest) (*Rankings, error) {
	var (
		summaries []domain.GroupSummary
		err       error
	)
	switch req.Group {
	case "district":
		summaries, err = s.DistrictSummaries(ctx, "", 0, 0)
	case "region":
		summaries, err = s.RegionSummaries(ctx, 0, 0)
	default:
		summaries, err = s.StateSummaries(ctx, 0, 0)
	}
	if err != nil {
		return nil, err
	}

	order := dataprocessing.OrderDescending
	if req.Order == "asc" {
		order = dataprocessing.OrderAscending
	}

	return &Rankings{
		Group:   req.Group,
		Metric:  req.Metric,
		Order:   req.Order,
		Entries: dataprocessing.Rank(summaries, req.Metric, order, req.Limit),
	}, nil
}

// Outcomes returns the learning outcome glossary, optionally restricted to
// codes present in the loaded dataset.
func (s *SurveyService) Outcomes(ctx context.Context, presentOnly bool) ([]domain.LearningOutcome, error) {
	if !presentOnly {
		return reference.Outcomes(), nil
	}

	snap, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	outcomes := make([]domain.LearningOutcome, 0, len(snap.dataset.OutcomeCodes))
	for _, code := range snap.dataset.OutcomeCodes {
		if lo, ok := reference.OutcomeDescription(code); ok {
			outcomes = append(outcomes, lo)
			continue
		}
		subject, _ := dataprocessing.SubjectForCode(code)
		outcomes = append(outcomes, domain.LearningOutcome{Code: code, Subject: subject})
	}
	sort.Slice(outcomes, func(i, j int) bool { return outcomes[i].Code < outcomes[j].Code })
	return outcomes, nil
}

// Reload drops the memoized dataset so the next query re-reads the file.
func (s *SurveyService) Reload(ctx context.Context) error {
	s.cache.invalidate()
	s.logger.InfoContext(ctx, "dataset cache invalidated")

	_, err := s.dataset(ctx)
	return err
}

// DatasetAvailable reports whether a dataset can currently be served.
func (s *SurveyService) DatasetAvailable(ctx context.Context) bool {
	_, err := s.dataset(ctx)
	return err == nil
}

func (s *SurveyService) summaries(ctx context.Context, kind string, key dataprocessing.KeyFunc, year, class int) ([]domain.GroupSummary, error) {
	snap, err := s.dataset(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	records := dataprocessing.FilterRecords(snap.dataset.Records, year, class)
	agg := dataprocessing.NewAggregator(snap.dataset.Classification, s.logger)
	result := agg.Summarize(records, key)
	infrastructure.RecordSummaryQuery(ctx, s.metrics, kind, time.Since(start))

	if result.Excluded > 0 {
		s.logger.DebugContext(ctx, "summary excluded records with empty group key",
			slog.String("group", kind),
			slog.Int("excluded", result.Excluded))
	}
	return result.Summaries, nil
}

func (s *SurveyService) stateExists(records []domain.SurveyRecord, state string) bool {
	for _, r := range records {
		if strings.EqualFold(r.State, state) {
			return true
		}
	}
	return false
}

// dataset returns the memoized dataset, loading it when the file changed
// or nothing is cached yet. Concurrent callers share one load.
func (s *SurveyService) dataset(ctx context.Context) (*datasetSnapshot, error) {
	path := s.config.GetDatasetFile()

	fingerprint, statErr := datasetFingerprint(path)
	if statErr == nil {
		if snap, ok := s.cache.get(fingerprint); ok {
			if s.metrics != nil {
				s.metrics.DatasetCacheHits.Add(ctx, 1)
			}
			return snap, nil
		}
	}

	if s.metrics != nil {
		s.metrics.DatasetCacheMisses.Add(ctx, 1)
	}

	v, err, shared := s.group.Do(fingerprint, func() (interface{}, error) {
		return s.load(ctx, path, fingerprint, statErr)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.DebugContext(ctx, "dataset load shared with concurrent request")
	}
	return v.(*datasetSnapshot), nil
}

func (s *SurveyService) load(ctx context.Context, path, fingerprint string, statErr error) (*datasetSnapshot, error) {
	if snap, ok := s.cache.get(fingerprint); ok {
		return snap, nil
	}

	start := time.Now()
	dataset, source, err := s.parse(ctx, path, statErr)
	if err != nil {
		infrastructure.RecordDatasetLoad(ctx, s.metrics, time.Since(start), 0, err)
		return nil, err
	}
	infrastructure.RecordDatasetLoad(ctx, s.metrics, time.Since(start), len(dataset.Records), nil)

	snap := &datasetSnapshot{
		dataset:     dataset,
		source:      source,
		fingerprint: fingerprint,
		loadedAt:    time.Now(),
	}
	s.cache.put(snap)

	s.logger.InfoContext(ctx, "dataset loaded",
		slog.String("source", source),
		slog.Int("records", len(dataset.Records)),
		slog.Int("malformed_years", dataset.MalformedYears),
		slog.Int("skipped_rows", dataset.SkippedRows),
		slog.Duration("duration", time.Since(start)))
	return snap, nil
}

func (s *SurveyService) parse(ctx context.Context, path string, statErr error) (*dataprocessing.Dataset, string, error) {
	if statErr == nil {
		dataset, err := dataprocessing.ParseFile(path, s.logger)
		if err == nil && len(dataset.Records) == 0 {
			err = ErrDatasetEmpty
		}
		if err == nil {
			return dataset, path, nil
		}
		if !s.config.Dataset.AllowSampleFallback {
			return nil, "", apperrors.NewStorageError("cannot load survey dataset", err).
				WithContext("path", path)
		}
		s.logger.WarnContext(ctx, "dataset file unreadable, serving embedded sample",
			slog.String("path", path),
			slog.String("error", err.Error()))
	} else {
		if !s.config.Dataset.AllowSampleFallback {
			return nil, "", apperrors.NewStorageError("survey dataset missing", statErr).
				WithContext("path", path)
		}
		s.logger.WarnContext(ctx, "dataset file missing, serving embedded sample",
			slog.String("path", path))
	}

	dataset, err := parseSampleDataset(s.logger)
	if err != nil {
		return nil, "", err
	}
	return dataset, SampleSourceName, nil
}

// datasetFingerprint identifies a dataset file version by path, mtime and
// size. A missing file yields an error so the caller can decide whether
// the sample fallback applies.
func datasetFingerprint(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Sprintf("%s|missing", path), err
	}
	return fmt.Sprintf("%s|%d|%d", path, info.ModTime().UnixNano(), info.Size()), nil
}
