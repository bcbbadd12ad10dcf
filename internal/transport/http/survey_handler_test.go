package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	apierrors "nascli/internal/errors"
	"nascli/internal/services"
	"nascli/internal/shared/testutil"
	"nascli/pkg/contracts/domain"
)

// stubSurveyService implements SurveyServiceInterface with function fields
// so each test controls exactly one behavior.
type stubSurveyService struct {
	overviewFn  func(ctx context.Context) (*services.Overview, error)
	statesFn    func(ctx context.Context, year, class int) ([]domain.GroupSummary, error)
	districtsFn func(ctx context.Context, state string, year, class int) ([]domain.GroupSummary, error)
	regionsFn   func(ctx context.Context, year, class int) ([]domain.GroupSummary, error)
	rankingsFn  func(ctx context.Context, req services.RankingsRequest) (*services.Rankings, error)
	outcomesFn  func(ctx context.Context, presentOnly bool) ([]domain.LearningOutcome, error)
	reloadFn    func(ctx context.Context) error
}

func (s *stubSurveyService) Overview(ctx context.Context) (*services.Overview, error) {
	return s.overviewFn(ctx)
}

func (s *stubSurveyService) StateSummaries(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
	return s.statesFn(ctx, year, class)
}

func (s *stubSurveyService) DistrictSummaries(ctx context.Context, state string, year, class int) ([]domain.GroupSummary, error) {
	return s.districtsFn(ctx, state, year, class)
}

func (s *stubSurveyService) RegionSummaries(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
	return s.regionsFn(ctx, year, class)
}

func (s *stubSurveyService) Rankings(ctx context.Context, req services.RankingsRequest) (*services.Rankings, error) {
	return s.rankingsFn(ctx, req)
}

func (s *stubSurveyService) Outcomes(ctx context.Context, presentOnly bool) ([]domain.LearningOutcome, error) {
	return s.outcomesFn(ctx, presentOnly)
}

func (s *stubSurveyService) Reload(ctx context.Context) error {
	return s.reloadFn(ctx)
}

func newTestHandler(t *testing.T, svc SurveyServiceInterface) chi.Router {
	t.Helper()
	logger, _ := testutil.NewTestLogger(t)
	h := NewSurveyHandler(svc, logger, apierrors.NewErrorHandler(logger, false))
	return h.Routes()
}

func sampleSummaries() []domain.GroupSummary {
	return []domain.GroupSummary{
		{
			Key:              "Karnataka",
			Records:          2,
			SchoolsSurveyed:  200,
			StudentsSurveyed: 6000,
			Scores: domain.PerformanceScores{
				Mathematics: null.Float64From(51.55),
				Overall:     null.Float64From(58.2),
			},
		},
		{
			Key:     "Punjab",
			Records: 1,
			Scores: domain.PerformanceScores{
				Mathematics: null.Float64From(62.3),
			},
		},
	}
}

func TestGetOverview(t *testing.T) {
	svc := &stubSurveyService{
		overviewFn: func(ctx context.Context) (*services.Overview, error) {
			return &services.Overview{Source: "nas.csv", Records: 4, Years: []int{2017, 2021}}, nil
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/overview", nil))

	require.Equal(t, 200, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(4), data["records"])
}

func TestGetStateSummariesPassesFilters(t *testing.T) {
	var gotYear, gotClass int
	svc := &stubSurveyService{
		statesFn: func(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
			gotYear, gotClass = year, class
			return sampleSummaries(), nil
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/states?year=2021&class=8", nil))

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, 2021, gotYear)
	assert.Equal(t, 8, gotClass)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(2), body["count"])
}

func TestGetStateSummariesRejectsBadYear(t *testing.T) {
	router := newTestHandler(t, &stubSurveyService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/states?year=21", nil))

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestGetDistrictSummariesUnknownState(t *testing.T) {
	svc := &stubSurveyService{
		districtsFn: func(ctx context.Context, state string, year, class int) ([]domain.GroupSummary, error) {
			return nil, fmt.Errorf("state %q: %w", state, services.ErrStateNotFound)
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/districts?state=Atlantis", nil))

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestGetStateSummariesDatasetMissing(t *testing.T) {
	svc := &stubSurveyService{
		statesFn: func(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
			return nil, fmt.Errorf("open nas.csv: %w", os.ErrNotExist)
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/states", nil))

	assert.Equal(t, 404, rec.Code)
}

func TestGetStateSummariesDatasetEmpty(t *testing.T) {
	svc := &stubSurveyService{
		statesFn: func(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
			return nil, apierrors.NewStorageError("cannot load survey dataset", services.ErrDatasetEmpty)
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/states", nil))

	assert.Equal(t, 503, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestGetRankingsDefaults(t *testing.T) {
	var got services.RankingsRequest
	svc := &stubSurveyService{
		rankingsFn: func(ctx context.Context, req services.RankingsRequest) (*services.Rankings, error) {
			got = req
			return &services.Rankings{Group: req.Group, Metric: req.Metric, Order: req.Order}, nil
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/rankings", nil))

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "state", got.Group)
	assert.Equal(t, "overall", got.Metric)
	assert.Equal(t, "desc", got.Order)
	assert.Equal(t, 0, got.Limit)
}

func TestGetRankingsInvalidGroup(t *testing.T) {
	router := newTestHandler(t, &stubSurveyService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/rankings?group=planet", nil))

	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}

func TestGetRankingsInvalidLimit(t *testing.T) {
	router := newTestHandler(t, &stubSurveyService{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/rankings?limit=many", nil))

	assert.Equal(t, 400, rec.Code)
}

func TestGetOutcomesPresentOnly(t *testing.T) {
	var gotPresent bool
	svc := &stubSurveyService{
		outcomesFn: func(ctx context.Context, presentOnly bool) ([]domain.LearningOutcome, error) {
			gotPresent = presentOnly
			return []domain.LearningOutcome{{Code: "M601", Subject: domain.SubjectMathematics}}, nil
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/outcomes?present=true", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, gotPresent)
}

func TestReload(t *testing.T) {
	reloaded := false
	svc := &stubSurveyService{
		reloadFn: func(ctx context.Context) error {
			reloaded = true
			return nil
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("POST", "/reload", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, reloaded)
}

func TestExportStatesCSV(t *testing.T) {
	svc := &stubSurveyService{
		statesFn: func(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
			return sampleSummaries(), nil
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/export/states.csv", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "state_summary.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "State,"))
	assert.True(t, strings.HasPrefix(lines[1], "Karnataka,"))
}

func TestExportWorkbook(t *testing.T) {
	svc := &stubSurveyService{
		statesFn: func(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
			return sampleSummaries(), nil
		},
		districtsFn: func(ctx context.Context, state string, year, class int) ([]domain.GroupSummary, error) {
			return sampleSummaries(), nil
		},
		regionsFn: func(ctx context.Context, year, class int) ([]domain.GroupSummary, error) {
			return sampleSummaries(), nil
		},
	}
	router := newTestHandler(t, svc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", "/export/summary.xlsx", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.NotZero(t, rec.Body.Len())
}
