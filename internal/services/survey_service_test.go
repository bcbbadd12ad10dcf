package services

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nascli/internal/config"
	"nascli/internal/shared/testutil"
)

const testCSV = `Country,State,District,Year (Survey),Class,Number Of Schools Surveyed (count),Number Of Students Surveyed (count),Average Performance Of Students In M601 Learning Outcome (percent),Average Performance Of Students In Sci703 Learning Outcome (percent),Average Performance Of Students In L413 Learning Outcome (percent)
India,Karnataka,Bangalore,2021,8,120,3600,54.2,61.0,70.5
India,Karnataka,Mysore,2021,8,80,2400,48.9,,66.1
India,Punjab,Ludhiana,2017,8,95,2850,62.3,58.4,
India,Kerala,Ernakulam,2021,8,110,3300,71.4,69.8,74.9
`

func newTestService(t *testing.T, csv string, allowSample bool) (*SurveyService, string) {
	t.Helper()

	dir := t.TempDir()
	file := filepath.Join(dir, "nas.csv")
	if csv != "" {
		require.NoError(t, os.WriteFile(file, []byte(csv), 0o644))
	}

	cfg := &config.Config{}
	cfg.Dataset.File = file
	cfg.Dataset.AllowSampleFallback = allowSample

	paths := &config.Paths{
		DataDir:    dir,
		ReportsDir: dir,
		LogsDir:    dir,
	}

	logger, _ := testutil.NewTestLogger(t)
	return NewSurveyServiceWithLogger(cfg, paths, logger), file
}

func TestOverview(t *testing.T) {
	svc, file := newTestService(t, testCSV, false)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, file, ov.Source)
	assert.Equal(t, 4, ov.Records)
	assert.Equal(t, 3, ov.States)
	assert.Equal(t, 4, ov.Districts)
	assert.Equal(t, []int{2017, 2021}, ov.Years)
	assert.Equal(t, []string{"M601", "Sci703", "L413"}, ov.OutcomeCodes)
	assert.Equal(t, int64(405), ov.SchoolsSurveyed)
	assert.Equal(t, int64(12150), ov.StudentsSurveyed)
	assert.True(t, ov.National.Mathematics.Valid)
	assert.True(t, ov.National.Overall.Valid)
}

func TestStateSummariesSorted(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)

	summaries, err := svc.StateSummaries(context.Background(), 0, 0)
	require.NoError(t, err)

	require.Len(t, summaries, 3)
	assert.Equal(t, "Karnataka", summaries[0].Key)
	assert.Equal(t, "Kerala", summaries[1].Key)
	assert.Equal(t, "Punjab", summaries[2].Key)
	assert.Equal(t, 2, summaries[0].Records)
}

func TestStateSummariesYearFilter(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)

	summaries, err := svc.StateSummaries(context.Background(), 2017, 0)
	require.NoError(t, err)

	require.Len(t, summaries, 1)
	assert.Equal(t, "Punjab", summaries[0].Key)
}

func TestDistrictSummariesByState(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)

	summaries, err := svc.DistrictSummaries(context.Background(), "karnataka", 0, 0)
	require.NoError(t, err)

	require.Len(t, summaries, 2)
	assert.Equal(t, "Bangalore", summaries[0].Key)
	assert.Equal(t, "Mysore", summaries[1].Key)
}

func TestDistrictSummariesUnknownState(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)

	_, err := svc.DistrictSummaries(context.Background(), "Atlantis", 0, 0)
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestRegionSummaries(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)

	summaries, err := svc.RegionSummaries(context.Background(), 0, 0)
	require.NoError(t, err)

	keys := make([]string, 0, len(summaries))
	for _, s := range summaries {
		keys = append(keys, s.Key)
	}
	// Karnataka and Kerala share the South region.
	assert.Equal(t, []string{"North", "South"}, keys)
}

func TestRankings(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)

	res, err := svc.Rankings(context.Background(), RankingsRequest{
		Group:  "state",
		Metric: "mathematics",
		Order:  "desc",
		Limit:  2,
	})
	require.NoError(t, err)

	require.Len(t, res.Entries, 2)
	assert.Equal(t, "Kerala", res.Entries[0].Key)
	assert.Equal(t, "Punjab", res.Entries[1].Key)
}

func TestMissingFileWithoutFallback(t *testing.T) {
	svc, _ := newTestService(t, "", false)

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMissingFileWithSampleFallback(t *testing.T) {
	svc, _ := newTestService(t, "", true)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SampleSourceName, ov.Source)
	assert.Greater(t, ov.Records, 0)
}

func TestEmptyDatasetWithoutFallback(t *testing.T) {
	headerOnly := testCSV[:strings.IndexByte(testCSV, '\n')+1]
	svc, _ := newTestService(t, headerOnly, false)

	_, err := svc.Overview(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDatasetEmpty)
}

func TestEmptyDatasetWithSampleFallback(t *testing.T) {
	headerOnly := testCSV[:strings.IndexByte(testCSV, '\n')+1]
	svc, _ := newTestService(t, headerOnly, true)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, SampleSourceName, ov.Source)
	assert.Greater(t, ov.Records, 0)
}

func TestDatasetReloadOnChange(t *testing.T) {
	svc, file := newTestService(t, testCSV, false)

	ov, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 4, ov.Records)

	extended := testCSV + "India,Goa,Panaji,2021,8,40,1200,60.0,62.5,64.0\n"
	require.NoError(t, os.WriteFile(file, []byte(extended), 0o644))

	ov, err = svc.Overview(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, ov.Records)
}

func TestReloadInvalidatesCache(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)

	_, err := svc.Overview(context.Background())
	require.NoError(t, err)
	require.NotNil(t, svc.cache.snap)

	require.NoError(t, svc.Reload(context.Background()))
	assert.NotNil(t, svc.cache.snap)
}

func TestOutcomesPresentOnly(t *testing.T) {
	svc, _ := newTestService(t, testCSV, false)

	outcomes, err := svc.Outcomes(context.Background(), true)
	require.NoError(t, err)

	require.Len(t, outcomes, 3)
	assert.Equal(t, "L413", outcomes[0].Code)
	assert.Equal(t, "M601", outcomes[1].Code)
	assert.Equal(t, "Sci703", outcomes[2].Code)
}
