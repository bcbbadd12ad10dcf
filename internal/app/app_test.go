package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nascli/internal/config"
	"nascli/internal/infrastructure"
	"nascli/internal/services"
	"nascli/internal/shared/testutil"
)

func newTestApplication(t *testing.T) *Application {
	t.Helper()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Dataset.File = dir + "/nas.csv"
	cfg.Dataset.AllowSampleFallback = true
	cfg.Security.RateLimit.Enabled = false

	paths := &config.Paths{
		ExecutableDir: dir,
		DataDir:       dir,
		ReportsDir:    dir,
		LogsDir:       dir,
	}

	logger, _ := testutil.NewTestLogger(t)

	providers, err := infrastructure.InitializeOTel(&infrastructure.OTelConfig{
		TraceExporter:  "none",
		MetricExporter: "none",
	}, logger)
	require.NoError(t, err)

	a := &Application{
		Config:        cfg,
		Paths:         paths,
		Logger:        logger,
		OTelProviders: providers,
	}
	a.initializeServices()
	a.setupRouter()
	a.createServer()
	return a
}

func TestApplicationWiring(t *testing.T) {
	a := newTestApplication(t)

	require.NotNil(t, a.Router)
	require.NotNil(t, a.Server)
	require.NotNil(t, a.SurveyService)
	require.NotNil(t, a.HealthService)
}

func TestHealthEndpoint(t *testing.T) {
	a := newTestApplication(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/health", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestOverviewEndpointServesSample(t *testing.T) {
	a := newTestApplication(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/survey/overview", nil))

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), services.SampleSourceName)
}

func TestUnknownRouteProblem(t *testing.T) {
	a := newTestApplication(t)

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest("GET", "/api/nope", nil))

	assert.Equal(t, 404, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/problem+json")
}
