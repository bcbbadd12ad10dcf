package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	apierrors "nascli/internal/errors"
	"nascli/internal/exporter"
	"nascli/internal/middleware"
	"nascli/internal/services"
	"nascli/pkg/contracts/domain"
)

// SurveyHandler handles survey dataset HTTP requests with RFC 7807 compliance
type SurveyHandler struct {
	service      SurveyServiceInterface
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator.Validate
}

// NewSurveyHandler creates a new survey handler with RFC 7807 error handling
func NewSurveyHandler(service SurveyServiceInterface, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *SurveyHandler {
	return &SurveyHandler{
		service:      service,
		logger:       logger.With(slog.String("component", "survey_handler")),
		errorHandler: errorHandler,
		validate:     validator.New(),
	}
}

// Routes returns the survey routes with proper Chi patterns
func (h *SurveyHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/overview", h.GetOverview)
	r.Get("/states", h.GetStateSummaries)
	r.Get("/states/{state}/districts", h.GetDistrictSummaries)
	r.Get("/districts", h.GetDistrictSummaries)
	r.Get("/regions", h.GetRegionSummaries)
	r.Get("/rankings", h.GetRankings)
	r.Get("/outcomes", h.GetOutcomes)
	r.Post("/reload", h.Reload)

	// CSV and workbook downloads
	r.Get("/export/states.csv", h.ExportStates)
	r.Get("/export/districts.csv", h.ExportDistricts)
	r.Get("/export/regions.csv", h.ExportRegions)
	r.Get("/export/summary.xlsx", h.ExportWorkbook)

	return r
}

// GetOverview handles GET /api/survey/overview
func (h *SurveyHandler) GetOverview(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	h.logger.InfoContext(r.Context(), "fetching dataset overview",
		slog.String("request_id", reqID),
		slog.String("path", r.URL.Path),
	)

	overview, err := h.service.Overview(r.Context())
	if err != nil {
		h.handleServiceError(w, r, "overview", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   overview,
	})
}

// GetStateSummaries handles GET /api/survey/states
func (h *SurveyHandler) GetStateSummaries(w http.ResponseWriter, r *http.Request) {
	year, class, ok := h.parseFilters(w, r)
	if !ok {
		return
	}

	summaries, err := h.service.StateSummaries(r.Context(), year, class)
	if err != nil {
		h.handleServiceError(w, r, "state summaries", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summaries,
		"count":  len(summaries),
	})
}

// GetDistrictSummaries handles GET /api/survey/districts
func (h *SurveyHandler) GetDistrictSummaries(w http.ResponseWriter, r *http.Request) {
	year, class, ok := h.parseFilters(w, r)
	if !ok {
		return
	}
	state := chi.URLParam(r, "state")
	if state == "" {
		state = r.URL.Query().Get("state")
	}
	state = strings.TrimSpace(state)

	summaries, err := h.service.DistrictSummaries(r.Context(), state, year, class)
	if err != nil {
		h.handleServiceError(w, r, "district summaries", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summaries,
		"count":  len(summaries),
	})
}

// GetRegionSummaries handles GET /api/survey/regions
func (h *SurveyHandler) GetRegionSummaries(w http.ResponseWriter, r *http.Request) {
	year, class, ok := h.parseFilters(w, r)
	if !ok {
		return
	}

	summaries, err := h.service.RegionSummaries(r.Context(), year, class)
	if err != nil {
		h.handleServiceError(w, r, "region summaries", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   summaries,
		"count":  len(summaries),
	})
}

// GetRankings handles GET /api/survey/rankings
func (h *SurveyHandler) GetRankings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := services.RankingsRequest{
		Group:  q.Get("group"),
		Metric: q.Get("metric"),
		Order:  q.Get("order"),
	}
	if req.Group == "" {
		req.Group = "state"
	}
	if req.Metric == "" {
		req.Metric = "overall"
	}
	if req.Order == "" {
		req.Order = "desc"
	}

	if limitStr := q.Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("limit", "Limit must be a number"))
			return
		}
		req.Limit = limit
	}

	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]apierrors.ValidationError, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, apierrors.ValidationError{
					Field:   strings.ToLower(fe.Field()),
					Message: fmt.Sprintf("failed %s validation", fe.Tag()),
				})
			}
			h.errorHandler.HandleError(w, r, apierrors.NewValidationErrors(fields))
			return
		}
		h.errorHandler.HandleError(w, r, err)
		return
	}

	rankings, err := h.service.Rankings(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, r, "rankings", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   rankings,
		"count":  len(rankings.Entries),
	})
}

// GetOutcomes handles GET /api/survey/outcomes
func (h *SurveyHandler) GetOutcomes(w http.ResponseWriter, r *http.Request) {
	presentOnly := r.URL.Query().Get("present") == "true"

	outcomes, err := h.service.Outcomes(r.Context(), presentOnly)
	if err != nil {
		h.handleServiceError(w, r, "outcomes", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   outcomes,
		"count":  len(outcomes),
	})
}

// Reload handles POST /api/survey/reload
func (h *SurveyHandler) Reload(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	h.logger.InfoContext(r.Context(), "reloading dataset",
		slog.String("request_id", reqID))

	if err := h.service.Reload(r.Context()); err != nil {
		h.handleServiceError(w, r, "reload", err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status":  "success",
		"message": "dataset reloaded",
	})
}

// ExportStates handles GET /api/survey/export/states.csv
func (h *SurveyHandler) ExportStates(w http.ResponseWriter, r *http.Request) {
	year, class, ok := h.parseFilters(w, r)
	if !ok {
		return
	}
	summaries, err := h.service.StateSummaries(r.Context(), year, class)
	if err != nil {
		h.handleServiceError(w, r, "state export", err)
		return
	}
	h.streamCSV(w, r, "state_summary.csv", "State", summaries)
}

// ExportDistricts handles GET /api/survey/export/districts.csv
func (h *SurveyHandler) ExportDistricts(w http.ResponseWriter, r *http.Request) {
	year, class, ok := h.parseFilters(w, r)
	if !ok {
		return
	}
	state := strings.TrimSpace(r.URL.Query().Get("state"))
	summaries, err := h.service.DistrictSummaries(r.Context(), state, year, class)
	if err != nil {
		h.handleServiceError(w, r, "district export", err)
		return
	}
	h.streamCSV(w, r, "district_summary.csv", "District", summaries)
}

// ExportRegions handles GET /api/survey/export/regions.csv
func (h *SurveyHandler) ExportRegions(w http.ResponseWriter, r *http.Request) {
	year, class, ok := h.parseFilters(w, r)
	if !ok {
		return
	}
	summaries, err := h.service.RegionSummaries(r.Context(), year, class)
	if err != nil {
		h.handleServiceError(w, r, "region export", err)
		return
	}
	h.streamCSV(w, r, "region_summary.csv", "Region", summaries)
}

// ExportWorkbook handles GET /api/survey/export/summary.xlsx
func (h *SurveyHandler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	year, class, ok := h.parseFilters(w, r)
	if !ok {
		return
	}

	states, err := h.service.StateSummaries(r.Context(), year, class)
	if err != nil {
		h.handleServiceError(w, r, "workbook export", err)
		return
	}
	districts, err := h.service.DistrictSummaries(r.Context(), "", year, class)
	if err != nil {
		h.handleServiceError(w, r, "workbook export", err)
		return
	}
	regions, err := h.service.RegionSummaries(r.Context(), year, class)
	if err != nil {
		h.handleServiceError(w, r, "workbook export", err)
		return
	}

	sections := []exporter.WorkbookSection{
		{Sheet: "States", KeyName: "State", Summaries: states},
		{Sheet: "Districts", KeyName: "District", Summaries: districts},
		{Sheet: "Regions", KeyName: "Region", Summaries: regions},
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="survey_summary.xlsx"`)

	if err := exporter.StreamWorkbook(w, sections); err != nil {
		h.logger.ErrorContext(r.Context(), "workbook streaming failed",
			slog.String("error", err.Error()))
	}
}

func (h *SurveyHandler) streamCSV(w http.ResponseWriter, r *http.Request, filename, keyName string, summaries []domain.GroupSummary) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := exporter.StreamSummaries(w, keyName, summaries); err != nil {
		h.logger.ErrorContext(r.Context(), "csv streaming failed",
			slog.String("filename", filename),
			slog.String("error", err.Error()))
	}
}

// parseFilters reads the shared year and class query parameters. A zero
// value means unfiltered.
func (h *SurveyHandler) parseFilters(w http.ResponseWriter, r *http.Request) (year, class int, ok bool) {
	q := r.URL.Query()

	if yearStr := q.Get("year"); yearStr != "" {
		y, err := strconv.Atoi(yearStr)
		if err != nil || y < 1000 || y > 9999 {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("year", "Year must be a four digit number"))
			return 0, 0, false
		}
		year = y
	}

	if classStr := q.Get("class"); classStr != "" {
		c, err := strconv.Atoi(classStr)
		if err != nil || c < 1 || c > 12 {
			h.errorHandler.HandleError(w, r, apierrors.ErrValidation("class", "Class must be between 1 and 12"))
			return 0, 0, false
		}
		class = c
	}

	return year, class, true
}

func (h *SurveyHandler) handleServiceError(w http.ResponseWriter, r *http.Request, operation string, err error) {
	reqID := middleware.GetRequestID(r.Context())

	h.logger.ErrorContext(r.Context(), "survey query failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.String("request_id", reqID),
	)

	if errors.Is(err, services.ErrStateNotFound) {
		h.errorHandler.HandleError(w, r, apierrors.New(
			http.StatusNotFound,
			"STATE_NOT_FOUND",
			"State not present in the dataset",
		))
		return
	}

	h.errorHandler.HandleError(w, r, err)
}
