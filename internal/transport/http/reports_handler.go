package http

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "nascli/internal/errors"
	"nascli/internal/files"
)

// ReportsHandler serves generated summary exports from the reports
// directory.
type ReportsHandler struct {
	discovery    *files.Discovery
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
}

// NewReportsHandler creates a new reports handler
func NewReportsHandler(discovery *files.Discovery, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *ReportsHandler {
	return &ReportsHandler{
		discovery:    discovery,
		logger:       logger.With(slog.String("component", "reports_handler")),
		errorHandler: errorHandler,
	}
}

// Routes returns the report routes
func (h *ReportsHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ListReports)
	r.Get("/{filename}", h.DownloadReport)
	return r
}

// ListReports handles GET /api/reports
func (h *ReportsHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	reports, err := h.discovery.ListReports()
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to list reports",
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"status": "success",
		"data":   reports,
		"count":  len(reports),
	})
}

// DownloadReport handles GET /api/reports/{filename}
func (h *ReportsHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")

	full, err := h.discovery.Resolve(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			h.errorHandler.HandleError(w, r, apierrors.New(
				http.StatusNotFound,
				"REPORT_NOT_FOUND",
				"Report file does not exist",
			))
			return
		}
		h.errorHandler.HandleError(w, r, apierrors.ErrValidation("filename", err.Error()))
		return
	}

	h.logger.InfoContext(r.Context(), "serving report download",
		slog.String("filename", filename))

	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	http.ServeFile(w, r, full)
}
