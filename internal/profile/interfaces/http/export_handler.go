package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	catalogue "loadprofile-cloud/internal/catalogue/domain"
	"loadprofile-cloud/internal/observability/metrics"
	profileapp "loadprofile-cloud/internal/profile/application"
	"loadprofile-cloud/internal/profile/interfaces"
)

// CatalogueReader supplies the catalogue rows for workbook exports.
type CatalogueReader interface {
	List(ctx context.Context) ([]catalogue.ApplianceRecord, error)
}

// ExportHandler serves report downloads.
type ExportHandler struct {
	service   *profileapp.ProfileService
	catalogue CatalogueReader
}

// NewExportHandler constructs a handler.
func NewExportHandler(service *profileapp.ProfileService, reader CatalogueReader) (*ExportHandler, error) {
	if service == nil {
		return nil, errors.New("export handler: nil profile service")
	}
	if reader == nil {
		return nil, errors.New("export handler: nil catalogue reader")
	}
	return &ExportHandler{service: service, catalogue: reader}, nil
}

// ServeHTTP handles GET /api/v1/exports/profile.pdf and
// GET /api/v1/exports/catalogue.xlsx.
func (h *ExportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/v1/exports/profile.pdf":
		h.handlePDF(w, r)
	case "/api/v1/exports/catalogue.xlsx":
		h.handleXLSX(w, r)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *ExportHandler) handlePDF(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveExport("pdf", result, time.Since(start))
	}()

	results, err := h.service.ComputeAll(r.Context())
	if err != nil {
		result = metrics.ResultError
		respondComputeError(w, err)
		return
	}
	payload, err := interfaces.BuildProfilePDF(results, time.Now().UTC())
	if err != nil {
		result = metrics.ResultError
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="profile.pdf"`)
	_, _ = w.Write(payload)
}

func (h *ExportHandler) handleXLSX(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	result := metrics.ResultSuccess
	defer func() {
		metrics.ObserveExport("xlsx", result, time.Since(start))
	}()

	records, err := h.catalogue.List(r.Context())
	if err != nil {
		result = metrics.ResultError
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	results, err := h.service.ComputeAll(r.Context())
	if err != nil {
		result = metrics.ResultError
		respondComputeError(w, err)
		return
	}
	payload, err := interfaces.BuildCatalogueXLSX(records, results)
	if err != nil {
		result = metrics.ResultError
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="catalogue.xlsx"`)
	_, _ = w.Write(payload)
}
