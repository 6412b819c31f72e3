package httptransport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/XDOOPAPP/ocr-service/internal/entity"
	"github.com/XDOOPAPP/ocr-service/internal/repository/postgresql"
	"github.com/XDOOPAPP/ocr-service/internal/service"
)

// Identity is established upstream (gateway); this service trusts the header.
const userIDHeader = "X-User-Id"

type Handler struct {
	svc *service.OCRService
}

func NewHandler(svc *service.OCRService) *Handler {
	return &Handler{svc: svc}
}

type scanDTO struct {
	FileURL string `json:"fileUrl"`
}

// Scan godoc
// @Summary Submit a receipt image for extraction
// @Description Creates a queued OCR job for the image URL and returns it immediately; extraction happens asynchronously.
// @Tags ocr
// @Accept json
// @Produce json
// @Param X-User-Id header string true "caller identity"
// @Param request body scanDTO true "image reference"
// @Success 201 {object} entity.Job
// @Failure 400 {object} apiError
// @Failure 401 {object} apiError
// @Router /ocr/scan [post]
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		writeErr(w, http.StatusUnauthorized, "missing "+userIDHeader+" header")
		return
	}

	var dto scanDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeErr(w, http.StatusBadRequest, "invalid json")
		return
	}

	job, err := h.svc.Scan(r.Context(), userID, dto.FileURL)
	if err != nil {
		writeErr(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, job)
}

// GetJob godoc
// @Summary Get one OCR job
// @Tags ocr
// @Produce json
// @Param X-User-Id header string true "caller identity"
// @Param id path string true "job id (uuid)"
// @Success 200 {object} entity.Job
// @Failure 400 {object} apiError
// @Failure 403 {object} apiError
// @Failure 404 {object} apiError
// @Router /ocr/{id} [get]
func (h *Handler) GetJob(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		writeErr(w, http.StatusUnauthorized, "missing "+userIDHeader+" header")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErr(w, http.StatusBadRequest, "invalid id")
		return
	}

	job, err := h.svc.GetJob(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, postgresql.ErrNotFound):
			writeErr(w, http.StatusNotFound, "job not found")
		case errors.Is(err, service.ErrForbidden):
			writeErr(w, http.StatusForbidden, "you do not have access to this job")
		default:
			writeErr(w, http.StatusInternalServerError, "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, job)
}

// History godoc
// @Summary List the caller's OCR jobs
// @Tags ocr
// @Produce json
// @Param X-User-Id header string true "caller identity"
// @Param status query string false "filter by status (queued|processing|completed|failed)"
// @Param page query int false "page, starting at 1"
// @Param limit query int false "page size (default 10)"
// @Success 200 {object} service.HistoryPage
// @Failure 400 {object} apiError
// @Failure 401 {object} apiError
// @Router /ocr/history [get]
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID := r.Header.Get(userIDHeader)
	if userID == "" {
		writeErr(w, http.StatusUnauthorized, "missing "+userIDHeader+" header")
		return
	}

	q := service.HistoryQuery{
		Page:  queryInt(r, "page", 1),
		Limit: queryInt(r, "limit", 10),
	}
	if s := r.URL.Query().Get("status"); s != "" {
		status := entity.JobStatus(s)
		if !status.Valid() {
			writeErr(w, http.StatusBadRequest, "invalid status")
			return
		}
		q.Status = &status
	}

	page, err := h.svc.History(r.Context(), userID, q)
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// AdminStats godoc
// @Summary Aggregate job statistics
// @Tags admin
// @Produce json
// @Success 200 {object} entity.AdminStats
// @Failure 500 {object} apiError
// @Router /ocr/admin/stats [get]
func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.AdminStats(r.Context())
	if err != nil {
		writeErr(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
