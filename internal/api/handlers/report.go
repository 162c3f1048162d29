package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
)

type ReportHandler struct {
	svc *service.ReportService
}

func NewReportHandler(svc *service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

type reportRequest struct {
	Title       string            `json:"title" validate:"required,max=200"`
	Description string            `json:"description" validate:"max=1000"`
	Type        domain.ReportType `json:"type" validate:"omitempty,oneof=project_summary financial_summary employee_hours equipment_usage client_activity invoice_status schedule_overview custom"`
	ProjectID   *int64            `json:"project_id"`
	StartDate   time.Time         `json:"start_date" validate:"required"`
	EndDate     time.Time         `json:"end_date" validate:"required"`
	Data        json.RawMessage   `json:"data"`
	GeneratedBy string            `json:"generated_by" validate:"max=100"`
	IsActive    *bool             `json:"is_active"`
}

func (req *reportRequest) toDomain() *domain.Report {
	return &domain.Report{
		Title:       req.Title,
		Description: req.Description,
		Type:        req.Type,
		ProjectID:   req.ProjectID,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Data:        req.Data,
		GeneratedBy: req.GeneratedBy,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
}

func (h *ReportHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req reportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	report := req.toDomain()
	if err := h.svc.Create(r.Context(), tid, report); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create report")
		return
	}

	locationHeader(w, r, report.ID)
	writeJSON(w, http.StatusCreated, report)
}

func (h *ReportHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	report, err := h.svc.GetByID(r.Context(), id, tid)
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get report")
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	reports, err := h.svc.List(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	writeJSON(w, http.StatusOK, reports)
}

func (h *ReportHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req reportRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tid, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update report")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ReportHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, tid); err != nil {
		if errors.Is(err, service.ErrReportNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete report")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
