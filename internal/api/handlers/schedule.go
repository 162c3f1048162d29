package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
)

type ScheduleHandler struct {
	svc *service.ScheduleService
}

func NewScheduleHandler(svc *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{svc: svc}
}

type scheduleRequest struct {
	Title       string                `json:"title" validate:"required,max=200"`
	Description string                `json:"description" validate:"max=1000"`
	StartAt     time.Time             `json:"start_at" validate:"required"`
	EndAt       time.Time             `json:"end_at" validate:"required"`
	IsAllDay    bool                  `json:"is_all_day"`
	ProjectID   *int64                `json:"project_id"`
	EmployeeID  *int64                `json:"employee_id"`
	EquipmentID *int64                `json:"equipment_id"`
	Type        domain.ScheduleType   `json:"type" validate:"omitempty,oneof=task meeting maintenance inspection delivery other"`
	Status      domain.ScheduleStatus `json:"status" validate:"omitempty,oneof=scheduled in_progress completed cancelled postponed"`
	Location    string                `json:"location" validate:"max=500"`
	Notes       string                `json:"notes" validate:"max=1000"`
}

func (req *scheduleRequest) toDomain() *domain.Schedule {
	return &domain.Schedule{
		Title:       req.Title,
		Description: req.Description,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		IsAllDay:    req.IsAllDay,
		ProjectID:   req.ProjectID,
		EmployeeID:  req.EmployeeID,
		EquipmentID: req.EquipmentID,
		Type:        req.Type,
		Status:      req.Status,
		Location:    req.Location,
		Notes:       req.Notes,
	}
}

func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req scheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	schedule := req.toDomain()
	if err := h.svc.Create(r.Context(), tid, schedule); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create schedule")
		return
	}

	locationHeader(w, r, schedule.ID)
	writeJSON(w, http.StatusCreated, schedule)
}

func (h *ScheduleHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	schedule, err := h.svc.GetByID(r.Context(), id, tid)
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get schedule")
		return
	}

	writeJSON(w, http.StatusOK, schedule)
}

func (h *ScheduleHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	schedules, err := h.svc.List(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list schedules")
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (h *ScheduleHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	projectID, ok := pathID(w, r, "projectId")
	if !ok {
		return
	}

	schedules, err := h.svc.ListByProject(r.Context(), projectID, tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list schedules")
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (h *ScheduleHandler) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	employeeID, ok := pathID(w, r, "employeeId")
	if !ok {
		return
	}

	schedules, err := h.svc.ListByEmployee(r.Context(), employeeID, tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list schedules")
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

// ListByDate returns entries starting within the named UTC calendar
// day. The path parameter uses the form 2006-01-02.
func (h *ScheduleHandler) ListByDate(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	date, err := time.Parse("2006-01-02", chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	schedules, err := h.svc.ListByDate(r.Context(), tid, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list schedules")
		return
	}
	writeJSON(w, http.StatusOK, schedules)
}

func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req scheduleRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tid, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update schedule")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, tid); err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete schedule")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
