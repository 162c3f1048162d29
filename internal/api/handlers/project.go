package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
)

type ProjectHandler struct {
	svc *service.ProjectService
}

func NewProjectHandler(svc *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

type projectRequest struct {
	Name          string               `json:"name" validate:"required,max=200"`
	Description   string               `json:"description" validate:"max=1000"`
	ClientID      int64                `json:"client_id" validate:"required,gt=0"`
	Address       string               `json:"address" validate:"max=500"`
	StartDate     time.Time            `json:"start_date" validate:"required"`
	EndDate       *time.Time           `json:"end_date"`
	ActualEndDate *time.Time           `json:"actual_end_date"`
	Budget        decimal.Decimal      `json:"budget" validate:"gte=0"`
	ActualCost    decimal.Decimal      `json:"actual_cost" validate:"gte=0"`
	Status        domain.ProjectStatus `json:"status" validate:"omitempty,oneof=planning in_progress on_hold completed cancelled"`
}

func (req *projectRequest) toDomain() *domain.Project {
	return &domain.Project{
		Name:          req.Name,
		Description:   req.Description,
		ClientID:      req.ClientID,
		Address:       req.Address,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		ActualEndDate: req.ActualEndDate,
		Budget:        req.Budget,
		ActualCost:    req.ActualCost,
		Status:        req.Status,
	}
}

func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req projectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	project := req.toDomain()
	if err := h.svc.Create(r.Context(), tid, project); err != nil {
		if errors.Is(err, service.ErrProjectClient) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	locationHeader(w, r, project.ID)
	writeJSON(w, http.StatusCreated, project)
}

func (h *ProjectHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	project, err := h.svc.GetByID(r.Context(), id, tid)
	if err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get project")
		return
	}

	writeJSON(w, http.StatusOK, project)
}

func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	list := h.svc.List
	if r.URL.Query().Get("active") == "true" {
		list = h.svc.ListActive
	}
	projects, err := list(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	projects, err := h.svc.ListActive(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) ListByClient(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	clientID, ok := pathID(w, r, "clientId")
	if !ok {
		return
	}

	projects, err := h.svc.ListByClient(r.Context(), clientID, tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list projects")
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req projectRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tid, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProjectNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrProjectClient):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update project")
		}
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, tid); err != nil {
		if errors.Is(err, service.ErrProjectNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
