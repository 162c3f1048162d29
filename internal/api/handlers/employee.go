package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
)

type EmployeeHandler struct {
	svc *service.EmployeeService
}

func NewEmployeeHandler(svc *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

type employeeRequest struct {
	FirstName       string          `json:"first_name" validate:"required,max=50"`
	LastName        string          `json:"last_name" validate:"required,max=50"`
	Email           string          `json:"email" validate:"required,email,max=100"`
	PhoneNumber     string          `json:"phone_number" validate:"max=20"`
	Address         string          `json:"address" validate:"max=500"`
	Position        string          `json:"position" validate:"required,max=100"`
	Department      string          `json:"department" validate:"max=50"`
	HourlyRate      decimal.Decimal `json:"hourly_rate" validate:"gte=0"`
	HireDate        time.Time       `json:"hire_date" validate:"required"`
	TerminationDate *time.Time      `json:"termination_date"`
	IsActive        *bool           `json:"is_active"`
}

func (req *employeeRequest) toDomain() *domain.Employee {
	return &domain.Employee{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		Position:        req.Position,
		Department:      req.Department,
		HourlyRate:      req.HourlyRate,
		HireDate:        req.HireDate,
		TerminationDate: req.TerminationDate,
		IsActive:        req.IsActive == nil || *req.IsActive,
	}
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req employeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	employee := req.toDomain()
	if err := h.svc.Create(r.Context(), tid, employee); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create employee")
		return
	}

	locationHeader(w, r, employee.ID)
	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	employee, err := h.svc.GetByID(r.Context(), id, tid)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get employee")
		return
	}

	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	list := h.svc.List
	if r.URL.Query().Get("active") == "true" {
		list = h.svc.ListActive
	}
	employees, err := list(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	employees, err := h.svc.ListActive(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	writeJSON(w, http.StatusOK, employees)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req employeeRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tid, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update employee")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, tid); err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
