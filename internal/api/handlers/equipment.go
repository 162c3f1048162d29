package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildrite/buildrite/internal/domain"
	"github.com/buildrite/buildrite/internal/service"
)

type EquipmentHandler struct {
	svc *service.EquipmentService
}

func NewEquipmentHandler(svc *service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{svc: svc}
}

type equipmentRequest struct {
	Name                string                 `json:"name" validate:"required,max=100"`
	Description         string                 `json:"description" validate:"max=500"`
	SerialNumber        string                 `json:"serial_number" validate:"required,max=50"`
	Model               string                 `json:"model" validate:"max=50"`
	Manufacturer        string                 `json:"manufacturer" validate:"max=50"`
	PurchaseDate        *time.Time             `json:"purchase_date"`
	PurchasePrice       decimal.Decimal        `json:"purchase_price" validate:"gte=0"`
	CurrentValue        decimal.Decimal        `json:"current_value" validate:"gte=0"`
	Status              domain.EquipmentStatus `json:"status" validate:"omitempty,oneof=available in_use maintenance out_of_service retired"`
	LastMaintenanceDate *time.Time             `json:"last_maintenance_date"`
	NextMaintenanceDate *time.Time             `json:"next_maintenance_date"`
	MaintenanceNotes    string                 `json:"maintenance_notes" validate:"max=1000"`
	IsActive            *bool                  `json:"is_active"`
}

func (req *equipmentRequest) toDomain() *domain.Equipment {
	return &domain.Equipment{
		Name:                req.Name,
		Description:         req.Description,
		SerialNumber:        req.SerialNumber,
		Model:               req.Model,
		Manufacturer:        req.Manufacturer,
		PurchaseDate:        req.PurchaseDate,
		PurchasePrice:       req.PurchasePrice,
		CurrentValue:        req.CurrentValue,
		Status:              req.Status,
		LastMaintenanceDate: req.LastMaintenanceDate,
		NextMaintenanceDate: req.NextMaintenanceDate,
		MaintenanceNotes:    req.MaintenanceNotes,
		IsActive:            req.IsActive == nil || *req.IsActive,
	}
}

func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	var req equipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	equipment := req.toDomain()
	if err := h.svc.Create(r.Context(), tid, equipment); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create equipment")
		return
	}

	locationHeader(w, r, equipment.ID)
	writeJSON(w, http.StatusCreated, equipment)
}

func (h *EquipmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	equipment, err := h.svc.GetByID(r.Context(), id, tid)
	if err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to get equipment")
		return
	}

	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) List(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}

	equipment, err := h.svc.List(r.Context(), tid)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list equipment")
		return
	}
	writeJSON(w, http.StatusOK, equipment)
}

func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req equipmentRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.Update(r.Context(), id, tid, req.toDomain())
	if err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update equipment")
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tid, ok := tenantID(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id, tid); err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete equipment")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
